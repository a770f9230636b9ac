package domain

import "strings"

// ItemClassification is the result of running both detectors over an item name.
type ItemClassification struct {
	DetectedBrand    string `json:"detectedBrand"`
	DetectedCategory string `json:"detectedCategory"`
}

// CategoryRule maps a category label to the keywords that trigger it.
type CategoryRule struct {
	Category string
	Keywords []string
}

// popularBrands is a priority list: the first brand contained in a name wins.
var popularBrands = []string{
	"Nike",
	"Adidas",
	"Jordan",
	"Yeezy",
	"New Balance",
	"Puma",
	"Reebok",
	"Converse",
	"Vans",
	"Asics",
	"Salomon",
	"Dr. Martens",
	"Timberland",
	"Birkenstock",
	"Supreme",
	"Off-White",
	"Stone Island",
	"Stüssy",
	"Palace",
	"Carhartt",
	"The North Face",
	"Patagonia",
	"Arc'teryx",
	"Moncler",
	"Canada Goose",
	"Ralph Lauren",
	"Tommy Hilfiger",
	"Lacoste",
	"Levi's",
	"Diesel",
	"Hugo Boss",
	"Calvin Klein",
	"Burberry",
	"Gucci",
	"Prada",
	"Louis Vuitton",
	"Balenciaga",
	"Versace",
	"Chanel",
	"Dior",
	"Hermès",
	"Rolex",
	"Omega",
	"Casio",
	"Apple",
	"Samsung",
	"Sony",
	"Nintendo",
	"Pokémon",
	"Funko",
	"Zara",
	"H&M",
	"Uniqlo",
}

// categoryKeywords is evaluated top to bottom, and keyword by keyword within a rule.
// Keywords shared by several categories resolve to the earliest rule.
var categoryKeywords = []CategoryRule{
	{"Sneakers", []string{"sneaker", "trainer", "running", "basketball", "jordan", "air max", "nike", "adidas"}},
	{"Boots", []string{"boot", "chelsea", "combat", "hiking", "timberland"}},
	{"Sandals", []string{"sandal", "flip flop", "slider", "birkenstock"}},
	{"Dress Shoes", []string{"oxford", "loafer", "dress shoe", "formal"}},
	{"Athletic Shoes", []string{"athletic", "gym", "cross training", "fitness"}},

	{"T-Shirts", []string{"t-shirt", "tee", "tank top", "crop top"}},
	{"Shirts", []string{"shirt", "blouse", "button up", "dress shirt"}},
	{"Hoodies", []string{"hoodie", "sweatshirt", "pullover"}},
	{"Sweaters", []string{"sweater", "jumper", "cardigan", "knit"}},

	{"Jeans", []string{"jean", "denim"}},
	{"Pants", []string{"pant", "trouser", "chino", "slack"}},
	{"Shorts", []string{"short", "bermuda"}},
	{"Skirts", []string{"skirt", "mini skirt", "maxi skirt"}},
	{"Leggings", []string{"legging", "tight", "yoga pant"}},

	{"Dresses", []string{"dress", "gown", "frock"}},
	{"Jackets", []string{"jacket", "blazer", "coat"}},
	{"Coats", []string{"coat", "parka", "trench"}},
	{"Vests", []string{"vest", "waistcoat", "gilet"}},

	{"Accessories", []string{"belt", "scarf", "glove", "hat", "cap", "beanie"}},
	{"Bags", []string{"bag", "backpack", "handbag", "purse", "wallet", "clutch"}},
	{"Watches", []string{"watch", "timepiece", "smartwatch"}},
	{"Jewelry", []string{"ring", "necklace", "bracelet", "earring", "chain"}},
	{"Hats", []string{"hat", "cap", "beanie", "snapback", "bucket hat"}},

	{"Electronics", []string{"phone", "laptop", "tablet", "headphone", "speaker", "camera", "gaming", "console", "airpod", "iphone", "ipad", "macbook", "samsung", "playstation", "xbox", "nintendo"}},
	{"Collectibles", []string{"card", "figure", "collectible", "vintage", "rare", "limited edition", "pokemon", "funko"}},
	{"Home & Living", []string{"candle", "pillow", "blanket", "decor", "furniture", "lamp", "mirror"}},
}

// lowerBrands mirrors popularBrands so detection does not lower-case the list per call.
var lowerBrands = func() []string {
	out := make([]string, len(popularBrands))
	for i, b := range popularBrands {
		out[i] = strings.ToLower(b)
	}
	return out
}()

// DetectBrand returns the canonical name of the first known brand contained in
// itemName (case-insensitive substring match), or "" when none is found.
func DetectBrand(itemName string) string {
	name := strings.ToLower(itemName)
	for i, brand := range lowerBrands {
		if strings.Contains(name, brand) {
			return popularBrands[i]
		}
	}
	return ""
}

// DetectCategory returns the category of the first keyword contained in itemName,
// or "" when nothing matches.
func DetectCategory(itemName string) string {
	name := strings.ToLower(itemName)
	for _, rule := range categoryKeywords {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, keyword) {
				return rule.Category
			}
		}
	}
	return ""
}

// ParseItemName runs both detectors.
func ParseItemName(itemName string) ItemClassification {
	return ItemClassification{
		DetectedBrand:    DetectBrand(itemName),
		DetectedCategory: DetectCategory(itemName),
	}
}

// Brands returns a copy of the brand list in match order.
func Brands() []string {
	out := make([]string, len(popularBrands))
	copy(out, popularBrands)
	return out
}

// Categories returns the category labels in match order.
func Categories() []string {
	out := make([]string, len(categoryKeywords))
	for i, rule := range categoryKeywords {
		out[i] = rule.Category
	}
	return out
}
