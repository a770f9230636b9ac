package dto

// ClassifyQuery holds the item name to classify.
type ClassifyQuery struct {
	Name string `form:"name"`
}

// ClassifyResponse mirrors domain.ItemClassification on the wire.
type ClassifyResponse struct {
	DetectedBrand    string `json:"detectedBrand"`
	DetectedCategory string `json:"detectedCategory"`
}

// CategoriesResponse lists category labels in match order.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// BrandsResponse lists brand names in match order.
type BrandsResponse struct {
	Brands []string `json:"brands"`
}
