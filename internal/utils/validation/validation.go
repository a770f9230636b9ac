package validation

import (
	"fmt"
	"sync"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// TagName is the struct tag shared by gin binding and service-side validation.
const TagName = "binding"

var (
	instance *validator.Validate
	once     sync.Once
)

// RegisterCustom adds the application's custom validation tags to v.
func RegisterCustom(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return fmt.Errorf("failed to register notblank validation: %w", err)
	}
	if err := v.RegisterValidation("currency_code", isSupportedCurrency); err != nil {
		return fmt.Errorf("failed to register currency_code validation: %w", err)
	}
	return nil
}

// Validator returns a process-wide validator reading `binding` tags.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName(TagName)
		if err := RegisterCustom(v); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

func isSupportedCurrency(fl validator.FieldLevel) bool {
	_, err := domain.ParseCurrencyCode(fl.Field().String())
	return err == nil
}
