package validation_test

import (
	"testing"

	"github.com/SscSPs/resale_hub/internal/utils/validation"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `binding:"notblank,max=5"`
	Currency string `binding:"omitempty,currency_code"`
}

func TestValidator(t *testing.T) {
	v := validation.Validator()

	assert.NoError(t, v.Struct(sample{Name: "abc", Currency: "usd"}))
	assert.NoError(t, v.Struct(sample{Name: "abc"}))
	assert.Error(t, v.Struct(sample{Name: "   "}))
	assert.Error(t, v.Struct(sample{Name: "toolong"}))
	assert.Error(t, v.Struct(sample{Name: "abc", Currency: "JPY"}))
	assert.Same(t, v, validation.Validator())
}
