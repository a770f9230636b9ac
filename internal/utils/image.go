package utils

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/SscSPs/resale_hub/internal/apperrors"
)

// DefaultMaxImageBytes is the largest decoded image accepted for a customer picture.
const DefaultMaxImageBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidateImageDataURL checks that dataURL is a base64 data URL of an allowed
// image type whose decoded payload is at most maxBytes.
func ValidateImageDataURL(dataURL string, maxBytes int) error {
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return fmt.Errorf("%w: image must be a base64 data URL", apperrors.ErrValidation)
	}

	mimeType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		return fmt.Errorf("%w: please upload a valid image file (JPG, PNG or WEBP)", apperrors.ErrValidation)
	}

	// Reject before decoding when the encoded form is already too large.
	if base64.StdEncoding.DecodedLen(len(payload)) > maxBytes+2 {
		return fmt.Errorf("%w: image must be less than %d bytes", apperrors.ErrValidation, maxBytes)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: image payload is not valid base64", apperrors.ErrValidation)
	}
	if len(decoded) > maxBytes {
		return fmt.Errorf("%w: image must be less than %d bytes", apperrors.ErrValidation, maxBytes)
	}
	return nil
}
