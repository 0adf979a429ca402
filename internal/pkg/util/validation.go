package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO enforces a DTO's validate tags. Gin's binding only runs the
// binding tags, so handlers call this after a successful bind. The returned
// validator.ValidationErrors maps to a 400 in the response layer.
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
