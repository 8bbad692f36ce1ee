// Package validator wraps go-playground struct validation behind a small
// interface so HTTP handlers can validate request DTOs without depending
// on the library directly.
package validator

import (
	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type structValidator struct {
	validate *validators.Validate
}

// New func - Creates a Validator backed by a shared Validate instance
func New() Validator {
	return &structValidator{
		validate: validators.New(),
	}
}

// ValidateStruct func - Checks the struct's validate tags
func (v *structValidator) ValidateStruct(inf interface{}) error {
	return v.validate.Struct(inf)
}
