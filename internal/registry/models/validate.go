package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance, reused for every ingress payload.
var validate = validator.New()

// Validate checks an entity decoded from the network boundary against
// its schema tags. Payloads are parsed structurally by encoding/json;
// this adds the semantic checks (required fields, value ranges) so the
// store never ingests a malformed mirror of server state.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
		fe := ve[0]
		return fmt.Errorf("invalid payload: field %s %s", fe.Field(), describe(fe))
	}
	return fmt.Errorf("invalid payload: %w", err)
}

// ValidateSlice validates each element of a decoded collection.
func ValidateSlice[T any](items []T) error {
	for i := range items {
		if err := Validate(&items[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is missing"
	case "email":
		return "is not a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "dive":
		return "contains an invalid element"
	default:
		return fmt.Sprintf("failed rule %q", fe.Tag())
	}
}
