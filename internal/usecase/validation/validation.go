// Package validation converts go-playground validator failures into the
// typed validation errors the transport layer knows how to map.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	errs "course-enrollment-service/pkg/errors"
)

// Format converts validator.ValidationErrors into a single typed validation
// error with a human-readable message. Other errors pass through unchanged.
func Format(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return errs.NewValidationError("", strings.Join(messages, ", "))
}
