package draftsmith

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkRequest runs struct validation on req and folds any failure into
// ErrValidation so callers can match with errors.Is.
func checkRequest(op string, req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrValidation, op, err)
	}
	return nil
}
