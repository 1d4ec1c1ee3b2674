package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps a failed struct field and tag to the sentinel returned to callers.
type fieldErrors map[string]map[string]error

// validateRequest runs struct-tag validation on req and translates the first
// failure through known. Failures with no mapping are returned wrapped.
func validateRequest(req any, known fieldErrors) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if sentinel, ok := known[fe.StructField()][fe.Tag()]; ok {
		return sentinel
	}
	return &ValidationError{Field: fe.Field(), Tag: fe.Tag()}
}

// ValidationError reports a request field that failed an unmapped rule.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": failed " + e.Tag
}

// IsValidationError reports whether err was caused by a bad request.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.As(err, &verr)
}
