package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LootLedger_Go/internal/appraisal"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// "7" or "5-8", both ends within 1-20
	_ = v.RegisterValidation("levelrange", validateLevelRange)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateLevelRange(fl validator.FieldLevel) bool {
	_, _, err := appraisal.ParseLevelSpec(fl.Field().String())
	return err == nil
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "gte":
			errs[field] = "Must be at least " + e.Param()
		case "levelrange":
			errs[field] = "Must be a level (1-20) or a range like 5-8"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}
