package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Currency errors
	ErrMsgOriginMismatch  = "currency origins don't match"
	ErrMsgInvalidPrice    = "invalid price string"
	ErrMsgInvalidCurrency = "invalid currency type"

	// Decomposition errors
	ErrMsgMissingGrade = "material has no parseable grade"

	// Input errors
	ErrMsgInvalidLevel = "level must be an integer or a range X-Y within 1-20"
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Currency errors
	ErrOriginMismatch  = errors.New(ErrMsgOriginMismatch)
	ErrInvalidPrice    = errors.New(ErrMsgInvalidPrice)
	ErrInvalidCurrency = errors.New(ErrMsgInvalidCurrency)

	// Decomposition errors
	ErrMissingGrade = errors.New(ErrMsgMissingGrade)

	// Input errors
	ErrInvalidLevel = errors.New(ErrMsgInvalidLevel)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
