package engine

import (
	"errors"
	"fmt"
)

// ValidationError represents a request rejected before any filtering.
//
// Validation errors are user errors: the command line asked for a flag
// combination that has no meaning. The store is never read or written when
// one is returned.
type ValidationError struct {
	// Code identifies the rule that was violated.
	Code ValidationErrorCode

	// Message is the human-readable explanation shown to the user.
	Message string
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode string

const (
	// ErrCodeExcludeWithoutCategories: list --exclude given without --categories.
	ErrCodeExcludeWithoutCategories ValidationErrorCode = "EXCLUDE_WITHOUT_CATEGORIES"

	// ErrCodeMissingCriteria: delete given no criterion at all.
	ErrCodeMissingCriteria ValidationErrorCode = "MISSING_CRITERIA"

	// ErrCodeDryRunAlone: delete --dry-run given without any criterion.
	ErrCodeDryRunAlone ValidationErrorCode = "DRY_RUN_ALONE"

	// ErrCodeAllWithOthers: delete --all combined with another criterion.
	ErrCodeAllWithOthers ValidationErrorCode = "ALL_WITH_OTHERS"

	// ErrCodeMissingDescription: add given no description.
	ErrCodeMissingDescription ValidationErrorCode = "MISSING_DESCRIPTION"
)

// Error implements the error interface. Only the message is shown so the
// CLI can print it verbatim.
func (e *ValidationError) Error() string {
	return e.Message
}

// String includes the code, for logs.
func (e *ValidationError) String() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newValidationError(code ValidationErrorCode, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
