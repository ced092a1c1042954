package store

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad wraps every failure to read or decode the store file.
	ErrLoad = errors.New("failed to load events")

	// ErrPersist wraps every failure to write the store file. In-memory state
	// may already differ from disk when it is returned.
	ErrPersist = errors.New("failed to save events to file")
)

// PathErrorCode categorizes store location failures.
type PathErrorCode string

const (
	// ErrCodePathUnavailable indicates the store file cannot be located.
	ErrCodePathUnavailable PathErrorCode = "PATH_UNAVAILABLE"
)

// PathError reports a store location that cannot be used.
type PathError struct {
	// Code identifies the error category.
	Code PathErrorCode

	// Path is the offending path, empty when the home directory is unknown.
	Path string

	// Message is the remediation shown to the user.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsPathUnavailable returns true if err is a PathError with
// ErrCodePathUnavailable. Uses errors.As to handle wrapped errors.
func IsPathUnavailable(err error) bool {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodePathUnavailable
	}
	return false
}

func newPathError(path, message string, err error) *PathError {
	return &PathError{
		Code:    ErrCodePathUnavailable,
		Path:    path,
		Message: message,
		Err:     err,
	}
}
