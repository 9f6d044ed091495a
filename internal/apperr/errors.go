package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NewLineValidation reports a malformed record in a line-oriented input file.
func NewLineValidation(path string, line int, msg string, err error) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s:%d: %s", path, line, msg),
		Err:     err,
	}
}
