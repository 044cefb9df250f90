package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScore is returned when a score ID has no registered calculator.
	ErrUnknownScore = errors.New("unknown score")

	// ErrDuplicateScore is returned when a score ID is registered twice.
	ErrDuplicateScore = errors.New("duplicate score registration")
)

// ValidationError reports rejected input parameters. The engine maps it to
// an unprocessable-entity response; it never indicates an engine fault.
type ValidationError struct {
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Param == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Param, e.Message)
}

// Invalidf builds a ValidationError for the given parameter.
func Invalidf(param, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Param: param, Message: fmt.Sprintf(format, args...)}
}

// CalculationError reports a calculator fault: a panic, a nil result, or an
// unexpected error from the calculation function. The parameters were
// accepted; the computation itself failed.
type CalculationError struct {
	ScoreID string
	Err     error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculating %s: %v", e.ScoreID, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}
