package ai

import (
	"context"
	"errors"
	"fmt"
)

// Backend sends a single prompt to a language model and returns its text output.
// Implementations make exactly one attempt per call.
type Backend interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// StatusError reports a non-success HTTP status from the upstream service.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("upstream returned status %d", e.Code)
}

// Failure categories used when a caller substitutes a fallback value.
const (
	FailureStatus    = "status"
	FailureTransport = "transport"
	FailureParse     = "parse"
)

// Classify maps a backend error to its failure category.
func Classify(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return FailureStatus
	}
	return FailureTransport
}
