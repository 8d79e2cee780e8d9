package contact

import "fmt"

// ResponseError is returned when the endpoint answers with something that is
// neither the success page nor a JSON verdict.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("unexpected response (status %d): %s", e.StatusCode, e.Body)
}

type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RejectedError carries the message of a JSON response with a falsy success flag.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("message rejected: %s", e.Message)
}
