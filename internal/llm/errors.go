package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransportError means the service could not be reached or did not answer
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ServiceError means the service answered but signalled failure or sent an unusable envelope
type ServiceError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("service error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("service error: %s", msg)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// classifyCallError maps an SDK call failure onto the transport/service split.
func classifyCallError(message string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return &TransportError{Message: message, Cause: err}
	}
	return &ServiceError{Message: message, Cause: err}
}
