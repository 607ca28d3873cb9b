package parsing

import (
	"fmt"
	"strings"
)

// Messages used by ParseError
const (
	MessageMalformed      = "malformed payload"
	MessageSchemaMismatch = "schema mismatch"
)

// ParseError means the service text could not be turned into a meal plan.
// Details lists each violated rule for schema mismatches.
type ParseError struct {
	Message string
	Details []string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Details, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
