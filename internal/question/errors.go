package question

import (
	"errors"
	"fmt"
)

// ErrNotJSON marks a model reply that could not be decoded as JSON at all.
var ErrNotJSON = errors.New("response is not valid JSON")

// UnknownKindError reports a question_type value outside the recognized set.
// An absent question_type is reported with an empty Kind.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	if e.Kind == "" {
		return "missing question_type in response"
	}
	return fmt.Sprintf("unknown question_type %q in response", e.Kind)
}

// MissingFieldError reports a required field that is absent or has the
// wrong JSON type for the declared question kind.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing or invalid %s in response", e.Field)
}
