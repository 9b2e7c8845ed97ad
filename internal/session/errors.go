package session

import (
	"errors"
	"fmt"
)

// ErrBudgetExhausted signals that the question budget is spent. The session
// has already moved to the generating state when this is returned; the
// caller's next step is Finalize.
var ErrBudgetExhausted = errors.New("maximum number of questions reached")

// ErrNoPendingQuestion is returned by Answer when no question is waiting.
var ErrNoPendingQuestion = errors.New("no current question to answer")

// StateError reports an operation invoked while the session is in a state
// that does not permit it.
type StateError struct {
	State State
	Op    string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s while session is %s", e.Op, e.State)
}
