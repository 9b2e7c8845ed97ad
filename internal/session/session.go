package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"projector/internal/interview"
	"projector/internal/question"
	"projector/internal/template"
)

// State is the lifecycle phase of a wizard session.
type State string

const (
	StateInitial     State = "Initial"
	StateQuestioning State = "Questioning"
	StateGenerating  State = "Generating"
	StateCompleted   State = "Completed"
	StateError       State = "Error"
)

// DefaultMaxQuestions is the stock question budget for new sessions.
const DefaultMaxQuestions = 10

// Session is the full state of one wizard run. CurrentQuestion and Output
// are transient: they never survive a save/load round trip, so a resumed
// session always re-requests its next question.
type Session struct {
	Context         *interview.Context `json:"context"`
	State           State              `json:"state"`
	MaxQuestions    int                `json:"max_questions"`
	CurrentQuestion *question.Question `json:"-"`
	Output          string             `json:"-"`
}

// New returns a fresh session with an empty context.
func New() *Session {
	return &Session{
		Context:      interview.NewContext(),
		State:        StateInitial,
		MaxQuestions: DefaultMaxQuestions,
	}
}

// WithContext returns a fresh session around an existing context.
func WithContext(ctx *interview.Context) *Session {
	s := New()
	s.Context = ctx
	return s
}

// FromTemplate returns a fresh session seeded from a template.
func FromTemplate(tpl *template.Template) *Session {
	s := New()
	tpl.ApplyTo(s.Context)
	return s
}

// WithMaxQuestions overrides the question budget and returns the session.
func (s *Session) WithMaxQuestions(max int) *Session {
	s.MaxQuestions = max
	return s
}

// Save writes the session snapshot as pretty-printed JSON, validating it
// against the snapshot schema first. Transient fields are not written.
func (s *Session) Save(path string) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := validateSnapshot(raw); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	pretty, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	pretty = append(pretty, '\n')
	return os.WriteFile(path, pretty, 0644)
}

// Load reads a session snapshot, validating it against the snapshot schema
// before decoding. The loaded session has no pending question and no output.
func Load(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := validateSnapshot(raw); err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}
