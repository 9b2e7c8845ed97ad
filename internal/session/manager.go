package session

import (
	"context"
	"fmt"
	"os"

	"projector/internal/document"
	"projector/internal/llm"
	"projector/internal/prompt"
	"projector/internal/question"

	"go.uber.org/zap"
)

// Manager drives a session through its lifecycle. It owns the only calls to
// the generation client; callers interleave NextQuestion and Answer, may
// navigate with Back and Forward, and close with Finalize. Manager is built
// for a single caller and does no locking or retrying of its own.
type Manager struct {
	session *Session
	client  llm.Client
	prompts prompt.Builder
	logger  *zap.Logger
}

// NewManager wires a session to a generation client.
func NewManager(s *Session, client llm.Client, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		session: s,
		client:  client,
		logger:  logger,
	}
}

// Session exposes the managed session.
func (m *Manager) Session() *Session {
	return m.session
}

// Start moves the session into the questioning phase.
func (m *Manager) Start() {
	m.logger.Debug("session started", zap.String("persona", string(m.session.Context.Persona)))
	m.session.State = StateQuestioning
}

// NextQuestion asks the model for the next interview question. When the
// question budget is spent the session moves to the generating state and
// ErrBudgetExhausted is returned without contacting the model. A model or
// parse failure leaves the session in the questioning state so the caller
// can simply ask again.
func (m *Manager) NextQuestion(ctx context.Context) (*question.Question, error) {
	if m.session.State != StateQuestioning {
		return nil, &StateError{State: m.session.State, Op: "generate a question"}
	}
	if len(m.session.Context.History) >= m.session.MaxQuestions {
		m.logger.Info("question budget exhausted",
			zap.Int("asked", len(m.session.Context.History)),
			zap.Int("max", m.session.MaxQuestions))
		m.session.State = StateGenerating
		return nil, ErrBudgetExhausted
	}

	messages := m.prompts.QuestionMessages(m.session.Context.Persona, m.session.Context.Transcript())
	reply, err := m.client.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate question: %w", err)
	}

	q, err := question.Parse(reply)
	if err != nil {
		m.logger.Debug("discarding unparseable question reply", zap.Error(err))
		return nil, fmt.Errorf("failed to parse question: %w", err)
	}

	m.session.CurrentQuestion = &q
	m.logger.Debug("question generated",
		zap.String("id", q.ID),
		zap.String("kind", string(q.Kind)))
	return m.session.CurrentQuestion, nil
}

// Answer records the response to the pending question and clears it.
func (m *Manager) Answer(response string) error {
	if m.session.State != StateQuestioning {
		return &StateError{State: m.session.State, Op: "answer a question"}
	}
	if m.session.CurrentQuestion == nil {
		return ErrNoPendingQuestion
	}

	q := *m.session.CurrentQuestion
	m.session.CurrentQuestion = nil
	m.session.Context.RecordAnswer(q, response)
	return nil
}

// Back rewinds to the previous answer and makes its question pending again.
// Answering it adds a new history entry; the earlier one is kept.
func (m *Manager) Back() (*question.Question, error) {
	answer, err := m.session.Context.Rewind()
	if err != nil {
		return nil, err
	}
	q := answer.Question
	m.session.CurrentQuestion = &q
	return m.session.CurrentQuestion, nil
}

// Forward moves to the next answer after a rewind and makes its question
// pending again.
func (m *Manager) Forward() (*question.Question, error) {
	answer, err := m.session.Context.Advance()
	if err != nil {
		return nil, err
	}
	q := answer.Question
	m.session.CurrentQuestion = &q
	return m.session.CurrentQuestion, nil
}

// Finalize asks the model for the project definition, assembles it, and
// completes the session. On a model failure the session stays in the
// generating state so Finalize can be retried.
func (m *Manager) Finalize(ctx context.Context) (string, error) {
	if m.session.State != StateQuestioning && m.session.State != StateGenerating {
		return "", &StateError{State: m.session.State, Op: "generate the project definition"}
	}
	m.session.State = StateGenerating

	messages := m.prompts.DocumentMessages(m.session.Context.Transcript())
	reply, err := m.client.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate project definition: %w", err)
	}

	definition := document.ParseDefinition(reply)
	markdown := definition.Markdown()

	m.session.Output = markdown
	m.session.State = StateCompleted
	m.logger.Info("project definition generated",
		zap.String("name", definition.Name),
		zap.Int("sections", len(definition.Sections)))
	return markdown, nil
}

// Fail moves an active session into the terminal error state.
func (m *Manager) Fail() error {
	if m.session.State != StateQuestioning && m.session.State != StateGenerating {
		return &StateError{State: m.session.State, Op: "abort"}
	}
	m.session.State = StateError
	return nil
}

// ExportOutput writes the generated definition to path.
func (m *Manager) ExportOutput(path string) error {
	if m.session.Output == "" {
		return fmt.Errorf("no output to export")
	}
	return os.WriteFile(path, []byte(m.session.Output), 0644)
}

// QuestionCount reports how many answers have been recorded.
func (m *Manager) QuestionCount() int {
	return len(m.session.Context.History)
}

// MaxQuestions reports the session's question budget.
func (m *Manager) MaxQuestions() int {
	return m.session.MaxQuestions
}

// IsCompleted reports whether the session has produced its definition.
func (m *Manager) IsCompleted() bool {
	return m.session.State == StateCompleted
}

// HasError reports whether the session was aborted.
func (m *Manager) HasError() bool {
	return m.session.State == StateError
}
