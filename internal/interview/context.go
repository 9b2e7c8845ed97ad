package interview

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"projector/internal/question"
)

var (
	// ErrAtStart is returned by Rewind when the cursor is already on the
	// first recorded answer.
	ErrAtStart = errors.New("already at the first answer")
	// ErrAtEnd is returned by Advance when there is no later answer to
	// move forward to.
	ErrAtEnd = errors.New("already at the latest answer")
)

// Answer pairs a question with the response the user gave to it.
type Answer struct {
	Question  question.Question `json:"question"`
	Response  string            `json:"response"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewAnswer records a response to a question, stamped with the current time.
func NewAnswer(q question.Question, response string) Answer {
	return Answer{
		Question:  q,
		Response:  response,
		Timestamp: time.Now().UTC(),
	}
}

// Context accumulates everything learned during an interview: the starting
// hints, the chosen domain and persona, and the full answer history. History
// is append-only; the cursor only selects which answer is considered current.
type Context struct {
	StartingHints string            `json:"starting_hints,omitempty"`
	Domain        string            `json:"domain,omitempty"`
	History       []Answer          `json:"history"`
	CurrentIndex  int               `json:"current_index"`
	Persona       Persona           `json:"persona"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// NewContext returns an empty context with the default persona. History is
// initialized non-nil so an empty context still serializes with a history
// array.
func NewContext() *Context {
	return &Context{
		History:  []Answer{},
		Persona:  PersonaDefault,
		Metadata: map[string]string{},
	}
}

// RecordAnswer appends an answer to the history and moves the cursor past
// the end. Earlier answers are never overwritten: answering again after a
// rewind adds a second entry for the revisited question.
func (c *Context) RecordAnswer(q question.Question, response string) {
	c.History = append(c.History, NewAnswer(q, response))
	c.CurrentIndex = len(c.History)
}

// Rewind moves the cursor to the previous answer and returns it.
func (c *Context) Rewind() (*Answer, error) {
	if c.CurrentIndex == 0 {
		return nil, ErrAtStart
	}
	c.CurrentIndex--
	return &c.History[c.CurrentIndex], nil
}

// Advance moves the cursor to the next answer after a rewind and returns it.
func (c *Context) Advance() (*Answer, error) {
	if c.CurrentIndex >= len(c.History)-1 {
		return nil, ErrAtEnd
	}
	c.CurrentIndex++
	return &c.History[c.CurrentIndex], nil
}

// CurrentAnswer returns the answer under the cursor, or nil when the cursor
// sits past the end of the history.
func (c *Context) CurrentAnswer() *Answer {
	if c.CurrentIndex < len(c.History) {
		return &c.History[c.CurrentIndex]
	}
	return nil
}

// Transcript renders the interview so far as plain text for model prompts.
// The question-and-answer section always covers the full history regardless
// of the cursor position.
func (c *Context) Transcript() string {
	var b strings.Builder

	if c.StartingHints != "" {
		fmt.Fprintf(&b, "Starting hints: %s\n\n", c.StartingHints)
	}
	if c.Domain != "" {
		fmt.Fprintf(&b, "Domain: %s\n\n", c.Domain)
	}

	b.WriteString("Previous questions and answers:\n")
	for i, answer := range c.History {
		fmt.Fprintf(&b, "Q%d: %s\nA%d: %s\n\n", i+1, answer.Question.Text, i+1, answer.Response)
	}

	return b.String()
}

// SetMetadata stores a free-form key/value pair on the context.
func (c *Context) SetMetadata(key, value string) {
	if c.Metadata == nil {
		c.Metadata = map[string]string{}
	}
	c.Metadata[key] = value
}

// MetadataValue looks up a metadata entry.
func (c *Context) MetadataValue(key string) (string, bool) {
	v, ok := c.Metadata[key]
	return v, ok
}
