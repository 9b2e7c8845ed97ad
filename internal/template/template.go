package template

import (
	"projector/internal/interview"
	"projector/internal/question"
)

// Template is a reusable starting point for a wizard session: hints, a
// domain, optional metadata, and suggested opening questions.
type Template struct {
	Name             string              `json:"name" yaml:"name"`
	Description      string              `json:"description" yaml:"description"`
	Domain           string              `json:"domain" yaml:"domain"`
	StartingHints    string              `json:"starting_hints" yaml:"starting_hints"`
	InitialQuestions []question.Question `json:"initial_questions,omitempty" yaml:"-"`
	Metadata         map[string]string   `json:"metadata,omitempty" yaml:"metadata"`
}

// New builds a template without questions or metadata.
func New(name, description, domain, startingHints string) Template {
	return Template{
		Name:          name,
		Description:   description,
		Domain:        domain,
		StartingHints: startingHints,
	}
}

// AddQuestion appends a suggested opening question.
func (t *Template) AddQuestion(q question.Question) {
	t.InitialQuestions = append(t.InitialQuestions, q)
}

// AddMetadata attaches a key/value pair to the template.
func (t *Template) AddMetadata(key, value string) {
	if t.Metadata == nil {
		t.Metadata = map[string]string{}
	}
	t.Metadata[key] = value
}

// ApplyTo seeds a context with the template's hints, domain, and metadata.
// The suggested questions are informational; the interview still generates
// its own questions from the context.
func (t *Template) ApplyTo(ctx *interview.Context) {
	ctx.StartingHints = t.StartingHints
	ctx.Domain = t.Domain
	for key, value := range t.Metadata {
		ctx.SetMetadata(key, value)
	}
}
