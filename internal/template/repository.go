package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"projector/internal/question"

	"gopkg.in/yaml.v3"
)

// Repository holds the templates available to the wizard: the built-in
// presets plus any user-authored YAML templates merged in with LoadDir.
type Repository struct {
	templates []Template
}

// NewRepository returns a repository seeded with the built-in presets.
func NewRepository() *Repository {
	return &Repository{templates: builtinTemplates()}
}

// Add inserts a template, replacing any existing template with the same
// name so user templates can override the built-ins.
func (r *Repository) Add(t Template) {
	for i := range r.templates {
		if r.templates[i].Name == t.Name {
			r.templates[i] = t
			return
		}
	}
	r.templates = append(r.templates, t)
}

// Get looks up a template by its exact name.
func (r *Repository) Get(name string) (*Template, bool) {
	for i := range r.templates {
		if r.templates[i].Name == name {
			return &r.templates[i], true
		}
	}
	return nil, false
}

// All returns every template in insertion order.
func (r *Repository) All() []Template {
	return r.templates
}

// ByDomain returns the templates registered for a domain.
func (r *Repository) ByDomain(domain string) []Template {
	var out []Template
	for _, t := range r.templates {
		if t.Domain == domain {
			out = append(out, t)
		}
	}
	return out
}

// templateSpec is the YAML document shape for user-authored templates.
type templateSpec struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	Domain           string            `yaml:"domain"`
	StartingHints    string            `yaml:"starting_hints"`
	Metadata         map[string]string `yaml:"metadata"`
	InitialQuestions []questionSpec    `yaml:"initial_questions"`
}

type questionSpec struct {
	Type     string   `yaml:"type"`
	Text     string   `yaml:"text"`
	Options  []string `yaml:"options"`
	Scale    []int    `yaml:"scale"`
	HelpText string   `yaml:"help_text"`
}

// LoadDir merges every .yaml/.yml template file under dir into the
// repository. A missing directory is not an error; a malformed file is.
func (r *Repository) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var spec templateSpec
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		tpl, err := spec.toTemplate()
		if err != nil {
			return fmt.Errorf("invalid template %s: %w", path, err)
		}
		r.Add(tpl)
	}
	return nil
}

func (s *templateSpec) toTemplate() (Template, error) {
	if strings.TrimSpace(s.Name) == "" {
		return Template{}, fmt.Errorf("template name is required")
	}

	tpl := New(s.Name, s.Description, s.Domain, s.StartingHints)
	for key, value := range s.Metadata {
		tpl.AddMetadata(key, value)
	}

	for i, qs := range s.InitialQuestions {
		id := fmt.Sprintf("q_%s_%d", s.Name, i+1)
		kind := question.Kind(qs.Type)
		switch kind {
		case question.MultipleChoice:
			tpl.AddQuestion(question.NewMultipleChoice(id, qs.Text, qs.Options).WithHelpText(qs.HelpText))
		case question.YesNo:
			tpl.AddQuestion(question.NewYesNo(id, qs.Text).WithHelpText(qs.HelpText))
		case question.RatingScale:
			if len(qs.Scale) < 2 {
				return Template{}, fmt.Errorf("question %d: rating scale needs [min, max]", i+1)
			}
			tpl.AddQuestion(question.NewRatingScale(id, qs.Text, qs.Scale[0], qs.Scale[1]).WithHelpText(qs.HelpText))
		case question.FreeText:
			tpl.AddQuestion(question.NewFreeText(id, qs.Text).WithHelpText(qs.HelpText))
		default:
			return Template{}, fmt.Errorf("question %d: unknown type %q", i+1, qs.Type)
		}
	}
	return tpl, nil
}
