package document

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// ProjectSection is one titled block of the generated project definition.
type ProjectSection struct {
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Confidence ConfidenceLevel `json:"confidence"`
}

// ProjectDefinition is the assembled output document of a wizard run.
type ProjectDefinition struct {
	Name        string           `json:"name"`
	Sections    []ProjectSection `json:"sections"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// NewDefinition starts an empty definition named after the project.
func NewDefinition(name string) *ProjectDefinition {
	return &ProjectDefinition{
		Name:        name,
		GeneratedAt: time.Now().UTC(),
	}
}

// AddSection appends a section to the definition.
func (d *ProjectDefinition) AddSection(title, content string, confidence ConfidenceLevel) {
	d.Sections = append(d.Sections, ProjectSection{
		Title:      title,
		Content:    content,
		Confidence: confidence,
	})
}

// Markdown renders the definition as a standalone markdown document. Each
// section title carries the emoji for its confidence level.
func (d *ProjectDefinition) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Name)
	fmt.Fprintf(&b, "*Generated on: %s UTC*\n\n", d.GeneratedAt.UTC().Format("2006-01-02 15:04:05"))

	for _, section := range d.Sections {
		fmt.Fprintf(&b, "## %s %s\n\n", section.Title, section.Confidence.Emoji())
		fmt.Fprintf(&b, "%s\n\n", section.Content)
	}

	return b.String()
}

// WriteFile saves the rendered markdown to path.
func (d *ProjectDefinition) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.Markdown()), 0644); err != nil {
		return fmt.Errorf("failed to write project definition: %w", err)
	}
	return nil
}
