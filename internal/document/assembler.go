package document

import (
	"bufio"
	"strings"
)

// DefaultName is used when the model reply has no top-level heading.
const DefaultName = "LLM Project Definition"

// confidenceMarkers lists every marker a section heading may carry, in
// detection order. Emoji markers win over the literal form.
var confidenceMarkers = []struct {
	marker string
	level  ConfidenceLevel
}{
	{"⭐", VeryHigh},
	{"✅", High},
	{"🔶", Medium},
	{"🔸", Low},
	{"⚠️", VeryLow},
	{"(Confidence: 5/5)", VeryHigh},
	{"(Confidence: 4/5)", High},
	{"(Confidence: 3/5)", Medium},
	{"(Confidence: 2/5)", Low},
	{"(Confidence: 1/5)", VeryLow},
}

// ParseDefinition assembles a ProjectDefinition from a raw markdown reply.
// It never fails: unrecognized structure degrades to fewer sections, and a
// missing top-level heading falls back to DefaultName.
func ParseDefinition(raw string) *ProjectDefinition {
	definition := NewDefinition(DefaultName)

	var currentTitle string
	var currentConfidence ConfidenceLevel
	var currentBuffer strings.Builder
	nameFound := false

	flush := func() {
		content := strings.TrimRight(currentBuffer.String(), "\n")
		currentBuffer.Reset()
		if currentTitle == "" || content == "" {
			return
		}
		definition.AddSection(currentTitle, content+"\n", currentConfidence)
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "## ") {
			flush()
			heading := strings.TrimSpace(line[3:])
			currentConfidence = detectConfidence(heading)
			currentTitle = stripMarkers(heading)
			continue
		}

		if !nameFound && strings.HasPrefix(line, "# ") {
			definition.Name = strings.TrimSpace(line[2:])
			nameFound = true
		}

		if currentTitle != "" {
			currentBuffer.WriteString(line)
			currentBuffer.WriteString("\n")
		}
	}
	flush()

	return definition
}

// detectConfidence finds the first recognized marker in a heading. Headings
// without any marker default to Medium.
func detectConfidence(heading string) ConfidenceLevel {
	for _, m := range confidenceMarkers {
		if strings.Contains(heading, m.marker) {
			return m.level
		}
	}
	return Medium
}

func stripMarkers(heading string) string {
	for _, m := range confidenceMarkers {
		heading = strings.ReplaceAll(heading, m.marker, "")
	}
	return strings.TrimSpace(heading)
}
