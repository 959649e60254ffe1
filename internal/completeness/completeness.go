// Package completeness validates structured documents against section
// templates.
//
// A template names the sections a document type requires (ADR, handoff,
// design doc). The check verifies each required heading exists and holds
// substantive content rather than a placeholder.
package completeness

import (
	"sort"
	"strings"

	"github.com/dshills/prosegate/internal/mdstrip"
	"github.com/dshills/prosegate/internal/schema"
)

// builtinTemplates maps template names to required section headings, in
// report order.
var builtinTemplates = []struct {
	name     string
	sections []string
}{
	{"adr", []string{
		"Context and Problem Statement",
		"Decision Drivers",
		"Considered Options",
		"Decision Outcome",
		"Consequences",
	}},
	{"handoff", []string{
		"Where things stand",
		"Decisions made",
		"What's next",
		"Landmines",
	}},
	{"design-doc", []string{
		"Overview",
		"Context",
		"Approach",
		"Alternatives considered",
		"Consequences",
	}},
}

// placeholders are values that mean a section has not been filled in.
var placeholders = []string{"tbd", "todo", "n/a", "...", "—", "placeholder"}

// AvailableTemplates lists built-in template names plus any custom ones.
func AvailableTemplates(custom map[string][]string) []string {
	names := make([]string, 0, len(builtinTemplates)+len(custom))
	seen := map[string]bool{}
	for _, t := range builtinTemplates {
		names = append(names, t.name)
		seen[t.name] = true
	}
	var extra []string
	for name := range custom {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Check validates that text contains every section the template requires.
// Custom templates take precedence over built-ins on name collision. Returns
// a schema.UnknownTemplateError for unrecognized template names.
func Check(text, template string, custom map[string][]string) (*schema.CompletenessReport, error) {
	required, err := findTemplate(template, custom)
	if err != nil {
		return nil, err
	}

	headings := mdstrip.ExtractHeadings(text)

	report := &schema.CompletenessReport{
		Template: template,
		Sections: make([]schema.SectionResult, 0, len(required)),
		Missing:  []string{},
		Empty:    []string{},
		Pass:     true,
	}

	for _, name := range required {
		status := checkSection(text, name, headings)
		report.Sections = append(report.Sections, schema.SectionResult{Name: name, Status: status})
		switch status {
		case schema.SectionMissing:
			report.Missing = append(report.Missing, name)
			report.Pass = false
		case schema.SectionEmpty:
			report.Empty = append(report.Empty, name)
			report.Pass = false
		}
	}

	return report, nil
}

func findTemplate(name string, custom map[string][]string) ([]string, error) {
	if sections, ok := custom[name]; ok {
		return sections, nil
	}
	for _, t := range builtinTemplates {
		if t.name == name {
			return t.sections, nil
		}
	}
	return nil, &schema.UnknownTemplateError{Name: name, Available: AvailableTemplates(custom)}
}

// checkSection finds a level 2 or 3 heading containing the section name
// (case-insensitive) and classifies the section by its content.
func checkSection(text, sectionName string, headings []mdstrip.Heading) schema.SectionStatus {
	sectionLower := strings.ToLower(sectionName)

	var matched *mdstrip.Heading
	for i := range headings {
		h := &headings[i]
		if (h.Level == 2 || h.Level == 3) && strings.Contains(strings.ToLower(h.Text), sectionLower) {
			matched = h
			break
		}
	}
	if matched == nil {
		return schema.SectionMissing
	}

	content := strings.TrimSpace(sectionContent(text, matched.Text, matched.Level))
	if content == "" {
		return schema.SectionEmpty
	}
	normalized := strings.ToLower(content)
	for _, p := range placeholders {
		if normalized == p {
			return schema.SectionEmpty
		}
	}
	return schema.SectionPresent
}

// sectionContent returns the text between a heading and the next heading of
// the same or higher level.
func sectionContent(text, headingText string, headingLevel int) string {
	headingLower := strings.ToLower(headingText)
	lines := strings.Split(text, "\n")

	headingIdx := -1
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		stripped := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if strings.Contains(stripped, headingLower) {
			headingIdx = i
			break
		}
	}
	if headingIdx < 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines[headingIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			if level <= headingLevel {
				break
			}
		}
		b.WriteString(trimmed)
		b.WriteByte('\n')
	}
	return b.String()
}
