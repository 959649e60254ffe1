// Package suppress parses inline suppression directives and answers
// line-level suppression queries.
//
// Directives are HTML comments in the form:
//
//	<!-- prosegate disable check1,check2 -->
//	<!-- prosegate enable check1,check2 -->
//	<!-- prosegate disable-next-line check1 -->
//
// Directives are parsed from the raw input before markdown stripping, so
// suppressed line numbers refer to the original file.
package suppress

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/prosegate/internal/textseg"
)

var directiveRe = regexp.MustCompile(
	`<!--\s*prosegate\s+(disable|enable|disable-next-line)\s+([\w,\s]+?)\s*-->`)

// state is the suppression state of a single check.
type state int

const (
	// stateRanges means the check is suppressed in the listed line ranges.
	stateRanges state = iota
	// stateFile means the check is suppressed for the entire document
	// (a disable with no matching enable).
	stateFile
)

type checkState struct {
	state  state
	ranges []textseg.LineRange
}

// Map answers suppression queries per check. A check that never appears in a
// directive has no entry and is never suppressed.
type Map struct {
	checks map[string]*checkState
}

// Parse extracts suppression directives from raw input text. Call this on the
// original text before markdown stripping. Lines are 1-indexed; disable/enable
// regions include both directive lines.
func Parse(input string) *Map {
	m := &Map{checks: make(map[string]*checkState)}
	open := make(map[string]int)

	for i, lineText := range strings.Split(input, "\n") {
		lineNum := i + 1
		for _, cap := range directiveRe.FindAllStringSubmatch(lineText, -1) {
			action := cap[1]
			checks := splitChecks(cap[2])

			switch action {
			case "disable":
				for _, check := range checks {
					open[check] = lineNum
				}
			case "enable":
				for _, check := range checks {
					start, ok := open[check]
					if !ok {
						continue // enable without an open region is a no-op
					}
					delete(open, check)
					m.add(check, textseg.LineRange{Start: start, End: lineNum})
				}
			case "disable-next-line":
				for _, check := range checks {
					next := lineNum + 1
					m.add(check, textseg.LineRange{Start: next, End: next})
				}
			}
		}
	}

	// Unclosed disable suppresses the whole file.
	for check := range open {
		cs := m.checkState(check)
		cs.state = stateFile
		cs.ranges = nil
	}
	return m
}

func splitChecks(s string) []string {
	var checks []string
	for _, c := range strings.Split(s, ",") {
		c = strings.TrimSpace(c)
		if c != "" {
			checks = append(checks, c)
		}
	}
	return checks
}

func (m *Map) checkState(check string) *checkState {
	cs, ok := m.checks[check]
	if !ok {
		cs = &checkState{}
		m.checks[check] = cs
	}
	return cs
}

func (m *Map) add(check string, r textseg.LineRange) {
	cs := m.checkState(check)
	if cs.state == stateFile {
		return
	}
	cs.ranges = append(cs.ranges, r)
}

// IsSuppressed reports whether check is suppressed at the given 1-based line.
func (m *Map) IsSuppressed(check string, line int) bool {
	cs, ok := m.checks[check]
	if !ok {
		return false
	}
	if cs.state == stateFile {
		return true
	}
	for _, r := range cs.ranges {
		if r.Contains(line) {
			return true
		}
	}
	return false
}

// IsFullySuppressed reports whether check is suppressed for the entire
// document.
func (m *Map) IsFullySuppressed(check string) bool {
	cs, ok := m.checks[check]
	return ok && cs.state == stateFile
}

// IsEmpty reports whether no suppressions exist at all.
func (m *Map) IsEmpty() bool {
	return len(m.checks) == 0
}

// SuppressedChecks returns the sorted names of all checks with any
// suppression.
func (m *Map) SuppressedChecks() []string {
	names := make([]string, 0, len(m.checks))
	for name := range m.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDirectiveLine reports whether the line contains a suppression directive.
func IsDirectiveLine(line string) bool {
	return directiveRe.MatchString(line)
}

// StripDirectives blanks out directive lines while preserving both the line
// count and each line's length, so line maps built from the result align with
// the original text.
func StripDirectives(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if IsDirectiveLine(line) {
			lines[i] = strings.Repeat(" ", len(line))
		}
	}
	return strings.Join(lines, "\n")
}
