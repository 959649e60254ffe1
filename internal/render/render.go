// Package render formats check reports for terminal and machine output.
//
// Each check gets two renderers: a text formatter for the passing layout and
// a failure message used as the command error when the gate trips. JSON
// output is a pretty-printed marshal of the report itself.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/prosegate/internal/schema"
)

// JSON produces a pretty-printed JSON representation of any report. The
// output round-trips through json.Unmarshal back to an equal report.
func JSON(report any) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("render: nil report")
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// Readability formats the passing readability output: a PASS line when a
// ceiling was configured, the bare grade otherwise.
func Readability(file string, r *schema.ReadabilityReport) string {
	if r.MaxGrade != nil {
		return fmt.Sprintf("PASS: %s scores %.1f (max: %.0f)", file, r.Grade, *r.MaxGrade)
	}
	return fmt.Sprintf("%.1f", r.Grade)
}

// ReadabilityFailure is the error message for a grade over the ceiling.
func ReadabilityFailure(file string, r *schema.ReadabilityReport) string {
	max := 0.0
	if r.MaxGrade != nil {
		max = *r.MaxGrade
	}
	return fmt.Sprintf("%s scores %.1f (max: %.0f). Simplify sentences or reduce jargon.",
		file, r.Grade, max)
}

// Tokens formats the passing token count output.
func Tokens(file string, r *schema.TokenReport) string {
	if r.Budget != nil {
		return fmt.Sprintf("PASS: %s is %d tokens (budget: %d)", file, r.Count, *r.Budget)
	}
	return fmt.Sprintf("%d", r.Count)
}

// TokensFailure is the error message for a count over budget.
func TokensFailure(file string, r *schema.TokenReport) string {
	budget := 0
	if r.Budget != nil {
		budget = *r.Budget
	}
	return fmt.Sprintf("%s is %d tokens (budget: %d). Compress.", file, r.Count, budget)
}

// Grammar formats the full grammar text output: sentence count, passive
// voice instances, and grammar issues.
func Grammar(file string, r *schema.GrammarReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d sentences analyzed\n", file, r.SentenceCount)

	if r.PassiveCount > 0 {
		fmt.Fprintf(&sb, "  Passive voice: %d instances (%.1f%%)\n", r.PassiveCount, r.PassivePercentage)
		for _, pv := range r.PassiveVoice {
			fmt.Fprintf(&sb, "    Sentence %d: %q (confidence: %.0f%%)\n",
				pv.SentenceNum, pv.Text, pv.Confidence*100)
		}
	} else {
		sb.WriteString("  Passive voice: none detected\n")
	}

	if len(r.Issues) == 0 {
		sb.WriteString("  Grammar issues: none detected\n")
	} else {
		fmt.Fprintf(&sb, "  Grammar issues: %d\n", len(r.Issues))
		for _, issue := range r.Issues {
			fmt.Fprintf(&sb, "    [%s] Sentence %d: %s\n",
				strings.ToUpper(string(issue.Severity)), issue.SentenceNum, issue.Message)
		}
	}
	return sb.String()
}

// GrammarFailure is the error message for passive voice over the ceiling.
func GrammarFailure(file string, r *schema.GrammarReport) string {
	max := 0.0
	if r.PassiveMax != nil {
		max = *r.PassiveMax
	}
	return fmt.Sprintf("%s has %.1f%% passive voice (max: %.0f%%). Rewrite passive constructions.",
		file, r.PassivePercentage, max)
}

// Completeness formats the passing completeness output.
func Completeness(file string, r *schema.CompletenessReport) string {
	return fmt.Sprintf("PASS: %s (%s completeness check)", file, r.Template)
}

// CompletenessFailure is the error message listing missing and empty
// sections.
func CompletenessFailure(file string, r *schema.CompletenessReport) string {
	var issues []string
	for _, section := range r.Sections {
		switch section.Status {
		case schema.SectionMissing:
			issues = append(issues, fmt.Sprintf("  MISSING: ## %s", section.Name))
		case schema.SectionEmpty:
			issues = append(issues, fmt.Sprintf("  EMPTY:   ## %s (contains only placeholders or whitespace)", section.Name))
		}
	}
	return fmt.Sprintf("%s (%s completeness check)\n%s", file, r.Template, strings.Join(issues, "\n"))
}

// Analyze formats the analysis text output section by section. Sub-reports
// that were not run are skipped; count-based sections are skipped when
// nothing was found.
func Analyze(file string, report *schema.FullAnalysisReport) string {
	var sb strings.Builder
	sb.WriteString(file)
	sb.WriteString("\n")

	if r := report.Readability; r != nil {
		fmt.Fprintf(&sb, "\n  Readability: Grade %.1f, %d sentences, %d words\n",
			r.Grade, r.Sentences, r.Words)
	}
	if g := report.Grammar; g != nil {
		fmt.Fprintf(&sb, "\n  Grammar: %d issues, %d passive (%.1f%%)\n",
			len(g.Issues), g.PassiveCount, g.PassivePercentage)
	}
	if s := report.StickySentences; s != nil {
		fmt.Fprintf(&sb, "\n  Sticky: Glue index %.1f%%, %d sticky sentences\n",
			s.OverallGlueIndex, s.StickyCount)
	}
	if p := report.Pacing; p != nil {
		fmt.Fprintf(&sb, "\n  Pacing: Fast %.0f%% / Medium %.0f%% / Slow %.0f%%\n",
			p.FastPercentage, p.MediumPercentage, p.SlowPercentage)
	}
	if sl := report.SentenceLength; sl != nil {
		fmt.Fprintf(&sb, "\n  Length: Avg %.1f words, variety %.1f/10\n",
			sl.AvgLength, sl.VarietyScore)
	}
	if t := report.Transitions; t != nil {
		fmt.Fprintf(&sb, "\n  Transitions: %.0f%% of sentences, %d unique\n",
			t.TransitionPercentage, t.UniqueTransitions)
	}
	if o := report.OverusedWords; o != nil && len(o.OverusedWords) > 0 {
		var top []string
		for i, w := range o.OverusedWords {
			if i >= 5 {
				break
			}
			top = append(top, fmt.Sprintf("%q (%.1f%%)", w.Word, w.Frequency))
		}
		fmt.Fprintf(&sb, "\n  Overused: %s\n", strings.Join(top, ", "))
	}
	if d := report.Diction; d != nil && d.TotalVague > 0 {
		fmt.Fprintf(&sb, "\n  Diction: %d vague words\n", d.TotalVague)
	}
	if c := report.Cliches; c != nil && c.TotalCliches > 0 {
		fmt.Fprintf(&sb, "\n  Cliches: %d cliches found\n", c.TotalCliches)
	}
	if j := report.Jargon; j != nil && j.TotalJargon > 0 {
		fmt.Fprintf(&sb, "\n  Jargon: %d jargon terms\n", j.TotalJargon)
	}
	if st := report.Style; st != nil {
		fmt.Fprintf(&sb, "\n  Style: Score %d/100, %d adverbs, %d hidden verbs\n",
			st.StyleScore, st.AdverbCount, len(st.HiddenVerbs))
	}
	return sb.String()
}

// StyleFailure is the error message for a style score under the minimum.
func StyleFailure(file string, score, min int) string {
	return fmt.Sprintf("%s style score %d is below minimum %d. Improve writing quality.",
		file, score, min)
}

// Lint formats the per-check lint summary.
func Lint(report *schema.LintReport) string {
	var sb strings.Builder
	sb.WriteString(report.File)
	sb.WriteString("\n")

	if a := report.Analyze; a != nil {
		if st := a.Style; st != nil {
			fmt.Fprintf(&sb, "  analyze: style %d/100\n", st.StyleScore)
		}
		if r := a.Readability; r != nil {
			fmt.Fprintf(&sb, "  analyze: grade %.1f\n", r.Grade)
		}
	}
	if r := report.Readability; r != nil {
		fmt.Fprintf(&sb, "  readability: %s grade %.1f\n", passFail(!r.OverMax), r.Grade)
	}
	if g := report.Grammar; g != nil {
		fmt.Fprintf(&sb, "  grammar: %s %.1f%% passive\n", passFail(!g.OverMax), g.PassivePercentage)
	}
	if c := report.Completeness; c != nil {
		fmt.Fprintf(&sb, "  completeness: %s (%s)\n", passFail(c.Pass), c.Template)
	}
	if t := report.Tokens; t != nil {
		if t.Budget != nil {
			fmt.Fprintf(&sb, "  tokens: %s %d/%d\n", passFail(!t.OverBudget), t.Count, *t.Budget)
		} else {
			fmt.Fprintf(&sb, "  tokens: %d\n", t.Count)
		}
	}
	return sb.String()
}

// LintFailure is the error message for an overall lint failure.
func LintFailure(file string) string {
	return fmt.Sprintf("%s failed lint checks", file)
}

// SkipNoRules is the message when the config has no rules at all.
const SkipNoRules = "SKIP: no rules configured"

// SkipNoMatch is the message when no rule matches the file.
func SkipNoMatch(file string) string {
	return fmt.Sprintf("SKIP: no rules match %s", file)
}

func passFail(pass bool) string {
	if pass {
		return "PASS"
	}
	return "FAIL"
}
