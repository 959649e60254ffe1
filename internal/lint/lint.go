// Package lint runs the checks a resolved rule set configures for a file and
// aggregates them into a single pass/fail report.
//
// Settings cascade: rule-level thresholds override project config, which
// overrides built-in defaults. Inline suppression directives are honored at
// both file level (a fully suppressed check is skipped) and region level
// (individual findings inside a suppressed line range are dropped and the
// affected aggregates recomputed).
package lint

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/prosegate/internal/analysis"
	"github.com/dshills/prosegate/internal/completeness"
	"github.com/dshills/prosegate/internal/config"
	"github.com/dshills/prosegate/internal/grammar"
	"github.com/dshills/prosegate/internal/readability"
	"github.com/dshills/prosegate/internal/rules"
	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/suppress"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/tokens"
	"github.com/dshills/prosegate/internal/wordlists"
)

// Run executes every check configured in resolved against content. filePath
// is used for the report and to decide whether markdown stripping applies.
func Run(ctx context.Context, filePath, content string, resolved rules.ResolvedChecks, cfg *config.Config) (*schema.LintReport, error) {
	stripMD := strings.HasSuffix(filePath, ".md")
	suppressions := suppress.Parse(content)
	pass := true

	report := &schema.LintReport{File: filePath}

	if ac := resolved.Analyze; ac != nil {
		analyzeReport, stylePass, err := runAnalyze(content, stripMD, ac, cfg, suppressions)
		if err != nil {
			return nil, err
		}
		report.Analyze = analyzeReport
		if !stylePass {
			pass = false
		}
	}

	if rc := resolved.Readability; rc != nil && !suppressions.IsFullySuppressed("readability") {
		maxGrade := firstFloat(rc.MaxGrade, cfg.MaxGrade)
		r, err := readability.Check(content, stripMD, maxGrade)
		if err != nil {
			return nil, err
		}
		if r.OverMax {
			pass = false
		}
		report.Readability = r
	}

	if gc := resolved.Grammar; gc != nil && !suppressions.IsFullySuppressed("grammar") {
		passiveMax := firstFloat(gc.PassiveMax, cfg.PassiveMaxPercent)
		r, err := grammar.CheckFull(content, stripMD, passiveMax)
		if err != nil {
			return nil, err
		}
		if !suppressions.IsEmpty() {
			filterGrammarReport(r, content, suppressions, passiveMax)
		}
		if r.OverMax {
			pass = false
		}
		report.Grammar = r
	}

	if cc := resolved.Completeness; cc != nil && !suppressions.IsFullySuppressed("completeness") {
		r, err := completeness.Check(content, cc.Template, cfg.Templates)
		if err != nil {
			return nil, err
		}
		if !r.Pass {
			pass = false
		}
		report.Completeness = r
	}

	if tc := resolved.Tokens; tc != nil && !suppressions.IsFullySuppressed("tokens") {
		backend := tc.Tokenizer
		if backend == "" {
			backend = cfg.Tokenizer
		}
		r, err := tokens.Count(ctx, content, tc.Budget, backend)
		if err != nil {
			return nil, err
		}
		if r.OverBudget {
			pass = false
		}
		report.Tokens = r
	}

	report.Pass = pass
	return report, nil
}

// runAnalyze resolves the sub-check list, runs the analysis, and applies
// region filtering. stylePass is false when a style minimum is configured and
// the score falls below it.
func runAnalyze(content string, stripMD bool, ac *rules.AnalyzeConfig, cfg *config.Config, suppressions *suppress.Map) (*schema.FullAnalysisReport, bool, error) {
	checkList, hasList, err := resolveAnalyzeChecks(ac)
	if err != nil {
		return nil, true, err
	}
	if hasList && !suppressions.IsEmpty() {
		kept := checkList[:0]
		for _, c := range checkList {
			if !suppressions.IsFullySuppressed(c) {
				kept = append(kept, c)
			}
		}
		checkList = kept
		// All requested sub-checks suppressed: skip analyze entirely.
		if len(checkList) == 0 {
			return nil, true, nil
		}
	}

	opts := analysis.Options{
		MaxGrade:   firstFloat(ac.MaxGrade, cfg.MaxGrade),
		PassiveMax: firstFloat(ac.PassiveMax, cfg.PassiveMaxPercent),
	}
	dialect := ac.Dialect
	if dialect == "" {
		dialect = cfg.Dialect
	}
	if dialect != "" {
		d, ok := wordlists.ParseDialect(dialect)
		if !ok {
			return nil, true, fmt.Errorf("lint: unknown dialect %q (use en-us, en-gb, en-ca, or en-au)", dialect)
		}
		opts.Dialect = d
	}

	report, err := analysis.RunFull(content, stripMD, checkList, opts)
	if err != nil {
		return nil, true, err
	}
	if !suppressions.IsEmpty() {
		filterAnalysisReport(report, content, suppressions)
	}

	stylePass := true
	styleMin := ac.StyleMin
	if styleMin == nil {
		styleMin = cfg.StyleMinScore
	}
	if styleMin != nil && report.Style != nil && report.Style.StyleScore < *styleMin {
		stylePass = false
	}
	return report, stylePass, nil
}

// resolveAnalyzeChecks turns a rule's checks/exclude into the final sub-check
// list. hasList is false when the rule names neither, which means all checks.
func resolveAnalyzeChecks(ac *rules.AnalyzeConfig) (checks []string, hasList bool, err error) {
	switch {
	case len(ac.Checks) > 0 && len(ac.Exclude) > 0:
		return nil, false, &schema.ConflictingConfigError{
			Detail: "rule cannot specify both 'checks' and 'exclude' for analyze",
		}
	case len(ac.Checks) > 0:
		if err := analysis.ValidateChecks(ac.Checks); err != nil {
			return nil, false, err
		}
		return append([]string(nil), ac.Checks...), true, nil
	case len(ac.Exclude) > 0:
		if err := analysis.ValidateChecks(ac.Exclude); err != nil {
			return nil, false, err
		}
		excluded := make(map[string]bool, len(ac.Exclude))
		for _, c := range ac.Exclude {
			excluded[c] = true
		}
		var remaining []string
		for _, c := range analysis.AllChecks {
			if !excluded[c] {
				remaining = append(remaining, c)
			}
		}
		return remaining, true, nil
	default:
		return nil, false, nil
	}
}

// lineMaps builds sentence and paragraph line maps over the directive-blanked
// content, so segment indices line up with the analysis modules while line
// numbers stay true to the original file.
func lineMaps(content string) (sentences, paragraphs []textseg.LineRange) {
	clean := suppress.StripDirectives(content)
	sentences = textseg.SentenceLineMap(clean, textseg.SplitSentences(clean))
	paragraphs = textseg.ParagraphLineMap(clean, textseg.SplitParagraphs(clean))
	return sentences, paragraphs
}

// rangeAt returns the line range for a 1-indexed segment number, or the zero
// range when the segment is out of bounds (which never matches a suppression).
func rangeAt(ranges []textseg.LineRange, num int) textseg.LineRange {
	if num < 1 || num > len(ranges) {
		return textseg.LineRange{}
	}
	return ranges[num-1]
}

func suppressed(m *suppress.Map, check string, r textseg.LineRange) bool {
	for line := r.Start; line <= r.End; line++ {
		if m.IsSuppressed(check, line) {
			return true
		}
	}
	return false
}

// filterGrammarReport drops findings inside suppressed regions and recomputes
// the passive aggregates.
func filterGrammarReport(r *schema.GrammarReport, content string, m *suppress.Map, passiveMax *float64) {
	sentenceMap, _ := lineMaps(content)

	kept := r.Issues[:0]
	for _, issue := range r.Issues {
		if !suppressed(m, "grammar", rangeAt(sentenceMap, issue.SentenceNum)) {
			kept = append(kept, issue)
		}
	}
	r.Issues = kept

	keptPV := r.PassiveVoice[:0]
	for _, pv := range r.PassiveVoice {
		if !suppressed(m, "grammar", rangeAt(sentenceMap, pv.SentenceNum)) {
			keptPV = append(keptPV, pv)
		}
	}
	r.PassiveVoice = keptPV

	r.PassiveCount = len(r.PassiveVoice)
	if r.SentenceCount > 0 {
		r.PassivePercentage = float64(r.PassiveCount) / float64(r.SentenceCount) * 100.0
	} else {
		r.PassivePercentage = 0
	}
	r.OverMax = passiveMax != nil && r.PassivePercentage > *passiveMax
}

// filterAnalysisReport applies region-level suppression to the sub-reports
// that carry sentence or paragraph locations.
func filterAnalysisReport(report *schema.FullAnalysisReport, content string, m *suppress.Map) {
	sentenceMap, paragraphMap := lineMaps(content)

	if gr := report.Grammar; gr != nil {
		kept := gr.Issues[:0]
		for _, issue := range gr.Issues {
			if !suppressed(m, "grammar", rangeAt(sentenceMap, issue.SentenceNum)) {
				kept = append(kept, issue)
			}
		}
		gr.Issues = kept

		keptPV := gr.PassiveVoice[:0]
		for _, pv := range gr.PassiveVoice {
			if !suppressed(m, "grammar", rangeAt(sentenceMap, pv.SentenceNum)) {
				keptPV = append(keptPV, pv)
			}
		}
		gr.PassiveVoice = keptPV

		gr.PassiveCount = len(gr.PassiveVoice)
		if gr.SentenceCount > 0 {
			gr.PassivePercentage = float64(gr.PassiveCount) / float64(gr.SentenceCount) * 100.0
		} else {
			gr.PassivePercentage = 0
		}
		gr.OverMax = gr.PassiveMax != nil && gr.PassivePercentage > *gr.PassiveMax
	}

	if ss := report.StickySentences; ss != nil {
		kept := ss.StickySentences[:0]
		for _, s := range ss.StickySentences {
			if !suppressed(m, "sticky_sentences", rangeAt(sentenceMap, s.SentenceNum)) {
				kept = append(kept, s)
			}
		}
		ss.StickySentences = kept
		ss.StickyCount = len(ss.StickySentences)
		// semi_sticky_count stays as computed: the detail list only holds
		// sticky (>45%) sentences, so semi-sticky entries are not available
		// for region filtering.
	}

	if sl := report.SentenceLength; sl != nil {
		kept := sl.VeryLong[:0]
		for _, ls := range sl.VeryLong {
			if !suppressed(m, "sentence_length", rangeAt(sentenceMap, ls.SentenceNum)) {
				kept = append(kept, ls)
			}
		}
		sl.VeryLong = kept
	}

	if cp := report.ComplexParagraphs; cp != nil {
		totalParagraphs := len(paragraphMap)
		kept := cp.ComplexParagraphs[:0]
		for _, p := range cp.ComplexParagraphs {
			if !suppressed(m, "complex_paragraphs", rangeAt(paragraphMap, p.ParagraphNum)) {
				kept = append(kept, p)
			}
		}
		cp.ComplexParagraphs = kept
		cp.ComplexCount = len(cp.ComplexParagraphs)
		if totalParagraphs > 0 {
			cp.Percentage = float64(cp.ComplexCount) / float64(totalParagraphs) * 100.0
		} else {
			cp.Percentage = 0
		}
	}

	if er := report.Echoes; er != nil {
		kept := er.Echoes[:0]
		for _, echo := range er.Echoes {
			if !suppressed(m, "echoes", rangeAt(paragraphMap, echo.Paragraph)) {
				kept = append(kept, echo)
			}
		}
		er.Echoes = kept
		er.TotalEchoes = len(er.Echoes)
	}
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
