// Package analysis runs the full writing quality analysis.
//
// The analysis decomposes into 18 independent checks orchestrated by
// RunFull. Each check is a pure function over sentences, words, paragraphs,
// or raw prose, so callers can also invoke checks individually.
package analysis

import (
	"math"
	"strings"

	"github.com/dshills/prosegate/internal/grammar"
	"github.com/dshills/prosegate/internal/mdstrip"
	"github.com/dshills/prosegate/internal/readability"
	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

// AllChecks lists every check name, in report order.
var AllChecks = []string{
	"readability",
	"grammar",
	"sticky",
	"pacing",
	"sentence_length",
	"transitions",
	"overused",
	"repeated",
	"echoes",
	"sensory",
	"diction",
	"cliches",
	"consistency",
	"acronyms",
	"jargon",
	"complex_paragraphs",
	"conjunction_starts",
	"style",
}

var validChecks = func() map[string]bool {
	m := make(map[string]bool, len(AllChecks))
	for _, c := range AllChecks {
		m[c] = true
	}
	return m
}()

// ValidateChecks verifies that every name is a known check.
func ValidateChecks(names []string) error {
	var unknown []string
	for _, n := range names {
		if !validChecks[n] {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return &schema.UnknownCheckError{Names: unknown, Available: AllChecks}
	}
	return nil
}

// Options carries the tunable thresholds for RunFull.
type Options struct {
	// MaxGrade is the maximum readability grade; nil means no limit.
	MaxGrade *float64
	// PassiveMax is the maximum passive voice percentage; nil means no limit.
	PassiveMax *float64
	// Dialect enables wrong-dialect spelling detection when non-empty.
	Dialect wordlists.Dialect
}

// RunFull runs the writing analysis. A nil or empty checks list runs all
// checks. Returns schema.ErrEmptyInput when the prose is blank after
// stripping. The readability and grammar sub-checks degrade to nil on their
// own errors rather than failing the whole analysis.
func RunFull(input string, stripMD bool, checks []string, opts Options) (*schema.FullAnalysisReport, error) {
	prose := input
	if stripMD {
		prose = mdstrip.ToProse(input)
	}

	if strings.TrimSpace(prose) == "" {
		return nil, schema.ErrEmptyInput
	}

	enabled := map[string]bool{}
	if len(checks) == 0 {
		enabled = validChecks
	} else {
		for _, c := range checks {
			enabled[c] = true
		}
	}

	sentences := textseg.SplitSentences(prose)
	words := textseg.ExtractWords(prose)
	paragraphs := textseg.SplitParagraphs(prose)

	report := &schema.FullAnalysisReport{}

	if enabled["readability"] {
		report.Readability, _ = readability.Check(prose, false, opts.MaxGrade)
	}
	if enabled["grammar"] {
		report.Grammar, _ = grammar.CheckFull(prose, false, opts.PassiveMax)
	}

	passiveCount := 0
	if report.Grammar != nil {
		passiveCount = report.Grammar.PassiveCount
	}

	if enabled["sticky"] {
		report.StickySentences = Sticky(sentences, words)
	}
	if enabled["pacing"] {
		report.Pacing = Pacing(sentences)
	}
	if enabled["sentence_length"] {
		report.SentenceLength = SentenceLength(sentences)
	}
	if enabled["transitions"] {
		report.Transitions = Transitions(sentences)
	}
	if enabled["overused"] {
		report.OverusedWords = Overused(words)
	}
	if enabled["repeated"] {
		report.RepeatedPhrases = Repeated(words)
	}
	if enabled["echoes"] {
		report.Echoes = Echoes(paragraphs)
	}
	if enabled["sensory"] {
		report.Sensory = Sensory(words)
	}
	if enabled["diction"] {
		report.Diction = Diction(prose, words)
	}
	if enabled["cliches"] {
		report.Cliches = Cliches(prose)
	}
	if enabled["consistency"] {
		report.Consistency = Consistency(prose, opts.Dialect)
	}
	if enabled["acronyms"] {
		report.Acronyms = Acronyms(prose)
	}
	if enabled["jargon"] {
		report.Jargon = Jargon(prose, words)
	}
	if enabled["complex_paragraphs"] {
		report.ComplexParagraphs = ComplexParagraphs(paragraphs)
	}
	if enabled["conjunction_starts"] {
		report.ConjunctionStarts = ConjunctionStarts(sentences)
	}

	if enabled["style"] {
		// Style scoring needs sticky and diction data even when those
		// checks are not requested.
		stickyForScore := report.StickySentences
		if stickyForScore == nil {
			stickyForScore = Sticky(sentences, words)
		}
		dictionForScore := report.Diction
		if dictionForScore == nil {
			dictionForScore = Diction(prose, words)
		}
		report.Style = Style(prose, words, passiveCount, stickyForScore, dictionForScore)
	}

	return report, nil
}

func round1(v float64) float64 {
	return math.Round(v*10.0) / 10.0
}

// truncate limits s to max bytes, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
