// Package grammar detects common grammar issues and passive voice.
//
// Grammar checking covers subject-verb disagreement, double negatives,
// run-on sentences, comma splices, double spaces, and missing terminal
// punctuation. Passive voice detection scans for auxiliary + past participle
// pairs with confidence scoring, backed by the irregular verb and adjective
// exception dictionaries.
package grammar

import (
	"github.com/dshills/prosegate/internal/mdstrip"
	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
)

// CheckFull combines grammar checking and passive voice detection into one
// report. stripMD strips markdown before analysis; passiveMax, if set, is the
// maximum acceptable passive percentage relative to sentence count. Returns
// schema.ErrEmptyInput when no sentences are found.
func CheckFull(input string, stripMD bool, passiveMax *float64) (*schema.GrammarReport, error) {
	prose := input
	if stripMD {
		prose = mdstrip.ToProse(input)
	}

	sentences := textseg.SplitSentences(prose)
	if len(sentences) == 0 {
		return nil, schema.ErrEmptyInput
	}

	passiveMatches := DetectPassiveVoice(prose)
	passiveCount := len(passiveMatches)
	passivePercentage := float64(passiveCount) / float64(len(sentences)) * 100.0

	overMax := passiveMax != nil && passivePercentage > *passiveMax

	return &schema.GrammarReport{
		Issues:            CheckSentences(sentences),
		PassiveVoice:      passiveMatches,
		PassiveCount:      passiveCount,
		PassivePercentage: passivePercentage,
		SentenceCount:     len(sentences),
		PassiveMax:        passiveMax,
		OverMax:           overMax,
	}, nil
}
