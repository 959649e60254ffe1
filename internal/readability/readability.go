// Package readability scores text with the Flesch-Kincaid Grade Level.
//
// Formula: 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59. Lower is
// more readable; a reasonable target is 8 for user docs and 12 for technical
// docs. Syllable counts are dictionary-backed with a heuristic fallback.
package readability

import (
	"strings"
	"unicode"

	"github.com/dshills/prosegate/internal/mdstrip"
	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

// Check scores text and reports whether it exceeds maxGrade (nil means no
// limit). stripMD strips markdown formatting before scoring. Returns
// schema.ErrEmptyInput when the text has no words or sentences.
func Check(text string, stripMD bool, maxGrade *float64) (*schema.ReadabilityReport, error) {
	prose := text
	if stripMD {
		prose = mdstrip.ToProse(text)
	}

	sentences := len(textseg.SplitSentences(prose))
	words := countWords(prose)
	syllables := countSyllables(prose)

	if words == 0 || sentences == 0 {
		return nil, schema.ErrEmptyInput
	}

	wordsPerSentence := float64(words) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(words)
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	overMax := maxGrade != nil && grade > *maxGrade

	return &schema.ReadabilityReport{
		Grade:     grade,
		Sentences: sentences,
		Words:     words,
		Syllables: syllables,
		MaxGrade:  maxGrade,
		OverMax:   overMax,
	}, nil
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func countSyllables(text string) int {
	total := 0
	for _, w := range strings.Fields(text) {
		cleaned := strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
		if cleaned == "" {
			continue
		}
		total += wordlists.CountSyllables(cleaned)
	}
	return total
}
