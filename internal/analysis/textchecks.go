package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

// Cliches detects cliches by case-insensitive substring matching.
func Cliches(text string) *schema.ClichesReport {
	lower := strings.ToLower(text)
	report := &schema.ClichesReport{Cliches: []schema.ClicheFound{}}

	for _, cliche := range wordlists.Cliches {
		if count := strings.Count(lower, cliche); count > 0 {
			report.Cliches = append(report.Cliches, schema.ClicheFound{Cliche: cliche, Count: count})
			report.TotalCliches += count
		}
	}

	sort.SliceStable(report.Cliches, func(i, j int) bool {
		return report.Cliches[i].Count > report.Cliches[j].Count
	})

	return report
}

// Consistency checks for inconsistent US/UK spelling and hyphenation. With an
// empty dialect only mixed usage is flagged; with a dialect set,
// wrong-dialect spellings are flagged as well.
func Consistency(text string, dialect wordlists.Dialect) *schema.ConsistencyReport {
	lower := strings.ToLower(text)
	issues := []string{}

	for _, pair := range wordlists.SpellingPairs {
		hasUS := wordPresent(lower, pair.US)
		hasUK := wordPresent(lower, pair.UK)

		if dialect != "" {
			if dialect.PrefersUS(pair.Pattern) && hasUK {
				issues = append(issues, fmt.Sprintf(
					"Wrong dialect: %q found, expected %q (%s)", pair.UK, pair.US, dialect))
			} else if !dialect.PrefersUS(pair.Pattern) && hasUS {
				issues = append(issues, fmt.Sprintf(
					"Wrong dialect: %q found, expected %q (%s)", pair.US, pair.UK, dialect))
			}
		}
		if hasUS && hasUK {
			issues = append(issues, fmt.Sprintf(
				"Mixed US/UK spelling: both %q and %q found", pair.US, pair.UK))
		}
	}

	for _, hp := range wordlists.HyphenPatterns {
		joined, hyphenated := hp[0], hp[1]
		if strings.Contains(lower, joined) && strings.Contains(lower, hyphenated) {
			issues = append(issues, fmt.Sprintf(
				"Inconsistent hyphenation: both %q and %q found", joined, hyphenated))
		}
	}

	return &schema.ConsistencyReport{
		Dialect:     string(dialect),
		TotalIssues: len(issues),
		Issues:      issues,
	}
}

// wordPresent reports whether word occurs as a whole word: the characters
// around the match must not be ASCII letters.
func wordPresent(text, word string) bool {
	start := 0
	for {
		pos := strings.Index(text[start:], word)
		if pos < 0 {
			return false
		}
		abs := start + pos
		beforeOK := abs == 0 || !isASCIILetter(text[abs-1])
		after := abs + len(word)
		afterOK := after >= len(text) || !isASCIILetter(text[after])
		if beforeOK && afterOK {
			return true
		}
		start = abs + 1
	}
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

var acronymRe = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// Acronyms reports acronym usage: runs of two or more uppercase letters.
func Acronyms(text string) *schema.AcronymReport {
	counts := map[string]int{}
	for _, m := range acronymRe.FindAllString(text, -1) {
		counts[m]++
	}

	report := &schema.AcronymReport{AcronymList: []schema.AcronymCount{}}
	for a, c := range counts {
		report.TotalAcronyms += c
		report.AcronymList = append(report.AcronymList, schema.AcronymCount{Acronym: a, Count: c})
	}
	report.UniqueAcronyms = len(counts)

	sort.SliceStable(report.AcronymList, func(i, j int) bool {
		if report.AcronymList[i].Count != report.AcronymList[j].Count {
			return report.AcronymList[i].Count > report.AcronymList[j].Count
		}
		return report.AcronymList[i].Acronym < report.AcronymList[j].Acronym
	})

	return report
}

// ComplexParagraphs flags paragraphs with average sentence length over 20
// words and average syllables per word over 1.8.
func ComplexParagraphs(paragraphs []string) *schema.ComplexParagraphsReport {
	report := &schema.ComplexParagraphsReport{ComplexParagraphs: []schema.ComplexParagraph{}}
	if len(paragraphs) == 0 {
		return report
	}

	for idx, paragraph := range paragraphs {
		sentences := textseg.SplitSentences(paragraph)
		if len(sentences) == 0 {
			continue
		}
		words := textseg.ExtractWords(paragraph)
		if len(words) == 0 {
			continue
		}

		avgSentenceLength := float64(len(words)) / float64(len(sentences))
		totalSyllables := 0
		for _, w := range words {
			totalSyllables += wordlists.CountSyllables(w)
		}
		avgSyllables := float64(totalSyllables) / float64(len(words))

		if avgSentenceLength > 20.0 && avgSyllables > 1.8 {
			report.ComplexParagraphs = append(report.ComplexParagraphs, schema.ComplexParagraph{
				ParagraphNum:      idx + 1,
				AvgSentenceLength: round1(avgSentenceLength),
				AvgSyllables:      round1(avgSyllables),
			})
		}
	}

	report.ComplexCount = len(report.ComplexParagraphs)
	report.Percentage = round1(float64(report.ComplexCount) / float64(len(paragraphs)) * 100.0)

	return report
}
