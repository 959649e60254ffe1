package analysis

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

// Sticky measures glue word density. Sentences with >45% glue words are
// sticky, 35-45% semi-sticky. Flagged sentence text is truncated to 100
// bytes.
func Sticky(sentences, words []string) *schema.StickySentencesReport {
	totalGlue := 0
	for _, w := range words {
		if wordlists.GlueWords[w] {
			totalGlue++
		}
	}
	overallGlueIndex := 0.0
	if len(words) > 0 {
		overallGlueIndex = float64(totalGlue) / float64(len(words)) * 100.0
	}

	report := &schema.StickySentencesReport{
		OverallGlueIndex: round1(overallGlueIndex),
		StickySentences:  []schema.StickySentence{},
	}

	for idx, sentence := range sentences {
		sWords := textseg.ExtractWords(sentence)
		if len(sWords) == 0 {
			continue
		}
		glue := 0
		for _, w := range sWords {
			if wordlists.GlueWords[w] {
				glue++
			}
		}
		pct := float64(glue) / float64(len(sWords)) * 100.0

		switch {
		case pct > 45.0:
			report.StickyCount++
			report.StickySentences = append(report.StickySentences, schema.StickySentence{
				SentenceNum:    idx + 1,
				GluePercentage: round1(pct),
				Text:           truncate(sentence, 100),
			})
		case pct > 35.0:
			report.SemiStickyCount++
		}
	}

	return report
}

// Pacing classifies sentences as fast (<10 words), medium (10-20), or slow
// (>20) and reports the distribution.
func Pacing(sentences []string) *schema.PacingReport {
	if len(sentences) == 0 {
		return &schema.PacingReport{}
	}

	total := float64(len(sentences))
	var fast, medium, slow int
	for _, sentence := range sentences {
		switch n := len(textseg.ExtractWords(sentence)); {
		case n < 10:
			fast++
		case n <= 20:
			medium++
		default:
			slow++
		}
	}

	return &schema.PacingReport{
		FastPercentage:   round1(float64(fast) / total * 100.0),
		MediumPercentage: round1(float64(medium) / total * 100.0),
		SlowPercentage:   round1(float64(slow) / total * 100.0),
	}
}

// SentenceLength reports length variety. The variety score is
// min(stddev/2, 10); sentences over 30 words are listed individually.
func SentenceLength(sentences []string) *schema.SentenceLengthReport {
	if len(sentences) == 0 {
		return &schema.SentenceLengthReport{VeryLong: []schema.LongSentence{}}
	}

	lengths := make([]int, len(sentences))
	total := 0
	for i, s := range sentences {
		lengths[i] = len(textseg.ExtractWords(s))
		total += lengths[i]
	}

	count := float64(len(lengths))
	avg := float64(total) / count

	variance := 0.0
	for _, l := range lengths {
		d := float64(l) - avg
		variance += d * d
	}
	variance /= count
	stdDev := math.Sqrt(variance)

	varietyScore := stdDev / 2.0
	if varietyScore > 10.0 {
		varietyScore = 10.0
	}

	shortest, longest := lengths[0], lengths[0]
	veryLong := []schema.LongSentence{}
	for i, l := range lengths {
		if l < shortest {
			shortest = l
		}
		if l > longest {
			longest = l
		}
		if l > 30 {
			veryLong = append(veryLong, schema.LongSentence{SentenceNum: i + 1, WordCount: l})
		}
	}

	return &schema.SentenceLengthReport{
		AvgLength:    round1(avg),
		StdDeviation: round1(stdDev),
		VarietyScore: round1(varietyScore),
		Shortest:     shortest,
		Longest:      longest,
		VeryLong:     veryLong,
	}
}

// Transitions reports transition word and phrase usage across sentences.
func Transitions(sentences []string) *schema.TransitionReport {
	if len(sentences) == 0 {
		return &schema.TransitionReport{MostCommon: []schema.TransitionCount{}}
	}

	counts := map[string]int{}
	sentencesWith := 0

	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		found := false

		for tw := range wordlists.TransitionWords {
			for _, w := range strings.Fields(lower) {
				if strings.TrimFunc(w, isNotLetter) == tw {
					counts[tw]++
					found = true
					break
				}
			}
		}

		for _, tp := range wordlists.TransitionPhrases {
			if strings.Contains(lower, tp) {
				counts[tp]++
				found = true
			}
		}

		if found {
			sentencesWith++
		}
	}

	totalTransitions := 0
	mostCommon := make([]schema.TransitionCount, 0, len(counts))
	for t, c := range counts {
		totalTransitions += c
		mostCommon = append(mostCommon, schema.TransitionCount{Transition: t, Count: c})
	}
	sort.SliceStable(mostCommon, func(i, j int) bool {
		if mostCommon[i].Count != mostCommon[j].Count {
			return mostCommon[i].Count > mostCommon[j].Count
		}
		return mostCommon[i].Transition < mostCommon[j].Transition
	})

	return &schema.TransitionReport{
		SentencesWithTransitions: sentencesWith,
		TransitionPercentage:     round1(float64(sentencesWith) / float64(len(sentences)) * 100.0),
		TotalTransitions:         totalTransitions,
		UniqueTransitions:        len(counts),
		MostCommon:               mostCommon,
	}
}

// ConjunctionStarts counts sentences beginning with a coordinating
// conjunction.
func ConjunctionStarts(sentences []string) *schema.ConjunctionStartsReport {
	if len(sentences) == 0 {
		return &schema.ConjunctionStartsReport{}
	}

	count := 0
	for _, sentence := range sentences {
		fields := strings.Fields(sentence)
		if len(fields) == 0 {
			continue
		}
		first := strings.ToLower(strings.TrimFunc(fields[0], isNotLetter))
		if wordlists.Conjunctions[first] {
			count++
		}
	}

	return &schema.ConjunctionStartsReport{
		Count:      count,
		Percentage: round1(float64(count) / float64(len(sentences)) * 100.0),
	}
}

func isNotLetter(r rune) bool { return !unicode.IsLetter(r) }
