package analysis

import (
	"regexp"
	"sort"

	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/wordlists"
)

var adverbRe = regexp.MustCompile(`\b\w+ly\b`)

// Style reports adverb usage, hidden verbs (nominalizations), and a
// composite style score. The score depends on the passive count and the
// sticky and diction reports.
func Style(text string, words []string, passiveCount int,
	sticky *schema.StickySentencesReport, diction *schema.DictionReport) *schema.StyleReport {

	adverbCount := len(adverbRe.FindAllString(text, -1))

	hiddenCounts := map[string]int{}
	for _, w := range words {
		if _, ok := wordlists.HiddenVerbs[w]; ok {
			hiddenCounts[w]++
		}
	}

	hiddenVerbs := []schema.HiddenVerbSuggestion{}
	for noun, count := range hiddenCounts {
		hiddenVerbs = append(hiddenVerbs, schema.HiddenVerbSuggestion{
			Noun:  noun,
			Verb:  wordlists.HiddenVerbs[noun],
			Count: count,
		})
	}
	sort.SliceStable(hiddenVerbs, func(i, j int) bool {
		if hiddenVerbs[i].Count != hiddenVerbs[j].Count {
			return hiddenVerbs[i].Count > hiddenVerbs[j].Count
		}
		return hiddenVerbs[i].Noun < hiddenVerbs[j].Noun
	})

	return &schema.StyleReport{
		AdverbCount: adverbCount,
		HiddenVerbs: hiddenVerbs,
		StyleScore:  styleScore(passiveCount, adverbCount, hiddenVerbs, sticky, diction),
	}
}

// styleScore computes the 0-100 composite score. Starts at 100 and deducts:
// passive voice 2 per instance (max 20), adverbs 0.5 each (max 15), hidden
// verb types 2 each (max 10), glue index overage past 25% (max 15), vague
// words 0.5 each (max 10).
func styleScore(passiveCount, adverbCount int, hiddenVerbs []schema.HiddenVerbSuggestion,
	sticky *schema.StickySentencesReport, diction *schema.DictionReport) int {

	score := 100.0
	score -= capAt(float64(passiveCount)*2.0, 20.0)
	score -= capAt(float64(adverbCount)*0.5, 15.0)
	score -= capAt(float64(len(hiddenVerbs))*2.0, 10.0)
	if sticky.OverallGlueIndex > 25.0 {
		score -= capAt(sticky.OverallGlueIndex-25.0, 15.0)
	}
	score -= capAt(float64(diction.TotalVague)*0.5, 10.0)

	if score < 0 {
		return 0
	}
	return int(score)
}

func capAt(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}
