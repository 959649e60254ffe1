package analysis

import (
	"sort"
	"strings"

	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

// Overused finds words over 0.5% frequency, excluding glue words and words
// of three letters or fewer, sorted by count descending.
func Overused(words []string) *schema.OverusedWordsReport {
	report := &schema.OverusedWordsReport{OverusedWords: []schema.OverusedWord{}}
	if len(words) == 0 {
		return report
	}

	total := float64(len(words))
	freq := map[string]int{}
	for _, w := range words {
		freq[w]++
	}
	report.TotalUniqueWords = len(freq)

	for w, count := range freq {
		pct := float64(count) / total * 100.0
		if len(w) > 3 && !wordlists.GlueWords[w] && pct > 0.5 {
			report.OverusedWords = append(report.OverusedWords, schema.OverusedWord{
				Word:      w,
				Count:     count,
				Frequency: round1(pct),
			})
		}
	}

	sort.SliceStable(report.OverusedWords, func(i, j int) bool {
		if report.OverusedWords[i].Count != report.OverusedWords[j].Count {
			return report.OverusedWords[i].Count > report.OverusedWords[j].Count
		}
		return report.OverusedWords[i].Word < report.OverusedWords[j].Word
	})

	return report
}

// Repeated finds 2-4 word n-grams appearing more than once. Returns up to 50
// phrases sorted by frequency.
func Repeated(words []string) *schema.RepeatedPhrasesReport {
	report := &schema.RepeatedPhrasesReport{Phrases: []schema.RepeatedPhrase{}}
	if len(words) < 2 {
		return report
	}

	counts := map[string]int{}
	for n := 2; n <= 4; n++ {
		if len(words) < n {
			continue
		}
		for i := 0; i+n <= len(words); i++ {
			counts[strings.Join(words[i:i+n], " ")]++
		}
	}

	for phrase, count := range counts {
		if count > 1 {
			report.Phrases = append(report.Phrases, schema.RepeatedPhrase{Phrase: phrase, Count: count})
		}
	}

	sort.SliceStable(report.Phrases, func(i, j int) bool {
		if report.Phrases[i].Count != report.Phrases[j].Count {
			return report.Phrases[i].Count > report.Phrases[j].Count
		}
		return report.Phrases[i].Phrase < report.Phrases[j].Phrase
	})
	if len(report.Phrases) > 50 {
		report.Phrases = report.Phrases[:50]
	}
	report.TotalRepeated = len(report.Phrases)

	return report
}

// Echoes detects words of four or more letters repeated within 20 words in
// the same paragraph. Returns up to 50 echoes sorted by shortest distance.
func Echoes(paragraphs []string) *schema.EchoesReport {
	report := &schema.EchoesReport{Echoes: []schema.Echo{}}

	for pIdx, paragraph := range paragraphs {
		words := textseg.ExtractWords(paragraph)
		if len(words) == 0 {
			continue
		}

		positions := map[string][]int{}
		var order []string
		for i, w := range words {
			if len(w) >= 4 && !wordlists.GlueWords[w] {
				if _, seen := positions[w]; !seen {
					order = append(order, w)
				}
				positions[w] = append(positions[w], i)
			}
		}

		for _, word := range order {
			posList := positions[word]
			if len(posList) < 2 {
				continue
			}
			for i := 1; i < len(posList); i++ {
				distance := posList[i] - posList[i-1]
				if distance < 20 {
					report.Echoes = append(report.Echoes, schema.Echo{
						Word:        word,
						Paragraph:   pIdx + 1,
						Distance:    distance,
						Occurrences: len(posList),
					})
				}
			}
		}
	}

	sort.SliceStable(report.Echoes, func(i, j int) bool {
		return report.Echoes[i].Distance < report.Echoes[j].Distance
	})
	if len(report.Echoes) > 50 {
		report.Echoes = report.Echoes[:50]
	}
	report.TotalEchoes = len(report.Echoes)

	return report
}

// Sensory reports sensory vocabulary usage across the five senses. A word in
// multiple sense sets is counted once, for the first sense that claims it.
func Sensory(words []string) *schema.SensoryReport {
	report := &schema.SensoryReport{BySense: map[string]schema.SenseData{}}
	if len(words) == 0 {
		return report
	}

	senseCounts := map[string]int{}
	totalSensory := 0
	for _, w := range words {
		for sense, senseSet := range wordlists.SensoryWords {
			if senseSet[w] {
				senseCounts[sense]++
				totalSensory++
				break
			}
		}
	}

	report.SensoryCount = totalSensory
	report.SensoryPercentage = round1(float64(totalSensory) / float64(len(words)) * 100.0)
	for sense, count := range senseCounts {
		pct := 0.0
		if totalSensory > 0 {
			pct = round1(float64(count) / float64(totalSensory) * 100.0)
		}
		report.BySense[sense] = schema.SenseData{Count: count, Percentage: pct}
	}

	return report
}

// Diction reports vague word and phrase usage.
func Diction(text string, words []string) *schema.DictionReport {
	counts := map[string]int{}

	for _, w := range words {
		if wordlists.VagueWords[w] {
			counts[w]++
		}
	}

	lower := strings.ToLower(text)
	for _, phrase := range wordlists.VaguePhrases {
		if n := strings.Count(lower, phrase); n > 0 {
			counts[phrase] += n
		}
	}

	report := &schema.DictionReport{MostCommon: []schema.VagueWordCount{}}
	for w, c := range counts {
		report.TotalVague += c
		report.MostCommon = append(report.MostCommon, schema.VagueWordCount{Word: w, Count: c})
	}
	report.UniqueVague = len(counts)

	sort.SliceStable(report.MostCommon, func(i, j int) bool {
		if report.MostCommon[i].Count != report.MostCommon[j].Count {
			return report.MostCommon[i].Count > report.MostCommon[j].Count
		}
		return report.MostCommon[i].Word < report.MostCommon[j].Word
	})

	return report
}

// Jargon detects business jargon words and phrases.
func Jargon(text string, words []string) *schema.BusinessJargonReport {
	counts := map[string]int{}

	for _, w := range words {
		if wordlists.BusinessJargon[w] {
			counts[w]++
		}
	}

	lower := strings.ToLower(text)
	for _, phrase := range wordlists.BusinessJargonPhrases {
		if n := strings.Count(lower, phrase); n > 0 {
			counts[phrase] += n
		}
	}

	report := &schema.BusinessJargonReport{JargonList: []schema.JargonFound{}}
	for term, c := range counts {
		report.TotalJargon += c
		report.JargonList = append(report.JargonList, schema.JargonFound{Jargon: term, Count: c})
	}
	report.UniqueJargon = len(counts)

	sort.SliceStable(report.JargonList, func(i, j int) bool {
		if report.JargonList[i].Count != report.JargonList[j].Count {
			return report.JargonList[i].Count > report.JargonList[j].Count
		}
		return report.JargonList[i].Jargon < report.JargonList[j].Jargon
	})

	return report
}
