package grammar

import (
	"regexp"
	"strings"

	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/textseg"
	"github.com/dshills/prosegate/internal/wordlists"
)

var passiveAuxiliaries = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true,
	"get": true, "gets": true, "got": true, "gotten": true, "getting": true,
}

var (
	regularParticiple = regexp.MustCompile(`\b\w+ed\b`)
	byPhrase          = regexp.MustCompile(`\bby\s+(?:the\s+)?[a-z]+`)
)

// minConfidence is the default reporting threshold for passive matches.
const minConfidence = 0.6

// DetectPassiveVoice finds auxiliary + past participle constructions with
// confidence at or above the default threshold.
func DetectPassiveVoice(text string) []schema.PassiveVoiceMatch {
	return DetectPassiveVoiceWithThreshold(text, minConfidence)
}

// DetectPassiveVoiceWithThreshold finds passive constructions scoring at or
// above the given confidence.
func DetectPassiveVoiceWithThreshold(text string, threshold float64) []schema.PassiveVoiceMatch {
	sentences := textseg.SplitSentences(text)
	var matches []schema.PassiveVoiceMatch

	for idx, sentence := range sentences {
		words := textseg.ExtractWords(sentence)
		if len(words) < 2 {
			continue
		}

		for i := 0; i < len(words)-1; i++ {
			aux := words[i]
			if !passiveAuxiliaries[aux] {
				continue
			}
			participle := words[i+1]
			if !isLikelyPastParticiple(participle) {
				continue
			}

			confidence := passiveConfidence(aux, participle, words, i)
			if confidence < threshold {
				continue
			}

			matches = append(matches, schema.PassiveVoiceMatch{
				Text:        aux + " " + participle,
				Confidence:  confidence,
				SentenceNum: idx + 1,
				Auxiliary:   aux,
				Participle:  participle,
				HasByPhrase: hasByPhraseNearby(words, i+1),
			})
		}
	}

	return matches
}

func isLikelyPastParticiple(word string) bool {
	if wordlists.IsAdjectiveException(word) {
		return false
	}
	if wordlists.IsIrregularPastParticiple(word) {
		return true
	}
	return regularParticiple.MatchString(word)
}

// passiveConfidence scores a candidate construction. Base 0.5, adjusted by
// auxiliary type, participle class, a trailing "by" phrase, and the word
// preceding the auxiliary. Clamped to [0, 1].
func passiveConfidence(auxiliary, participle string, words []string, position int) float64 {
	confidence := 0.5

	switch auxiliary {
	case "was", "were", "been", "being", "is", "are":
		confidence += 0.2
	}
	if wordlists.IsIrregularPastParticiple(participle) {
		confidence += 0.2
	}
	if wordlists.IsAdjectiveException(participle) {
		confidence -= 0.3
	}
	if hasByPhraseNearby(words, position+1) {
		confidence += 0.3
	}
	if wordlists.IsLinkingVerb(auxiliary) {
		confidence -= 0.2
	}
	if position > 0 {
		switch words[position-1] {
		case "the", "a", "an", "this", "that", "these", "those", "it":
			confidence += 0.1
		}
	}

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// hasByPhraseNearby checks for a "by" phrase within 5 words of position.
func hasByPhraseNearby(words []string, position int) bool {
	if position >= len(words) {
		return false
	}
	end := position + 5
	if end > len(words) {
		end = len(words)
	}
	return byPhrase.MatchString(strings.Join(words[position:end], " "))
}
