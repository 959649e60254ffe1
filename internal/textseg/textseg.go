// Package textseg segments prose into sentences, paragraphs, and words, and
// maps segments back to line ranges in the source text.
//
// Sentence splitting uses a character-by-character scan with context-based
// boundary detection rather than naive punctuation splitting. Terminators are
// checked against an abbreviation dictionary, initials, decimal numbers,
// ellipses, and URLs/emails before a boundary is accepted.
package textseg

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dshills/prosegate/internal/wordlists"
)

// minSentenceLength drops fragments shorter than this after trimming.
const minSentenceLength = 3

var (
	decimalPattern  = regexp.MustCompile(`\d+\.\d+`)
	urlPattern      = regexp.MustCompile(`(?:https?://|www\.)\S+`)
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	initialsPattern = regexp.MustCompile(`\b[A-Z]\.(?:[A-Z]\.)*`)
)

// SplitSentences splits text into sentences with abbreviation, decimal, URL,
// and email awareness. Empty or whitespace-only input yields nil.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var sentences []string
	var current strings.Builder
	chars := []rune(text)

	for i, ch := range chars {
		current.WriteRune(ch)

		if ch == '.' || ch == '!' || ch == '?' {
			ctx := extractContext(chars, i)
			if ctx.isBoundary(current.String()) {
				sentence := strings.TrimSpace(current.String())
				if len(sentence) >= minSentenceLength {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); len(sentence) >= minSentenceLength {
		sentences = append(sentences, sentence)
	}
	return sentences
}

// ExtractWords splits text on whitespace, strips boundary punctuation while
// keeping internal apostrophes and hyphens, and lowercases.
func ExtractWords(text string) []string {
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
		})
		if w != "" {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

// SplitParagraphs splits text on blank lines, trimming each paragraph and
// dropping empties.
func SplitParagraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// sentenceContext captures the neighborhood of a candidate boundary.
type sentenceContext struct {
	punctuation rune
	wordBefore  string
	charAfter   rune // first non-whitespace rune after, 0 if none
	textAfter   string
	isEndOfText bool
}

func extractContext(chars []rune, pos int) sentenceContext {
	before := wordBefore(chars, pos)

	afterStart := pos + 1
	for afterStart < len(chars) && unicode.IsSpace(chars[afterStart]) {
		afterStart++
	}

	var afterChar rune
	if afterStart < len(chars) {
		afterChar = chars[afterStart]
	}
	end := afterStart + 20
	if end > len(chars) {
		end = len(chars)
	}

	return sentenceContext{
		punctuation: chars[pos],
		wordBefore:  before,
		charAfter:   afterChar,
		textAfter:   string(chars[afterStart:end]),
		isEndOfText: pos == len(chars)-1,
	}
}

// wordBefore walks back from the terminator, skipping whitespace and periods,
// and collects the preceding word including internal periods ("e.g", "U.S").
func wordBefore(chars []rune, pos int) string {
	i := pos
	for i > 0 {
		i--
		if !unicode.IsSpace(chars[i]) && chars[i] != '.' {
			break
		}
	}

	var word []rune
	for {
		if unicode.IsLetter(chars[i]) || unicode.IsDigit(chars[i]) || chars[i] == '.' {
			word = append(word, chars[i])
		} else {
			break
		}
		if i == 0 {
			break
		}
		i--
	}

	for l, r := 0, len(word)-1; l < r; l, r = l+1, r-1 {
		word[l], word[r] = word[r], word[l]
	}
	return string(word)
}

func (c *sentenceContext) isBoundary(current string) bool {
	if c.isEndOfText {
		return true
	}

	// ! and ? are almost always boundaries.
	if c.punctuation == '!' || c.punctuation == '?' {
		return c.nextCharCapitalized()
	}

	if isLikelyAbbreviation(c.wordBefore) {
		return false
	}
	if isLikelyInitial(c.wordBefore) {
		return false
	}
	if isDecimalNumber(current) {
		return false
	}
	if strings.HasSuffix(current, "...") {
		return false
	}
	if containsURLOrEmail(current) {
		return false
	}

	// Digit after period following a digit = decimal number ("3.14").
	if c.charAfter >= '0' && c.charAfter <= '9' {
		if last := lastRune(c.wordBefore); last >= '0' && last <= '9' {
			return false
		}
	}

	if c.charAfter != 0 {
		if unicode.IsUpper(c.charAfter) {
			return true
		}
		if unicode.IsLower(c.charAfter) {
			return false
		}
	}
	return true
}

// nextCharCapitalized handles the quote-then-lowercase case after ! or ?.
func (c *sentenceContext) nextCharCapitalized() bool {
	if c.charAfter != 0 {
		if unicode.IsUpper(c.charAfter) {
			return true
		}
		if c.charAfter == '"' || c.charAfter == '\'' {
			after := []rune(c.textAfter)
			return len(after) > 1 && unicode.IsUpper(after[1])
		}
	}
	return true
}

func isLikelyAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	clean := strings.TrimRight(word, ".")
	if wordlists.IsAbbreviation(clean) {
		return true
	}
	// A single uppercase letter is likely an initial.
	runes := []rune(clean)
	return len(runes) == 1 && unicode.IsUpper(runes[0])
}

func isLikelyInitial(word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(word)
	if len(runes) == 2 && unicode.IsUpper(runes[0]) && runes[1] == '.' {
		return true
	}
	return initialsPattern.MatchString(word)
}

func isDecimalNumber(sentence string) bool {
	return decimalPattern.MatchString(tail(sentence, 10))
}

func containsURLOrEmail(sentence string) bool {
	last := tail(sentence, 50)
	return urlPattern.MatchString(last) || emailPattern.MatchString(last)
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
