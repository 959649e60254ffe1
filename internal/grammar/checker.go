package grammar

import (
	"regexp"
	"strings"

	"github.com/dshills/prosegate/internal/schema"
)

// Subject-verb agreement patterns, matched against lowercased sentences.
var subjectVerbPatterns = []struct {
	re      *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`\b(he|she|it)\s+(are|were|have)\b`), "Singular subject with plural verb"},
	{regexp.MustCompile(`\b(the\s+\w+)\s+(are|were|have)\b`), "Possible singular subject with plural verb"},
	{regexp.MustCompile(`\b(they|we|you)\s+(is|was|has)\b`), "Plural subject with singular verb"},
	{regexp.MustCompile(`\b(the\s+\w+s)\s+(is|was|has)\b`), "Possible plural subject with singular verb"},
}

var (
	doubleNegative = regexp.MustCompile(`\b(don't|doesn't|didn't|won't|can't|couldn't|shouldn't|wouldn't)\s+\w+\s+(no|nothing|nobody|never|nowhere|neither)\b`)
	runOnIndicator = regexp.MustCompile(`,\s+(and|but|or|so)\s+\w+\s+\w+\s+,\s+(and|but|or|so)`)
	doubleSpace    = regexp.MustCompile(`  +`)
)

// CheckSentences scans sentences for common grammar issues: double spaces,
// missing terminal punctuation, subject-verb disagreement, double negatives,
// run-on sentences, and comma splices. Sentence numbers are 1-indexed.
func CheckSentences(sentences []string) []schema.GrammarIssue {
	var issues []schema.GrammarIssue

	for idx, sentence := range sentences {
		num := idx + 1
		lower := strings.ToLower(sentence)

		if doubleSpace.MatchString(sentence) {
			issues = append(issues, schema.GrammarIssue{
				IssueType:   schema.IssueDoubleSpace,
				Message:     "Multiple consecutive spaces found",
				SentenceNum: num,
				Severity:    schema.SeverityLow,
			})
		}

		trimmed := strings.TrimSpace(sentence)
		if trimmed != "" && !strings.HasSuffix(trimmed, ".") &&
			!strings.HasSuffix(trimmed, "!") && !strings.HasSuffix(trimmed, "?") {
			issues = append(issues, schema.GrammarIssue{
				IssueType:   schema.IssueMissingPunctuation,
				Message:     "Sentence missing terminal punctuation",
				SentenceNum: num,
				Severity:    schema.SeverityMedium,
			})
		}

		for _, p := range subjectVerbPatterns {
			if p.re.MatchString(lower) {
				issues = append(issues, schema.GrammarIssue{
					IssueType:   schema.IssueSubjectVerbAgreement,
					Message:     p.message,
					SentenceNum: num,
					Severity:    schema.SeverityHigh,
				})
			}
		}

		if doubleNegative.MatchString(lower) {
			issues = append(issues, schema.GrammarIssue{
				IssueType:   schema.IssueDoubleNegative,
				Message:     "Double negative detected",
				SentenceNum: num,
				Severity:    schema.SeverityHigh,
			})
		}

		if runOnIndicator.MatchString(lower) {
			issues = append(issues, schema.GrammarIssue{
				IssueType:   schema.IssueRunOnSentence,
				Message:     "Possible run-on sentence (multiple conjunction clauses)",
				SentenceNum: num,
				Severity:    schema.SeverityMedium,
			})
		}

		if hasCommaSplice(sentence) {
			issues = append(issues, schema.GrammarIssue{
				IssueType:   schema.IssueCommaSplice,
				Message:     "Possible comma splice (two independent clauses joined by a comma)",
				SentenceNum: num,
				Severity:    schema.SeverityMedium,
			})
		}
	}

	return issues
}

// hasCommaSplice reports whether two or more comma-separated parts of the
// sentence look like independent clauses.
func hasCommaSplice(sentence string) bool {
	parts := strings.Split(sentence, ",")
	if len(parts) < 2 {
		return false
	}
	clauses := 0
	for _, part := range parts {
		if hasSubjectAndVerb(strings.TrimSpace(part)) {
			clauses++
		}
	}
	return clauses >= 2
}

var subjectWords = map[string]bool{
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "the": true, "a": true, "an": true,
	"this": true, "that": true,
}

var clauseVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"can": true, "shall": true, "go": true, "goes": true, "went": true,
	"gone": true, "make": true, "makes": true, "made": true, "get": true,
	"gets": true, "got": true, "say": true, "says": true, "said": true,
	"know": true, "knows": true, "knew": true, "think": true, "thinks": true,
	"thought": true, "come": true, "comes": true, "came": true, "take": true,
	"takes": true, "took": true, "see": true, "sees": true, "saw": true,
	"want": true, "wants": true, "wanted": true, "look": true, "looks": true,
	"looked": true, "use": true, "uses": true, "used": true, "find": true,
	"finds": true, "found": true, "give": true, "gives": true, "gave": true,
	"tell": true, "tells": true, "told": true, "work": true, "works": true,
	"worked": true, "call": true, "calls": true, "called": true, "try": true,
	"tries": true, "tried": true, "ask": true, "asks": true, "asked": true,
	"need": true, "needs": true, "needed": true, "feel": true, "feels": true,
	"felt": true, "become": true, "becomes": true, "became": true,
	"leave": true, "leaves": true, "left": true, "put": true, "puts": true,
	"run": true, "runs": true, "ran": true, "keep": true, "keeps": true,
	"kept": true, "let": true, "lets": true, "begin": true, "begins": true,
	"began": true, "show": true, "shows": true, "showed": true, "hear": true,
	"hears": true, "heard": true, "play": true, "plays": true, "played": true,
	"move": true, "moves": true, "moved": true, "live": true, "lives": true,
	"lived": true, "happen": true, "happens": true, "happened": true,
	"write": true, "writes": true, "wrote": true, "provide": true,
	"provides": true, "provided": true, "read": true, "reads": true,
	"stand": true, "stands": true, "stood": true,
}

// hasSubjectAndVerb is a rough independence test: at least three words, one
// of which is a pronoun or determiner and one a common verb form.
func hasSubjectAndVerb(text string) bool {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return false
	}
	hasSubject, hasVerb := false, false
	for _, w := range fields {
		lw := strings.ToLower(w)
		if subjectWords[lw] {
			hasSubject = true
		}
		if clauseVerbs[lw] {
			hasVerb = true
		}
	}
	return hasSubject && hasVerb
}
