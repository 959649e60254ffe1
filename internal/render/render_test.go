package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/prosegate/internal/schema"
)

func TestJSON_RoundTrip(t *testing.T) {
	max := 10.0
	report := &schema.ReadabilityReport{
		Grade:     8.3,
		Sentences: 4,
		Words:     52,
		Syllables: 70,
		MaxGrade:  &max,
	}
	b, err := JSON(report)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back schema.ReadabilityReport
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Grade != report.Grade || back.Words != report.Words {
		t.Errorf("round trip = %+v, want %+v", back, report)
	}
}

func TestJSON_NilReport(t *testing.T) {
	if _, err := JSON(nil); err == nil {
		t.Error("nil report should error")
	}
}

func TestReadability(t *testing.T) {
	max := 10.0
	r := &schema.ReadabilityReport{Grade: 8.3, MaxGrade: &max}
	if got, want := Readability("doc.md", r), "PASS: doc.md scores 8.3 (max: 10)"; got != want {
		t.Errorf("Readability = %q, want %q", got, want)
	}
	if got, want := Readability("doc.md", &schema.ReadabilityReport{Grade: 8.34}), "8.3"; got != want {
		t.Errorf("no-max Readability = %q, want %q", got, want)
	}
}

func TestReadabilityFailure(t *testing.T) {
	max := 8.0
	r := &schema.ReadabilityReport{Grade: 12.7, MaxGrade: &max, OverMax: true}
	got := ReadabilityFailure("doc.md", r)
	want := "doc.md scores 12.7 (max: 8). Simplify sentences or reduce jargon."
	if got != want {
		t.Errorf("ReadabilityFailure = %q, want %q", got, want)
	}
}

func TestTokens(t *testing.T) {
	budget := 500
	r := &schema.TokenReport{Count: 412, Budget: &budget}
	if got, want := Tokens("doc.md", r), "PASS: doc.md is 412 tokens (budget: 500)"; got != want {
		t.Errorf("Tokens = %q, want %q", got, want)
	}
	if got, want := Tokens("doc.md", &schema.TokenReport{Count: 412}), "412"; got != want {
		t.Errorf("no-budget Tokens = %q, want %q", got, want)
	}
}

func TestTokensFailure(t *testing.T) {
	budget := 500
	r := &schema.TokenReport{Count: 612, Budget: &budget, OverBudget: true}
	got := TokensFailure("doc.md", r)
	want := "doc.md is 612 tokens (budget: 500). Compress."
	if got != want {
		t.Errorf("TokensFailure = %q, want %q", got, want)
	}
}

func TestGrammar_TextSections(t *testing.T) {
	r := &schema.GrammarReport{
		SentenceCount: 3,
		PassiveCount:  1,
		PassiveVoice: []schema.PassiveVoiceMatch{
			{Text: "was written", Confidence: 0.8, SentenceNum: 2},
		},
		PassivePercentage: 33.3,
		Issues: []schema.GrammarIssue{
			{IssueType: schema.IssueDoubleSpace, Message: "Double space found", SentenceNum: 1, Severity: schema.SeverityLow},
		},
	}
	out := Grammar("doc.md", r)
	for _, want := range []string{
		"doc.md: 3 sentences analyzed",
		"Passive voice: 1 instances (33.3%)",
		`Sentence 2: "was written" (confidence: 80%)`,
		"Grammar issues: 1",
		"[LOW] Sentence 1: Double space found",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGrammar_CleanText(t *testing.T) {
	out := Grammar("doc.md", &schema.GrammarReport{SentenceCount: 2})
	if !strings.Contains(out, "Passive voice: none detected") {
		t.Errorf("output missing passive none line:\n%s", out)
	}
	if !strings.Contains(out, "Grammar issues: none detected") {
		t.Errorf("output missing issues none line:\n%s", out)
	}
}

func TestCompletenessFailure(t *testing.T) {
	r := &schema.CompletenessReport{
		Template: "handoff",
		Sections: []schema.SectionResult{
			{Name: "Where things stand", Status: schema.SectionPresent},
			{Name: "Landmines", Status: schema.SectionMissing},
			{Name: "What's next", Status: schema.SectionEmpty},
		},
	}
	out := CompletenessFailure("doc.md", r)
	if !strings.Contains(out, "MISSING: ## Landmines") {
		t.Errorf("output missing MISSING line:\n%s", out)
	}
	if !strings.Contains(out, "EMPTY:   ## What's next") {
		t.Errorf("output missing EMPTY line:\n%s", out)
	}
	if strings.Contains(out, "Where things stand") {
		t.Errorf("present sections should not appear:\n%s", out)
	}
}

func TestAnalyze_SkipsEmptySections(t *testing.T) {
	report := &schema.FullAnalysisReport{
		Readability: &schema.ReadabilityReport{Grade: 5.2, Sentences: 2, Words: 12},
		Cliches:     &schema.ClichesReport{TotalCliches: 0, Cliches: []schema.ClicheFound{}},
		Style:       &schema.StyleReport{StyleScore: 92, HiddenVerbs: []schema.HiddenVerbSuggestion{}},
	}
	out := Analyze("doc.md", report)
	if !strings.Contains(out, "Readability: Grade 5.2, 2 sentences, 12 words") {
		t.Errorf("output missing readability line:\n%s", out)
	}
	if strings.Contains(out, "Cliches") {
		t.Errorf("zero-count cliches section should be skipped:\n%s", out)
	}
	if !strings.Contains(out, "Style: Score 92/100, 0 adverbs, 0 hidden verbs") {
		t.Errorf("output missing style line:\n%s", out)
	}
}

func TestLint_Summary(t *testing.T) {
	budget := 100
	report := &schema.LintReport{
		File:        "docs/adr/0001.md",
		Readability: &schema.ReadabilityReport{Grade: 9.1},
		Grammar:     &schema.GrammarReport{PassivePercentage: 12.5, OverMax: true},
		Completeness: &schema.CompletenessReport{
			Template: "adr",
			Pass:     true,
		},
		Tokens: &schema.TokenReport{Count: 80, Budget: &budget},
	}
	out := Lint(report)
	for _, want := range []string{
		"docs/adr/0001.md",
		"readability: PASS grade 9.1",
		"grammar: FAIL 12.5% passive",
		"completeness: PASS (adr)",
		"tokens: PASS 80/100",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSkipMessages(t *testing.T) {
	if SkipNoRules != "SKIP: no rules configured" {
		t.Errorf("SkipNoRules = %q", SkipNoRules)
	}
	if got, want := SkipNoMatch("a.md"), "SKIP: no rules match a.md"; got != want {
		t.Errorf("SkipNoMatch = %q, want %q", got, want)
	}
}
