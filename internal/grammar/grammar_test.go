package grammar

import (
	"errors"
	"testing"

	"github.com/dshills/prosegate/internal/schema"
)

func hasIssue(issues []schema.GrammarIssue, typ schema.GrammarIssueType) bool {
	for _, i := range issues {
		if i.IssueType == typ {
			return true
		}
	}
	return false
}

func TestCheckSentences_SubjectVerbAgreement(t *testing.T) {
	issues := CheckSentences([]string{"He are going to the store."})
	if !hasIssue(issues, schema.IssueSubjectVerbAgreement) {
		t.Errorf("should detect subject-verb disagreement: %+v", issues)
	}
}

func TestCheckSentences_DoubleNegative(t *testing.T) {
	issues := CheckSentences([]string{"She didn't do nothing wrong."})
	if !hasIssue(issues, schema.IssueDoubleNegative) {
		t.Errorf("should detect double negative: %+v", issues)
	}
}

func TestCheckSentences_DoubleSpace(t *testing.T) {
	issues := CheckSentences([]string{"There are  two spaces here."})
	if !hasIssue(issues, schema.IssueDoubleSpace) {
		t.Errorf("should detect double spaces: %+v", issues)
	}
}

func TestCheckSentences_MissingPunctuation(t *testing.T) {
	issues := CheckSentences([]string{"This sentence has no ending"})
	if !hasIssue(issues, schema.IssueMissingPunctuation) {
		t.Errorf("should detect missing punctuation: %+v", issues)
	}
}

func TestCheckSentences_CleanSentence(t *testing.T) {
	issues := CheckSentences([]string{"The cat sat on the mat."})
	for _, i := range issues {
		switch i.IssueType {
		case schema.IssueSubjectVerbAgreement, schema.IssueDoubleNegative, schema.IssueDoubleSpace:
			t.Errorf("clean sentence flagged with %s", i.IssueType)
		}
	}
}

func TestDetectPassiveVoice_SimplePassive(t *testing.T) {
	matches := DetectPassiveVoice("The report was written by the team.")
	if len(matches) == 0 {
		t.Fatal("should detect passive construction")
	}
	if matches[0].Auxiliary != "was" || matches[0].Participle != "written" {
		t.Errorf("match = %+v, want was/written", matches[0])
	}
	if !matches[0].HasByPhrase {
		t.Error("by phrase should be detected")
	}
}

func TestDetectPassiveVoice_AdjectiveException(t *testing.T) {
	matches := DetectPassiveVoice("She was tired after the long day.")
	if len(matches) != 0 {
		t.Errorf("'was tired' should not be flagged: %+v", matches)
	}
}

func TestDetectPassiveVoice_Multiple(t *testing.T) {
	matches := DetectPassiveVoice("The code was written by Alice. The bug was found by Bob.")
	if len(matches) != 2 {
		t.Errorf("got %d matches, want 2: %+v", len(matches), matches)
	}
}

func TestDetectPassiveVoice_Empty(t *testing.T) {
	if matches := DetectPassiveVoice(""); len(matches) != 0 {
		t.Errorf("empty text should yield no matches: %+v", matches)
	}
}

func TestCheckFull_Report(t *testing.T) {
	text := "The report was written by the team. The code is clean. She wrote tests."
	report, err := CheckFull(text, false, nil)
	if err != nil {
		t.Fatalf("CheckFull: %v", err)
	}
	if report.PassiveCount == 0 {
		t.Error("passive count should be positive")
	}
	if report.SentenceCount < 3 {
		t.Errorf("sentence count = %d, want >= 3", report.SentenceCount)
	}
	if report.PassivePercentage <= 0 {
		t.Errorf("passive percentage = %v, want > 0", report.PassivePercentage)
	}
}

func TestCheckFull_OverMax(t *testing.T) {
	max := 10.0
	report, err := CheckFull("The report was written. The code was reviewed. The bug was fixed.", false, &max)
	if err != nil {
		t.Fatalf("CheckFull: %v", err)
	}
	if !report.OverMax {
		t.Errorf("passive percentage %v should exceed 10%%", report.PassivePercentage)
	}
}

func TestCheckFull_EmptyInput(t *testing.T) {
	_, err := CheckFull("", false, nil)
	if !errors.Is(err, schema.ErrEmptyInput) {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestCheckFull_MarkdownStripping(t *testing.T) {
	md := "# Title\n\nThe report was written by the team.\n\n```go\nx := 1\n```"
	report, err := CheckFull(md, true, nil)
	if err != nil {
		t.Fatalf("CheckFull: %v", err)
	}
	if report.SentenceCount < 1 {
		t.Errorf("sentence count = %d, want >= 1", report.SentenceCount)
	}
}
