package tokens

import (
	"context"
	"strings"
	"testing"
)

type fakeCounter struct {
	count     int
	tokenizer string
	err       error
}

func (f *fakeCounter) Count(_ context.Context, _ string) (int, string, error) {
	return f.count, f.tokenizer, f.err
}

func withFake(t *testing.T, fake Counter) {
	t.Helper()
	orig := NewCounter
	NewCounter = func(string) (Counter, error) { return fake, nil }
	t.Cleanup(func() { NewCounter = orig })
}

func TestCount_WithinBudget(t *testing.T) {
	withFake(t, &fakeCounter{count: 42, tokenizer: "claude-api"})
	budget := 100
	report, err := Count(context.Background(), "some text", &budget, "claude")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if report.Count != 42 || report.OverBudget {
		t.Errorf("report = %+v, want 42 within budget", report)
	}
	if report.Tokenizer != "claude-api" {
		t.Errorf("tokenizer = %q, want claude-api", report.Tokenizer)
	}
}

func TestCount_OverBudget(t *testing.T) {
	withFake(t, &fakeCounter{count: 501, tokenizer: "openai"})
	budget := 500
	report, err := Count(context.Background(), "some text", &budget, "openai")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if !report.OverBudget {
		t.Error("501 tokens should exceed a 500 budget")
	}
}

func TestCount_NoBudget(t *testing.T) {
	withFake(t, &fakeCounter{count: 7, tokenizer: "gemini"})
	report, err := Count(context.Background(), "some text", nil, "gemini")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if report.OverBudget {
		t.Error("no budget should never be over budget")
	}
	if report.Budget != nil {
		t.Errorf("budget = %v, want nil", report.Budget)
	}
}

func TestDefaultNewCounter_UnknownBackend(t *testing.T) {
	_, err := defaultNewCounter("bogus")
	if err == nil {
		t.Fatal("unknown backend should error")
	}
	if !strings.Contains(err.Error(), `unknown backend "bogus"`) {
		t.Errorf("message = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "claude, openai, gemini") {
		t.Errorf("message should list available backends: %q", err.Error())
	}
}

func TestDefaultNewCounter_EmptyMeansClaude(t *testing.T) {
	c, err := defaultNewCounter("")
	if err != nil {
		t.Fatalf("defaultNewCounter: %v", err)
	}
	if _, ok := c.(*claudeCounter); !ok {
		t.Errorf("default backend = %T, want *claudeCounter", c)
	}
}

func TestClaudeCounter_EmptyText(t *testing.T) {
	c := &claudeCounter{model: defaultClaudeModel}
	count, tokenizer, err := c.Count(context.Background(), "")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 for empty text", count)
	}
	if tokenizer != "claude-api" {
		t.Errorf("tokenizer = %q", tokenizer)
	}
}
