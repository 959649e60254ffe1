//go:build integration

package main

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/prosegate/internal/tokens"
)

// fakeCounter avoids network calls in token-dependent tests. One token per
// word keeps budget arithmetic predictable.
type fakeCounter struct{}

func (fakeCounter) Count(_ context.Context, text string) (int, string, error) {
	return len(strings.Fields(text)), "fake", nil
}

func injectFakeCounter(t *testing.T) {
	t.Helper()
	orig := tokens.NewCounter
	tokens.NewCounter = func(string) (tokens.Counter, error) { return fakeCounter{}, nil }
	t.Cleanup(func() { tokens.NewCounter = orig })
}

func testOpts(configPath string) *globalOptions {
	return &globalOptions{configPath: configPath}
}

func TestIntegration_LintPasses(t *testing.T) {
	injectFakeCounter(t)
	opts := testOpts("../../testdata/lint-config.yaml")
	if err := runLint(context.Background(), "../../testdata/simple.md", opts); err != nil {
		t.Fatalf("runLint: %v", err)
	}
}

func TestIntegration_LintFailsTokenBudget(t *testing.T) {
	injectFakeCounter(t)
	opts := testOpts("../../testdata/strict-config.yaml")
	err := runLint(context.Background(), "../../testdata/simple.md", opts)
	if err == nil || !strings.Contains(err.Error(), "failed lint checks") {
		t.Fatalf("err = %v, want lint failure", err)
	}
}

func TestIntegration_LintNoMatchingRules(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	// Rules only match .md files; .txt should be skipped without error.
	if err := runLint(context.Background(), "../../testdata/simple.txt", opts); err != nil {
		t.Fatalf("runLint: %v", err)
	}
}

func TestIntegration_ReadabilityPasses(t *testing.T) {
	max := 20.0
	opts := testOpts("../../testdata/lint-config.yaml")
	if err := runReadability("../../testdata/simple.md", &max, opts); err != nil {
		t.Fatalf("runReadability: %v", err)
	}
}

func TestIntegration_ReadabilityFails(t *testing.T) {
	max := 0.5
	opts := testOpts("../../testdata/lint-config.yaml")
	err := runReadability("../../testdata/simple.md", &max, opts)
	if err == nil || !strings.Contains(err.Error(), "Simplify sentences") {
		t.Fatalf("err = %v, want readability failure", err)
	}
}

func TestIntegration_GrammarReportsPassive(t *testing.T) {
	max := 100.0
	opts := testOpts("../../testdata/lint-config.yaml")
	if err := runGrammar("../../testdata/passive.md", &max, opts); err != nil {
		t.Fatalf("runGrammar: %v", err)
	}
}

func TestIntegration_CompletenessMissingSection(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	err := runCompleteness("../../testdata/handoff-incomplete.md", "handoff", opts)
	if err == nil || !strings.Contains(err.Error(), "MISSING") {
		t.Fatalf("err = %v, want missing section failure", err)
	}
}

func TestIntegration_CompletenessPasses(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	if err := runCompleteness("../../testdata/handoff-complete.md", "handoff", opts); err != nil {
		t.Fatalf("runCompleteness: %v", err)
	}
}

func TestIntegration_CompletenessUnknownTemplate(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	err := runCompleteness("../../testdata/handoff-complete.md", "bogus", opts)
	if err == nil || !strings.Contains(err.Error(), "unknown template: bogus") {
		t.Fatalf("err = %v, want unknown template", err)
	}
}

func TestIntegration_TokensOverBudget(t *testing.T) {
	injectFakeCounter(t)
	budget := 1
	opts := testOpts("../../testdata/lint-config.yaml")
	err := runTokens(context.Background(), "../../testdata/simple.md", &budget, "", opts)
	if err == nil || !strings.Contains(err.Error(), "Compress.") {
		t.Fatalf("err = %v, want over budget failure", err)
	}
}

func TestIntegration_AnalyzeUnknownCheck(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	err := runAnalyze("../../testdata/simple.md", []string{"bogus"}, nil, opts)
	if err == nil || !strings.Contains(err.Error(), "unknown check(s): bogus") {
		t.Fatalf("err = %v, want unknown check", err)
	}
}

func TestIntegration_InfoRuns(t *testing.T) {
	opts := testOpts("../../testdata/lint-config.yaml")
	if err := runInfo(opts); err != nil {
		t.Fatalf("runInfo: %v", err)
	}
}
