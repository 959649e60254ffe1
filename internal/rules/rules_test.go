package rules

import "testing"

func fptr(f float64) *float64 { return &f }

func TestSpecificity(t *testing.T) {
	cases := []struct {
		pattern string
		want    int
	}{
		{"**/*.md", 0},
		{"docs/**/*.md", 1},
		{"docs/decisions/*.md", 2},
		{"docs/decisions/important/*.md", 3},
		{"README.md", 1},
	}
	for _, c := range cases {
		if got := Specificity(c.pattern); got != c.want {
			t.Errorf("Specificity(%q) = %d, want %d", c.pattern, got, c.want)
		}
	}
}

func TestResolve_NoRules(t *testing.T) {
	set := Compile(nil)
	resolved := set.Resolve("anything.md")
	if !resolved.IsEmpty() {
		t.Error("expected empty resolution")
	}
}

func TestResolve_NoMatch(t *testing.T) {
	set := Compile([]Rule{{
		Paths:  []string{"docs/**/*.md"},
		Checks: RuleChecks{Analyze: &AnalyzeConfig{}},
	}})
	resolved := set.Resolve("src/main.go")
	if !resolved.IsEmpty() {
		t.Error("expected empty resolution for non-matching path")
	}
}

func TestResolve_SingleMatch(t *testing.T) {
	set := Compile([]Rule{{
		Paths:  []string{"docs/**/*.md"},
		Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(8.0)}},
	}})
	resolved := set.Resolve("docs/guide.md")
	if resolved.Analyze == nil {
		t.Fatal("analyze should be configured")
	}
	if *resolved.Analyze.MaxGrade != 8.0 {
		t.Errorf("max grade = %v, want 8.0", *resolved.Analyze.MaxGrade)
	}
}

func TestResolve_AccumulatesDifferentChecks(t *testing.T) {
	set := Compile([]Rule{
		{
			Paths:  []string{"docs/**/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(8.0)}},
		},
		{
			Paths:  []string{"docs/decisions/*.md"},
			Checks: RuleChecks{Completeness: &CompletenessConfig{Template: "adr"}},
		},
	})
	resolved := set.Resolve("docs/decisions/001.md")
	if resolved.Analyze == nil {
		t.Error("analyze should be configured")
	}
	if resolved.Completeness == nil || resolved.Completeness.Template != "adr" {
		t.Errorf("completeness = %+v, want template adr", resolved.Completeness)
	}
}

func TestResolve_SpecificOverridesGeneral(t *testing.T) {
	set := Compile([]Rule{
		{
			Paths:  []string{"docs/**/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(8.0)}},
		},
		{
			Paths:  []string{"docs/designs/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(12.0)}},
		},
	})
	resolved := set.Resolve("docs/designs/api.md")
	if resolved.Analyze == nil || *resolved.Analyze.MaxGrade != 12.0 {
		t.Errorf("resolved analyze = %+v, want max grade 12.0", resolved.Analyze)
	}
}

func TestResolve_EqualSpecificityEarlierWins(t *testing.T) {
	set := Compile([]Rule{
		{
			Paths:  []string{"docs/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(8.0)}},
		},
		{
			Paths:  []string{"docs/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(12.0)}},
		},
	})
	resolved := set.Resolve("docs/guide.md")
	if resolved.Analyze == nil || *resolved.Analyze.MaxGrade != 8.0 {
		t.Errorf("resolved analyze = %+v, want earlier rule's 8.0", resolved.Analyze)
	}
}

func TestResolve_IndependentCheckTypes(t *testing.T) {
	// The general rule keeps grammar even though the specific rule wins
	// analyze: specificity is tracked per check type.
	set := Compile([]Rule{
		{
			Paths: []string{"docs/**/*.md"},
			Checks: RuleChecks{
				Analyze: &AnalyzeConfig{MaxGrade: fptr(8.0)},
				Grammar: &GrammarConfig{PassiveMax: fptr(10.0)},
			},
		},
		{
			Paths:  []string{"docs/designs/*.md"},
			Checks: RuleChecks{Analyze: &AnalyzeConfig{MaxGrade: fptr(12.0)}},
		},
	})
	resolved := set.Resolve("docs/designs/api.md")
	if resolved.Analyze == nil || *resolved.Analyze.MaxGrade != 12.0 {
		t.Errorf("analyze = %+v, want specific rule's 12.0", resolved.Analyze)
	}
	if resolved.Grammar == nil || *resolved.Grammar.PassiveMax != 10.0 {
		t.Errorf("grammar = %+v, want general rule's 10.0", resolved.Grammar)
	}
}

func TestResolve_MultiplePathsInRule(t *testing.T) {
	set := Compile([]Rule{{
		Paths:  []string{"README.md", "docs/**/*.md"},
		Checks: RuleChecks{Analyze: &AnalyzeConfig{}},
	}})
	if set.Resolve("README.md").Analyze == nil {
		t.Error("README.md should match")
	}
	if set.Resolve("docs/guide.md").Analyze == nil {
		t.Error("docs/guide.md should match")
	}
	if set.Resolve("src/main.go").Analyze != nil {
		t.Error("src/main.go should not match")
	}
}

func TestCompile_InvalidGlobSkipped(t *testing.T) {
	set := Compile([]Rule{{
		Paths:  []string{"[invalid", "docs/*.md"},
		Checks: RuleChecks{Analyze: &AnalyzeConfig{}},
	}})
	if set.Resolve("docs/guide.md").Analyze == nil {
		t.Error("valid pattern in same rule should still match")
	}
}

func TestCompile_RuleWithNoValidPatternsDropped(t *testing.T) {
	set := Compile([]Rule{{
		Paths:  []string{"[invalid"},
		Checks: RuleChecks{Analyze: &AnalyzeConfig{}},
	}})
	if !set.Resolve("docs/guide.md").IsEmpty() {
		t.Error("rule with only invalid patterns should be dropped")
	}
}
