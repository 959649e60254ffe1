package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	// .git marks the project root so discovery stops here.
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget != nil || cfg.Dialect != "" {
		t.Errorf("defaults = %+v, want empty config", cfg)
	}
	if got := cfg.EffectiveMaxInputBytes(); got != DefaultMaxInputBytes {
		t.Errorf("EffectiveMaxInputBytes() = %d, want %d", got, DefaultMaxInputBytes)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	content := `token_budget: 500
max_grade: 10.5
dialect: en-us
rules:
  - paths: ["docs/**/*.md"]
    checks:
      readability:
        max_grade: 12
`
	writeFile(t, dir, ".prosegate.yaml", content)
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 500 {
		t.Errorf("token_budget = %v, want 500", cfg.TokenBudget)
	}
	if cfg.MaxGrade == nil || *cfg.MaxGrade != 10.5 {
		t.Errorf("max_grade = %v, want 10.5", cfg.MaxGrade)
	}
	if cfg.Dialect != "en-us" {
		t.Errorf("dialect = %q, want en-us", cfg.Dialect)
	}
	if len(cfg.Rules) != 1 {
		t.Fatalf("rules = %d, want 1", len(cfg.Rules))
	}
	r := cfg.Rules[0]
	if len(r.Paths) != 1 || r.Paths[0] != "docs/**/*.md" {
		t.Errorf("paths = %v", r.Paths)
	}
	if r.Checks.Readability == nil || r.Checks.Readability.MaxGrade == nil || *r.Checks.Readability.MaxGrade != 12 {
		t.Errorf("readability config = %+v", r.Checks.Readability)
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	content := `token_budget = 2000
tokenizer = "openai"

[templates]
release-notes = ["Summary", "Changes"]
`
	writeFile(t, dir, ".prosegate.toml", content)
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 2000 {
		t.Errorf("token_budget = %v, want 2000", cfg.TokenBudget)
	}
	if cfg.Tokenizer != "openai" {
		t.Errorf("tokenizer = %q, want openai", cfg.Tokenizer)
	}
	sections, ok := cfg.Templates["release-notes"]
	if !ok || len(sections) != 2 {
		t.Errorf("templates = %v", cfg.Templates)
	}
}

func TestLoad_JSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".prosegate.json", `{"style_min_score": 80, "max_input_bytes": 0}`)
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StyleMinScore == nil || *cfg.StyleMinScore != 80 {
		t.Errorf("style_min_score = %v, want 80", cfg.StyleMinScore)
	}
	if got := cfg.EffectiveMaxInputBytes(); got != 0 {
		t.Errorf("explicit zero should disable the limit, got %d", got)
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".prosegate.yaml", "token_budget: 100")
	explicit := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(explicit, []byte("token_budget: 999"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(explicit, dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 999 {
		t.Errorf("token_budget = %v, want 999 from explicit file", cfg.TokenBudget)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), ""); err == nil {
		t.Error("missing explicit config should error")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".prosegate.yaml", "token_budget: [not a number")
	if _, err := Load("", dir); err == nil {
		t.Error("malformed yaml should error")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(path, []byte("x=1"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path, dir)
	if err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("err = %v, want unsupported extension", err)
	}
}

func TestDiscover_WalksUpToGitBoundary(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "prosegate.yaml", "token_budget: 300")
	nested := filepath.Join(root, "docs", "adr")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 300 {
		t.Errorf("token_budget = %v, want 300 found via walk-up", cfg.TokenBudget)
	}
}

func TestDiscover_StopsAtGitBoundary(t *testing.T) {
	root := t.TempDir()
	// Config above the repo root must not be picked up.
	writeFile(t, root, ".prosegate.yaml", "token_budget: 300")
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("", repo)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget != nil {
		t.Errorf("token_budget = %v, want nil (config outside repo)", cfg.TokenBudget)
	}
}

func TestDiscover_HiddenNameBeatsPlain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".prosegate.yaml", "token_budget: 1")
	writeFile(t, dir, "prosegate.yaml", "token_budget: 2")
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 1 {
		t.Errorf("token_budget = %v, want 1 from .prosegate.yaml", cfg.TokenBudget)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("PROSEGATE_TOKEN_BUDGET", "750")
	t.Setenv("PROSEGATE_MAX_GRADE", "9.5")
	t.Setenv("PROSEGATE_DIALECT", "en-gb")
	t.Setenv("PROSEGATE_TOKENIZER", "gemini")

	dir := t.TempDir()
	writeFile(t, dir, ".prosegate.yaml", "token_budget: 100\ndialect: en-us")
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TokenBudget == nil || *cfg.TokenBudget != 750 {
		t.Errorf("token_budget = %v, want env override 750", cfg.TokenBudget)
	}
	if cfg.MaxGrade == nil || *cfg.MaxGrade != 9.5 {
		t.Errorf("max_grade = %v, want 9.5", cfg.MaxGrade)
	}
	if cfg.Dialect != "en-gb" {
		t.Errorf("dialect = %q, want en-gb", cfg.Dialect)
	}
	if cfg.Tokenizer != "gemini" {
		t.Errorf("tokenizer = %q, want gemini", cfg.Tokenizer)
	}
}

func TestApplyEnv_MalformedIgnored(t *testing.T) {
	t.Setenv("PROSEGATE_TOKEN_BUDGET", "lots")
	cfg := Default()
	applyEnv(cfg)
	if cfg.TokenBudget != nil {
		t.Errorf("token_budget = %v, want nil for malformed env", cfg.TokenBudget)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
