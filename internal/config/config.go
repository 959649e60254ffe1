// Package config loads project configuration from disk and the environment.
//
// Configuration is discovered by walking up from the working directory to a
// .git boundary, looking for .prosegate.{yaml,yml,toml,json} or
// prosegate.{yaml,yml,toml,json}. An explicit path takes precedence over
// discovery, and PROSEGATE_ environment variables override scalar knobs
// after loading.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/prosegate/internal/rules"
)

// DefaultMaxInputBytes caps input size at 5 MiB to prevent resource
// exhaustion from oversized inputs.
const DefaultMaxInputBytes = 5 * 1024 * 1024

// Config is the project configuration.
type Config struct {
	// TokenBudget is the default budget for the tokens check.
	TokenBudget *int `json:"token_budget,omitempty" yaml:"token_budget,omitempty" toml:"token_budget,omitempty"`
	// MaxGrade is the default maximum Flesch-Kincaid grade.
	MaxGrade *float64 `json:"max_grade,omitempty" yaml:"max_grade,omitempty" toml:"max_grade,omitempty"`
	// PassiveMaxPercent is the default maximum passive voice percentage.
	PassiveMaxPercent *float64 `json:"passive_max_percent,omitempty" yaml:"passive_max_percent,omitempty" toml:"passive_max_percent,omitempty"`
	// StyleMinScore is the default minimum composite style score.
	StyleMinScore *int `json:"style_min_score,omitempty" yaml:"style_min_score,omitempty" toml:"style_min_score,omitempty"`
	// Dialect enforces an English spelling dialect (en-us, en-gb, en-ca, en-au).
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty" toml:"dialect,omitempty"`
	// MaxInputBytes caps input size; nil means the 5 MiB default, zero
	// disables the limit.
	MaxInputBytes *int `json:"max_input_bytes,omitempty" yaml:"max_input_bytes,omitempty" toml:"max_input_bytes,omitempty"`
	// Tokenizer selects the token counting backend (claude, openai, gemini).
	Tokenizer string `json:"tokenizer,omitempty" yaml:"tokenizer,omitempty" toml:"tokenizer,omitempty"`
	// Templates holds custom completeness templates (name to required
	// sections). These extend the built-ins; name collisions favor the
	// custom template.
	Templates map[string][]string `json:"templates,omitempty" yaml:"templates,omitempty" toml:"templates,omitempty"`
	// Rules maps glob patterns to checks for the lint command.
	Rules []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
}

// EffectiveMaxInputBytes resolves the input size limit. Zero means the limit
// is disabled.
func (c *Config) EffectiveMaxInputBytes() int {
	if c.MaxInputBytes == nil {
		return DefaultMaxInputBytes
	}
	return *c.MaxInputBytes
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// candidate file names, in discovery priority order.
var fileNames = []string{
	".prosegate.yaml", ".prosegate.yml", ".prosegate.toml", ".prosegate.json",
	"prosegate.yaml", "prosegate.yml", "prosegate.toml", "prosegate.json",
}

// Load resolves configuration. With a non-empty explicitPath that file must
// exist and parse; otherwise discovery walks up from startDir to the first
// directory containing .git (or the filesystem root). No file found yields
// the defaults. Environment overrides apply in all cases.
func Load(explicitPath, startDir string) (*Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = discover(startDir)
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	} else if explicitPath != "" {
		return nil, fmt.Errorf("config: %s: no such file", explicitPath)
	}

	applyEnv(cfg)
	return cfg, nil
}

func discover(startDir string) string {
	dir := startDir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	dir = abs

	for {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: %s: unsupported extension (use yaml, toml, or json)", path)
	}
	return nil
}

// applyEnv overrides scalar knobs from PROSEGATE_ environment variables.
// Malformed values are ignored with a warning rather than failing the run.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PROSEGATE_TOKEN_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TokenBudget = &n
		} else {
			warnEnv("PROSEGATE_TOKEN_BUDGET", v)
		}
	}
	if v := os.Getenv("PROSEGATE_MAX_GRADE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxGrade = &f
		} else {
			warnEnv("PROSEGATE_MAX_GRADE", v)
		}
	}
	if v := os.Getenv("PROSEGATE_PASSIVE_MAX"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.PassiveMaxPercent = &f
		} else {
			warnEnv("PROSEGATE_PASSIVE_MAX", v)
		}
	}
	if v := os.Getenv("PROSEGATE_STYLE_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.StyleMinScore = &n
		} else {
			warnEnv("PROSEGATE_STYLE_MIN", v)
		}
	}
	if v := os.Getenv("PROSEGATE_DIALECT"); v != "" {
		cfg.Dialect = v
	}
	if v := os.Getenv("PROSEGATE_TOKENIZER"); v != "" {
		cfg.Tokenizer = v
	}
	if v := os.Getenv("PROSEGATE_MAX_INPUT_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxInputBytes = &n
		} else {
			warnEnv("PROSEGATE_MAX_INPUT_BYTES", v)
		}
	}
}

func warnEnv(name, value string) {
	fmt.Fprintf(os.Stderr, "warning: ignoring malformed %s=%q\n", name, value)
}
