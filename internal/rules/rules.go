// Package rules matches file paths against configured glob rules and
// resolves which checks apply.
//
// When multiple rules match a path, all contribute their checks. Conflicts
// (the same check type configured by more than one matching rule) are
// resolved by specificity: the pattern with more literal path segments wins,
// and ties go to the earlier rule.
package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule pairs glob patterns with the checks to run on matching files.
type Rule struct {
	Paths  []string   `json:"paths" yaml:"paths" toml:"paths"`
	Checks RuleChecks `json:"checks" yaml:"checks" toml:"checks"`
}

// RuleChecks holds the per-check configurations a rule may carry. A nil
// field means the rule does not configure that check.
type RuleChecks struct {
	Analyze      *AnalyzeConfig      `json:"analyze,omitempty" yaml:"analyze,omitempty" toml:"analyze,omitempty"`
	Readability  *ReadabilityConfig  `json:"readability,omitempty" yaml:"readability,omitempty" toml:"readability,omitempty"`
	Grammar      *GrammarConfig      `json:"grammar,omitempty" yaml:"grammar,omitempty" toml:"grammar,omitempty"`
	Completeness *CompletenessConfig `json:"completeness,omitempty" yaml:"completeness,omitempty" toml:"completeness,omitempty"`
	Tokens       *TokensConfig       `json:"tokens,omitempty" yaml:"tokens,omitempty" toml:"tokens,omitempty"`
}

// AnalyzeConfig configures the full analysis check. Checks and Exclude are
// mutually exclusive; the engine rejects rules that set both.
type AnalyzeConfig struct {
	Checks     []string `json:"checks,omitempty" yaml:"checks,omitempty" toml:"checks,omitempty"`
	Exclude    []string `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	MaxGrade   *float64 `json:"max_grade,omitempty" yaml:"max_grade,omitempty" toml:"max_grade,omitempty"`
	PassiveMax *float64 `json:"passive_max,omitempty" yaml:"passive_max,omitempty" toml:"passive_max,omitempty"`
	StyleMin   *int     `json:"style_min,omitempty" yaml:"style_min,omitempty" toml:"style_min,omitempty"`
	Dialect    string   `json:"dialect,omitempty" yaml:"dialect,omitempty" toml:"dialect,omitempty"`
}

// ReadabilityConfig configures the standalone readability check.
type ReadabilityConfig struct {
	MaxGrade *float64 `json:"max_grade,omitempty" yaml:"max_grade,omitempty" toml:"max_grade,omitempty"`
}

// GrammarConfig configures the standalone grammar check.
type GrammarConfig struct {
	PassiveMax *float64 `json:"passive_max,omitempty" yaml:"passive_max,omitempty" toml:"passive_max,omitempty"`
}

// CompletenessConfig configures the completeness check.
type CompletenessConfig struct {
	Template string `json:"template" yaml:"template" toml:"template"`
}

// TokensConfig configures the token budget check.
type TokensConfig struct {
	Budget    *int   `json:"budget,omitempty" yaml:"budget,omitempty" toml:"budget,omitempty"`
	Tokenizer string `json:"tokenizer,omitempty" yaml:"tokenizer,omitempty" toml:"tokenizer,omitempty"`
}

// ResolvedChecks is the accumulated check configuration after resolution.
type ResolvedChecks struct {
	Analyze      *AnalyzeConfig
	Readability  *ReadabilityConfig
	Grammar      *GrammarConfig
	Completeness *CompletenessConfig
	Tokens       *TokensConfig
}

// IsEmpty reports whether no checks are configured.
func (r ResolvedChecks) IsEmpty() bool {
	return r.Analyze == nil && r.Readability == nil && r.Grammar == nil &&
		r.Completeness == nil && r.Tokens == nil
}

// RuleSet is a compiled rule list ready for matching.
type RuleSet struct {
	compiled []compiledRule
}

type compiledRule struct {
	matchers []matcher
	checks   RuleChecks
}

type matcher struct {
	pattern     string
	specificity int
}

// Specificity counts the literal (non-wildcard) path segments of a glob
// pattern.
//
//	docs/decisions/*.md → 2 (docs, decisions)
//	docs/**/*.md        → 1 (docs)
//	**/*.md             → 0
func Specificity(pattern string) int {
	n := 0
	for _, seg := range strings.Split(pattern, "/") {
		if !strings.ContainsAny(seg, "*?[") {
			n++
		}
	}
	return n
}

// Compile validates and compiles rules into a RuleSet. Invalid glob patterns
// are skipped with a warning on stderr; a rule with no valid patterns is
// dropped entirely.
func Compile(rules []Rule) *RuleSet {
	set := &RuleSet{}
	for _, rule := range rules {
		var matchers []matcher
		for _, pattern := range rule.Paths {
			if !doublestar.ValidatePattern(pattern) {
				fmt.Fprintf(os.Stderr, "warning: skipping invalid glob pattern %q\n", pattern)
				continue
			}
			matchers = append(matchers, matcher{pattern: pattern, specificity: Specificity(pattern)})
		}
		if len(matchers) == 0 {
			continue
		}
		set.compiled = append(set.compiled, compiledRule{matchers: matchers, checks: rule.Checks})
	}
	return set
}

// Resolve determines which checks apply to a file path.
//
// All matching rules contribute. When two rules configure the same check
// type, the one matched by the higher-specificity pattern wins; a tie keeps
// the earlier rule.
func (s *RuleSet) Resolve(filePath string) ResolvedChecks {
	var result ResolvedChecks

	// Winning specificity per check type; -1 means unset.
	analyzeSpec, readabilitySpec, grammarSpec := -1, -1, -1
	completenessSpec, tokensSpec := -1, -1

	for _, rule := range s.compiled {
		maxSpec := -1
		for _, m := range rule.matchers {
			ok, err := doublestar.Match(m.pattern, filePath)
			if err != nil || !ok {
				continue
			}
			if m.specificity > maxSpec {
				maxSpec = m.specificity
			}
		}
		if maxSpec < 0 {
			continue
		}

		if rule.checks.Analyze != nil && maxSpec > analyzeSpec {
			result.Analyze = rule.checks.Analyze
			analyzeSpec = maxSpec
		}
		if rule.checks.Readability != nil && maxSpec > readabilitySpec {
			result.Readability = rule.checks.Readability
			readabilitySpec = maxSpec
		}
		if rule.checks.Grammar != nil && maxSpec > grammarSpec {
			result.Grammar = rule.checks.Grammar
			grammarSpec = maxSpec
		}
		if rule.checks.Completeness != nil && maxSpec > completenessSpec {
			result.Completeness = rule.checks.Completeness
			completenessSpec = maxSpec
		}
		if rule.checks.Tokens != nil && maxSpec > tokensSpec {
			result.Tokens = rule.checks.Tokens
			tokensSpec = maxSpec
		}
	}
	return result
}
