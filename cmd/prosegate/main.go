// Command prosegate is a quality gate for prose and markdown documents:
// readability scoring, grammar and passive voice checks, token budgets,
// template completeness, and a rule-driven lint engine that combines them.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/prosegate/internal/analysis"
	"github.com/dshills/prosegate/internal/completeness"
	"github.com/dshills/prosegate/internal/config"
	"github.com/dshills/prosegate/internal/grammar"
	"github.com/dshills/prosegate/internal/lint"
	"github.com/dshills/prosegate/internal/readability"
	"github.com/dshills/prosegate/internal/render"
	"github.com/dshills/prosegate/internal/rules"
	"github.com/dshills/prosegate/internal/schema"
	"github.com/dshills/prosegate/internal/tokens"
	"github.com/dshills/prosegate/internal/wordlists"
)

const version = "0.1.0"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	jsonOut    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "prosegate",
		Short:         "Quality gates for prose and markdown documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a config file (overrides discovery)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "emit JSON instead of text")

	root.AddCommand(
		newLintCmd(opts),
		newAnalyzeCmd(opts),
		newReadabilityCmd(opts),
		newGrammarCmd(opts),
		newTokensCmd(opts),
		newCompletenessCmd(opts),
		newInfoCmd(opts),
	)
	return root
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	return config.Load(opts.configPath, ".")
}

// readInputFile reads a file, enforcing the configured size limit. A max of
// zero disables the limit.
func readInputFile(path string, max int) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if max > 0 && len(b) > max {
		return "", &schema.InputTooLargeError{Size: len(b), Max: max}
	}
	return string(b), nil
}

func isMarkdown(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}

// -- lint --------------------------------------------------------------------

func newLintCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Run the checks configured for a file by project rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd.Context(), args[0], opts)
		},
	}
}

func runLint(ctx context.Context, file string, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if len(cfg.Rules) == 0 {
		if !opts.jsonOut {
			fmt.Println(render.SkipNoRules)
		}
		return nil
	}

	resolved := rules.Compile(cfg.Rules).Resolve(file)
	if resolved.IsEmpty() {
		if !opts.jsonOut {
			fmt.Println(render.SkipNoMatch(file))
		}
		return nil
	}

	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	report, err := lint.Run(ctx, file, content, resolved, cfg)
	if err != nil {
		return fmt.Errorf("failed to lint %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	fmt.Print(render.Lint(report))
	if !report.Pass {
		return fmt.Errorf("%s", render.LintFailure(file))
	}
	return nil
}

// -- analyze -----------------------------------------------------------------

func newAnalyzeCmd(opts *globalOptions) *cobra.Command {
	var checks []string
	var styleMin int

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run the full writing analysis on a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var min *int
			if cmd.Flags().Changed("style-min") {
				min = &styleMin
			}
			return runAnalyze(args[0], checks, min, opts)
		},
	}
	cmd.Flags().StringSliceVar(&checks, "checks", nil, "checks to run (comma-separated, omit for all)")
	cmd.Flags().IntVar(&styleMin, "style-min", 0, "minimum acceptable style score (0-100)")
	return cmd
}

func runAnalyze(file string, checks []string, styleMin *int, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	if err := analysis.ValidateChecks(checks); err != nil {
		return err
	}

	analysisOpts := analysis.Options{
		MaxGrade:   cfg.MaxGrade,
		PassiveMax: cfg.PassiveMaxPercent,
	}
	if cfg.Dialect != "" {
		d, ok := wordlists.ParseDialect(cfg.Dialect)
		if !ok {
			return fmt.Errorf("unknown dialect %q (use en-us, en-gb, en-ca, or en-au)", cfg.Dialect)
		}
		analysisOpts.Dialect = d
	}

	report, err := analysis.RunFull(content, isMarkdown(file), checks, analysisOpts)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	fmt.Print(render.Analyze(file, report))

	min := styleMin
	if min == nil {
		min = cfg.StyleMinScore
	}
	if min != nil && report.Style != nil && report.Style.StyleScore < *min {
		return fmt.Errorf("%s", render.StyleFailure(file, report.Style.StyleScore, *min))
	}
	return nil
}

// -- readability -------------------------------------------------------------

func newReadabilityCmd(opts *globalOptions) *cobra.Command {
	var maxGrade float64

	cmd := &cobra.Command{
		Use:   "readability <file>",
		Short: "Score a file with the Flesch-Kincaid grade level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var max *float64
			if cmd.Flags().Changed("max-grade") {
				max = &maxGrade
			}
			return runReadability(args[0], max, opts)
		},
	}
	cmd.Flags().Float64Var(&maxGrade, "max-grade", 0, "maximum acceptable grade level")
	return cmd
}

func runReadability(file string, maxGrade *float64, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	if maxGrade == nil {
		maxGrade = cfg.MaxGrade
	}
	report, err := readability.Check(content, isMarkdown(file), maxGrade)
	if err != nil {
		return fmt.Errorf("failed to check readability of %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	if report.OverMax {
		return fmt.Errorf("%s", render.ReadabilityFailure(file, report))
	}
	fmt.Println(render.Readability(file, report))
	return nil
}

// -- grammar -----------------------------------------------------------------

func newGrammarCmd(opts *globalOptions) *cobra.Command {
	var passiveMax float64

	cmd := &cobra.Command{
		Use:   "grammar <file>",
		Short: "Check grammar and passive voice in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var max *float64
			if cmd.Flags().Changed("passive-max") {
				max = &passiveMax
			}
			return runGrammar(args[0], max, opts)
		},
	}
	cmd.Flags().Float64Var(&passiveMax, "passive-max", 0, "maximum acceptable passive voice percentage (0-100)")
	return cmd
}

func runGrammar(file string, passiveMax *float64, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	if passiveMax == nil {
		passiveMax = cfg.PassiveMaxPercent
	}
	report, err := grammar.CheckFull(content, isMarkdown(file), passiveMax)
	if err != nil {
		return fmt.Errorf("failed to check grammar of %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	fmt.Print(render.Grammar(file, report))
	if report.OverMax {
		return fmt.Errorf("%s", render.GrammarFailure(file, report))
	}
	return nil
}

// -- tokens ------------------------------------------------------------------

func newTokensCmd(opts *globalOptions) *cobra.Command {
	var budget int
	var backend string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Count tokens in a file and check against a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b *int
			if cmd.Flags().Changed("budget") {
				b = &budget
			}
			return runTokens(cmd.Context(), args[0], b, backend, opts)
		},
	}
	cmd.Flags().IntVar(&budget, "budget", 0, "maximum token budget")
	cmd.Flags().StringVar(&backend, "backend", "", "token counting backend (claude, openai, gemini)")
	return cmd
}

func runTokens(ctx context.Context, file string, budget *int, backend string, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	if budget == nil {
		budget = cfg.TokenBudget
	}
	if backend == "" {
		backend = cfg.Tokenizer
	}
	report, err := tokens.Count(ctx, content, budget, backend)
	if err != nil {
		return fmt.Errorf("failed to count tokens in %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	if report.OverBudget {
		return fmt.Errorf("%s", render.TokensFailure(file, report))
	}
	fmt.Println(render.Tokens(file, report))
	return nil
}

// -- completeness ------------------------------------------------------------

func newCompletenessCmd(opts *globalOptions) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "completeness <file>",
		Short: "Check that a document has every section its template requires",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompleteness(args[0], template, opts)
		},
	}
	cmd.Flags().StringVar(&template, "template", "", "template to validate against (adr, handoff, design-doc)")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runCompleteness(file, template string, opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	content, err := readInputFile(file, cfg.EffectiveMaxInputBytes())
	if err != nil {
		return err
	}

	report, err := completeness.Check(content, template, cfg.Templates)
	if err != nil {
		return fmt.Errorf("failed to check completeness of %s: %w", file, err)
	}

	if opts.jsonOut {
		return printJSON(report)
	}
	if !report.Pass {
		return fmt.Errorf("%s", render.CompletenessFailure(file, report))
	}
	fmt.Println(render.Completeness(file, report))
	return nil
}

// -- info --------------------------------------------------------------------

type infoOutput struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	TokenBudget   *int     `json:"token_budget,omitempty"`
	MaxGrade      *float64 `json:"max_grade,omitempty"`
	PassiveMax    *float64 `json:"passive_max_percent,omitempty"`
	StyleMinScore *int     `json:"style_min_score,omitempty"`
	Dialect       string   `json:"dialect,omitempty"`
	Tokenizer     string   `json:"tokenizer,omitempty"`
	Checks        []string `json:"checks"`
	Templates     []string `json:"templates"`
}

func newInfoCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version and effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(opts)
		},
	}
}

func runInfo(opts *globalOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	out := infoOutput{
		Name:          "prosegate",
		Version:       version,
		TokenBudget:   cfg.TokenBudget,
		MaxGrade:      cfg.MaxGrade,
		PassiveMax:    cfg.PassiveMaxPercent,
		StyleMinScore: cfg.StyleMinScore,
		Dialect:       cfg.Dialect,
		Tokenizer:     cfg.Tokenizer,
		Checks:        analysis.AllChecks,
		Templates:     completeness.AvailableTemplates(cfg.Templates),
	}

	if opts.jsonOut {
		return printJSON(out)
	}

	fmt.Printf("prosegate %s\n\n", version)
	fmt.Println("Quality Gates")
	printOptInt("Token budget", out.TokenBudget)
	printOptFloat("Max grade", out.MaxGrade)
	printOptFloat("Passive max %", out.PassiveMax)
	printOptInt("Style min score", out.StyleMinScore)
	printOptString("Dialect", out.Dialect)
	printOptString("Tokenizer", out.Tokenizer)
	fmt.Printf("\nChecks: %s\n", strings.Join(out.Checks, ", "))
	fmt.Printf("Templates: %s\n", strings.Join(out.Templates, ", "))
	return nil
}

func printOptInt(label string, v *int) {
	if v != nil {
		fmt.Printf("%s: %d\n", label, *v)
	} else {
		fmt.Printf("%s: (not set)\n", label)
	}
}

func printOptFloat(label string, v *float64) {
	if v != nil {
		fmt.Printf("%s: %.1f\n", label, *v)
	} else {
		fmt.Printf("%s: (not set)\n", label)
	}
}

func printOptString(label, v string) {
	if v != "" {
		fmt.Printf("%s: %s\n", label, v)
	} else {
		fmt.Printf("%s: (not set)\n", label)
	}
}

func printJSON(report any) error {
	b, err := render.JSON(report)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
