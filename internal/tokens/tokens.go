// Package tokens counts tokens with pluggable backends.
//
// Three backends are available: claude (the Anthropic count-tokens API, with
// an offline estimate when no API key is configured), openai (exact
// cl100k_base BPE), and gemini (the Google count-tokens API). Claude is the
// default.
package tokens

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/generative-ai-go/genai"
	"github.com/pkoukk/tiktoken-go"
	"google.golang.org/api/option"

	"github.com/dshills/prosegate/internal/schema"
)

// Backends, in the order reported by errors.
var backends = []string{"claude", "openai", "gemini"}

const (
	defaultClaudeModel = "claude-sonnet-4-5"
	defaultGeminiModel = "gemini-1.5-flash"
)

// Counter counts tokens in text. The returned tokenizer names the mechanism
// that produced the count (e.g. "claude-api" vs "claude-estimate").
type Counter interface {
	Count(ctx context.Context, text string) (count int, tokenizer string, err error)
}

// NewCounter is the factory for token counters. It is a package-level
// variable so tests can replace it with a fake without modifying the call
// site. Tests must restore the original value; use t.Cleanup to do so safely.
var NewCounter func(backend string) (Counter, error) = defaultNewCounter

// Count counts tokens in text using the named backend ("" means claude) and
// reports whether the count exceeds budget (nil means no budget).
func Count(ctx context.Context, text string, budget *int, backend string) (*schema.TokenReport, error) {
	counter, err := NewCounter(backend)
	if err != nil {
		return nil, err
	}

	count, tokenizer, err := counter.Count(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tokens: count: %w", err)
	}

	overBudget := budget != nil && count > *budget

	return &schema.TokenReport{
		Count:      count,
		Budget:     budget,
		OverBudget: overBudget,
		Tokenizer:  tokenizer,
	}, nil
}

func defaultNewCounter(backend string) (Counter, error) {
	switch strings.ToLower(backend) {
	case "claude", "":
		return newClaudeCounter(), nil
	case "openai":
		return newOpenAICounter()
	case "gemini":
		return &geminiCounter{model: defaultGeminiModel}, nil
	default:
		return nil, fmt.Errorf("tokens: unknown backend %q (available: %s)",
			backend, strings.Join(backends, ", "))
	}
}

// -- Claude backend ----------------------------------------------------------

// claudeCounter prefers the Anthropic count-tokens API and falls back to a
// local cl100k_base estimate when no API key is configured or the call
// fails. Estimated counts are labeled "claude-estimate" so callers can tell
// them apart from exact API counts.
type claudeCounter struct {
	client *anthropic.Client
	model  string
}

func newClaudeCounter() *claudeCounter {
	c := &claudeCounter{model: defaultClaudeModel}
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		client := anthropic.NewClient(anthropicoption.WithAPIKey(apiKey))
		c.client = &client
	}
	return c
}

func (c *claudeCounter) Count(ctx context.Context, text string) (int, string, error) {
	if text == "" {
		return 0, "claude-api", nil
	}
	if c.client != nil {
		res, err := c.client.Messages.CountTokens(ctx, anthropic.MessageCountTokensParams{
			Model: anthropic.Model(c.model),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
			},
		})
		if err == nil {
			return int(res.InputTokens), "claude-api", nil
		}
		fmt.Fprintf(os.Stderr, "warning: count-tokens API failed, using local estimate: %v\n", err)
	}

	count, err := estimateTokens(text)
	if err != nil {
		return 0, "", err
	}
	return count, "claude-estimate", nil
}

// estimateTokens approximates a Claude token count with cl100k_base BPE.
// Claude's tokenizer segments text similarly enough for budget enforcement.
func estimateTokens(text string) (int, error) {
	enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		return 0, fmt.Errorf("init cl100k_base: %w", err)
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// -- OpenAI backend ----------------------------------------------------------

type openaiCounter struct {
	enc *tiktoken.Tiktoken
}

func newOpenAICounter() (*openaiCounter, error) {
	enc, err := tiktoken.GetEncoding(tiktoken.MODEL_CL100K_BASE)
	if err != nil {
		return nil, fmt.Errorf("tokens: init cl100k_base: %w", err)
	}
	return &openaiCounter{enc: enc}, nil
}

func (c *openaiCounter) Count(_ context.Context, text string) (int, string, error) {
	if text == "" {
		return 0, "openai", nil
	}
	return len(c.enc.Encode(text, nil, nil)), "openai", nil
}

// -- Gemini backend ----------------------------------------------------------

// geminiCounter uses the Google count-tokens API. The genai client binds to
// a context, so it is created per call rather than at construction.
type geminiCounter struct {
	model string
}

func (c *geminiCounter) Count(ctx context.Context, text string) (int, string, error) {
	if text == "" {
		return 0, "gemini", nil
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return 0, "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return 0, "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer client.Close()

	res, err := client.GenerativeModel(c.model).CountTokens(ctx, genai.Text(text))
	if err != nil {
		return 0, "", fmt.Errorf("gemini: count tokens: %w", err)
	}
	return int(res.TotalTokens), "gemini", nil
}
