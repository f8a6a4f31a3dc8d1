// Package openrouter implements the AI summarizer over an OpenAI-compatible
// chat-completion endpoint (OpenRouter by default).
package openrouter

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"StockSignal/internal/domain/models"
	"StockSignal/internal/provider"
)

const providerName = "openrouter"

// Client sends single-message chat completions with near-deterministic
// settings and a bounded output length.
type Client struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int
	configured  bool
}

// Config holds OpenRouter connection settings.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Referer     string
	Title       string
}

// New creates an OpenRouter-backed summarizer client.
func New(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	}
	if cfg.Referer != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.Referer))
	}
	if cfg.Title != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.Title))
	}

	client := openai.NewClient(opts...)
	return &Client{
		client:      &client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		configured:  cfg.APIKey != "",
	}
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	if !c.configured {
		return "", provider.ErrNotConfigured
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", provider.Errorf(providerName, err)
	}

	if len(resp.Choices) == 0 {
		return "", provider.Errorf(providerName, fmt.Errorf("no choices in response"))
	}

	return resp.Choices[0].Message.Content, nil
}

// Analyze runs the structured-JSON analysis prompt for subject over the
// formatted article block and parses the response. Malformed model output is
// absorbed into the empty-summary sentinel; only transport and credential
// failures propagate.
func (c *Client) Analyze(ctx context.Context, subject, newsContent string) (models.AISummary, error) {
	raw, err := c.complete(ctx, analysisPrompt(subject, newsContent))
	if err != nil {
		return models.AISummary{}, err
	}
	return ParseResponse(raw), nil
}

// Reask re-asks with the simplified plain-prose prompt and returns the raw
// completion text.
func (c *Client) Reask(ctx context.Context, newsContent string) (string, error) {
	return c.complete(ctx, simplifiedPrompt(newsContent))
}
