package synopsis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel = string(anthropic.ModelClaude3_5HaikuLatest)
	summaryMaxTokens      = 80
)

// systemPrompt asks for a 15-40 word synopsis
const systemPrompt = "You write one-sentence news synopses for an equity screening tool. " +
	"Reply with a single plain sentence of 15 to 40 words. No preamble, no quotes."

// AnthropicSummarizer calls the Claude Messages API
type AnthropicSummarizer struct {
	client anthropic.Client
	model  string
}

// NewAnthropicSummarizer creates a summarizer; an empty key is an error
func NewAnthropicSummarizer(apiKey, model string, opts ...option.RequestOption) (*AnthropicSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is not set")
	}
	if model == "" {
		model = defaultAnthropicModel
	}

	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &AnthropicSummarizer{
		client: anthropic.NewClient(reqOpts...),
		model:  model,
	}, nil
}

// Summarize implements Summarizer
func (s *AnthropicSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(summaryMaxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}

	if out.Len() == 0 {
		return "", errors.New("anthropic returned no text")
	}

	return out.String(), nil
}
