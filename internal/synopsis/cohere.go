package synopsis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const defaultCohereModel = "command-r"

// CohereSummarizer calls the Cohere Chat API
type CohereSummarizer struct {
	client *cohereclient.Client
	model  string
}

// NewCohereSummarizer creates a summarizer; an empty key is an error
func NewCohereSummarizer(apiKey, model string, httpClient *http.Client) (*CohereSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("COHERE_API_KEY is not set")
	}
	if model == "" {
		model = defaultCohereModel
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)

	return &CohereSummarizer{client: client, model: model}, nil
}

// Summarize implements Summarizer
func (s *CohereSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	model := s.model
	preamble := systemPrompt
	maxTokens := summaryMaxTokens

	resp, err := s.client.Chat(ctx, &cohere.ChatRequest{
		Message:   text,
		Model:     &model,
		Preamble:  &preamble,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat: %w", err)
	}
	if resp == nil || resp.Text == "" {
		return "", errors.New("cohere returned no text")
	}

	return resp.Text, nil
}
