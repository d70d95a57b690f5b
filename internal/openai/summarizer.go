package openai

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultSummaryModel is the chat model used for answer summarization.
const DefaultSummaryModel = "gpt-4o-mini"

// ErrNoSummaryKey is returned when no summarizer API key is configured.
var ErrNoSummaryKey = errors.New("summarizer API key not set")

// SummarizerConfig configures the chat-completion summarizer. BaseURL may
// point at any OpenAI-compatible endpoint.
type SummarizerConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Summarizer produces short natural-language answers from retrieved text.
type Summarizer struct {
	client *openai.Client
	model  string
}

// NewSummarizer creates a summarizer, or an error when no key is configured.
// Callers treat a missing key the same as an unreachable summarizer.
func NewSummarizer(cfg SummarizerConfig) (*Summarizer, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoSummaryKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultSummaryModel
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Complete sends the prompt and returns the model's text response.
func (s *Summarizer) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
