// Package llm wraps the chat-completion provider behind a small interface so
// the agent, classifier and translator can share one client and tests can
// substitute a fake.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"automaxbot/internal/model"
	"automaxbot/internal/observability"
)

// Options tunes a single completion request.
type Options struct {
	MaxTokens   int
	Temperature float32
}

// Completer produces a completion for a conversation.
type Completer interface {
	Complete(ctx context.Context, msgs []model.ChatMessage, opts Options) (string, error)
}

// OpenAIClient is the production Completer. Every call is bounded by the
// configured timeout regardless of what the caller's context allows.
type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAI(apiKey string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   openai.GPT4oMini,
		timeout: timeout,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, msgs []model.ChatMessage, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	for _, m := range msgs {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		status := "error"
		if IsTimeout(err) {
			status = "timeout"
		}
		observability.CompletionLatency.WithLabelValues(status).Observe(elapsed)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	observability.CompletionLatency.WithLabelValues("ok").Observe(elapsed)

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// IsTimeout reports whether err was caused by the completion deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
