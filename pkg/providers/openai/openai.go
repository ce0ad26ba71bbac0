// Package openai provides a Completer implementation for the OpenAI Chat
// Completions API and any service that speaks the same wire format.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/relnotes/pkg/chats/message"
	"github.com/germanamz/relnotes/pkg/chats/role"
	"github.com/germanamz/relnotes/pkg/modeladapter"
	"github.com/germanamz/relnotes/pkg/modeladapter/usage"
)

// DefaultEndpoint is the OpenAI chat completions URL.
const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

const completionsSuffix = "/chat/completions"

var (
	// ErrNoChoices is returned when the response carries no choices.
	ErrNoChoices = errors.New("response did not include choices")
	// ErrNoContent is returned when the first choice has no message content.
	ErrNoContent = errors.New("response did not include content")
)

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Chat Completions API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter that posts to endpoint, the full chat completions
// URL (see ResolveEndpoint).
func New(endpoint, apiKey, model string) *Adapter {
	a := &Adapter{}
	a.BaseURL = endpoint
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model

	return a
}

// ResolveEndpoint turns an OpenAI-compatible base URL into its chat
// completions URL. A blank base URL selects DefaultEndpoint.
func ResolveEndpoint(baseURL string) string {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return DefaultEndpoint
	}

	normalized := strings.TrimRight(trimmed, "/")
	if strings.HasSuffix(normalized, completionsSuffix) {
		return normalized
	}

	return normalized + completionsSuffix
}

// Complete sends msgs to the Chat Completions API and returns the first
// choice as an assistant message.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message) (message.Message, error) {
	req := a.buildRequest(msgs)

	var resp apiResponse
	if err := a.PostJSON(ctx, "", req, &resp); err != nil {
		return message.Message{}, fmt.Errorf("openai: %w", err)
	}

	if resp.Usage != nil {
		a.Usage.Add(usage.TokenCount{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
		})
	}

	if len(resp.Choices) == 0 {
		return message.Message{}, fmt.Errorf("openai: %w", ErrNoChoices)
	}

	content := resp.Choices[0].Message.Content
	if content == nil {
		return message.Message{}, fmt.Errorf("openai: %w", ErrNoContent)
	}

	return message.New(role.Assistant, *content), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
	Usage   *apiUsage   `json:"usage"`
}

type apiChoice struct {
	Message apiRespMessage `json:"message"`
}

type apiRespMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

func (a *Adapter) buildRequest(msgs []message.Message) apiRequest {
	req := apiRequest{
		Model:       a.Name,
		Temperature: a.Temperature,
		Messages:    make([]apiMessage, len(msgs)),
	}

	for i, m := range msgs {
		req.Messages[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}

	return req
}
