package llm

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// FallbackAnswer is returned by the gateway whenever the underlying provider
// fails. Callers treat it as a normal answer; generation failures never
// propagate as errors.
const FallbackAnswer = "I'm having trouble processing your request. Please try again later."

// contextTemplate wraps a prompt with retrieved context before delegating
// to Query.
const contextTemplate = `Context information is below.
---------------------
%s
---------------------

Given the context information and not prior knowledge, answer the question: %s
`

// historyWindow is how many trailing conversation turns are folded into the
// system prompt.
const historyWindow = 5

// Gateway wraps a Provider with the degrade-never-fail policy the chat
// pipeline relies on: every call returns usable text, substituting
// FallbackAnswer when the provider errors.
type Gateway struct {
	provider    Provider
	model       string
	maxTokens   int
	temperature float64
}

// NewGateway creates a gateway over the given provider and model.
func NewGateway(provider Provider, model string) *Gateway {
	return &Gateway{
		provider:    provider,
		model:       model,
		maxTokens:   1024,
		temperature: 0.3,
	}
}

// Query sends a prompt with system instructions to the model and returns the
// generated text. On any provider failure the error is logged and
// FallbackAnswer is returned instead.
func (g *Gateway) Query(ctx context.Context, prompt string, systemPrompt string) string {
	resp, err := g.provider.Complete(ctx, CompletionRequest{
		Model: g.model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: prompt},
		},
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	})
	if err != nil {
		log.Printf("llm: %s completion failed: %v", g.provider.Name(), err)
		return FallbackAnswer
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		log.Printf("llm: %s returned an empty completion", g.provider.Name())
		return FallbackAnswer
	}
	return content
}

// QueryWithContext wraps the prompt with retrieved context using a fixed
// template, then delegates to Query.
func (g *Gateway) QueryWithContext(ctx context.Context, prompt string, docContext string, systemPrompt string) string {
	full := fmt.Sprintf(contextTemplate, docContext, prompt)
	return g.Query(ctx, full, systemPrompt)
}

// SystemPromptWithHistory appends the last turns of a conversation to the
// base system prompt so the model can resolve references to earlier
// messages. With an empty history the base prompt is returned unmodified.
func SystemPromptWithHistory(base string, history []Message) string {
	if len(history) == 0 {
		return base
	}

	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("\n\nRecent conversation:\n")
	for _, msg := range history[start:] {
		sb.WriteString(strings.ToUpper(string(msg.Role)))
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}
