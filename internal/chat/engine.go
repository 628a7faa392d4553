package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/techverse/aiverse/internal/llm"
	"github.com/techverse/aiverse/internal/vectordb"
)

const engineFallback = "I'm sorry, I encountered an error while processing your question. Please try again."

// Engine answers free-form questions by retrieving related documents and
// folding them, together with database facts, into a single LLM prompt.
type Engine struct {
	store   vectordb.VectorStore
	gateway *llm.Gateway
	topK    int
}

func NewEngine(store vectordb.VectorStore, gateway *llm.Gateway, topK int) *Engine {
	if topK <= 0 {
		topK = 5
	}
	return &Engine{store: store, gateway: gateway, topK: topK}
}

// ProcessQuery runs one retrieval-augmented exchange. Retrieval failures
// degrade to an empty context rather than failing the request, so a usable
// answer always comes back.
func (e *Engine) ProcessQuery(ctx context.Context, query string, history []llm.Message, dbInfo string) (string, []vectordb.SearchResult) {
	results, err := e.store.Search(ctx, query, e.topK)
	if err != nil {
		log.Printf("vector search failed, answering without context: %v", err)
		results = nil
	}

	prompt := fmt.Sprintf(queryPrompt, formatContext(results), dbInfo, query)
	system := llm.SystemPromptWithHistory(systemPrompt, history)

	answer := e.gateway.Query(ctx, prompt, system)
	if strings.TrimSpace(answer) == "" {
		return engineFallback, results
	}
	return answer, results
}

// formatContext renders retrieved documents as source-tagged blocks.
func formatContext(results []vectordb.SearchResult) string {
	if len(results) == 0 {
		return "No relevant information found."
	}

	parts := make([]string, 0, len(results))
	for i, r := range results {
		source := r.Document.Metadata.Source
		if source == "" {
			source = fmt.Sprintf("Document %d", i+1)
		}
		parts = append(parts, fmt.Sprintf("[Source: %s]\n%s", source, r.Document.Content))
	}
	return strings.Join(parts, "\n\n")
}
