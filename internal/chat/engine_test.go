package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/techverse/aiverse/internal/llm"
	"github.com/techverse/aiverse/internal/vectordb"
)

// stubProvider records completion requests and returns a canned answer.
type stubProvider struct {
	mu       sync.Mutex
	response string
	err      error
	requests []llm.CompletionRequest
}

func (p *stubProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Content: p.response}, nil
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) lastRequest(t *testing.T) llm.CompletionRequest {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.requests) == 0 {
		t.Fatal("no completion requests recorded")
	}
	return p.requests[len(p.requests)-1]
}

// stubVectorStore serves fixed search results.
type stubVectorStore struct {
	results []vectordb.SearchResult
	err     error
}

func (s *stubVectorStore) AddDocuments(context.Context, []vectordb.Document) error { return nil }

func (s *stubVectorStore) Search(context.Context, string, int) ([]vectordb.SearchResult, error) {
	return s.results, s.err
}

func (s *stubVectorStore) DeleteByDocumentID(context.Context, string) error { return nil }
func (s *stubVectorStore) Persist(context.Context, string) error           { return nil }
func (s *stubVectorStore) Load(context.Context, string) error              { return nil }
func (s *stubVectorStore) Count() int                                      { return len(s.results) }

func docResult(source, content string, relevance float32) vectordb.SearchResult {
	return vectordb.SearchResult{
		Document: vectordb.Document{
			ID:       source + "-0",
			Content:  content,
			Metadata: vectordb.DocumentMetadata{Source: source},
		},
		Relevance: relevance,
	}
}

func TestEngineBuildsPromptFromRetrievedDocs(t *testing.T) {
	provider := &stubProvider{response: "We ship worldwide."}
	store := &stubVectorStore{results: []vectordb.SearchResult{
		docResult("shipping.pdf", "We ship to over 40 countries.", 0.9),
	}}
	engine := NewEngine(store, llm.NewGateway(provider, "test-model"), 5)

	answer, docs := engine.ProcessQuery(context.Background(), "Where do you ship?", nil, "")

	if answer != "We ship worldwide." {
		t.Errorf("answer = %q", answer)
	}
	if len(docs) != 1 {
		t.Fatalf("docs = %d, want 1", len(docs))
	}

	req := provider.lastRequest(t)
	userMsg := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(userMsg, "[Source: shipping.pdf]\nWe ship to over 40 countries.") {
		t.Errorf("prompt missing source-tagged context:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "Customer Message:\nWhere do you ship?") {
		t.Errorf("prompt missing customer message:\n%s", userMsg)
	}
}

func TestEngineEmptyRetrievalUsesSentinel(t *testing.T) {
	provider := &stubProvider{response: "Happy to help!"}
	engine := NewEngine(&stubVectorStore{}, llm.NewGateway(provider, "test-model"), 5)

	engine.ProcessQuery(context.Background(), "hello", nil, "")

	req := provider.lastRequest(t)
	userMsg := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(userMsg, "No relevant information found.") {
		t.Errorf("prompt missing empty-context sentinel:\n%s", userMsg)
	}
}

func TestEngineSearchFailureStillAnswers(t *testing.T) {
	provider := &stubProvider{response: "Sure thing."}
	store := &stubVectorStore{err: errors.New("index unavailable")}
	engine := NewEngine(store, llm.NewGateway(provider, "test-model"), 5)

	answer, docs := engine.ProcessQuery(context.Background(), "hi", nil, "")

	if answer != "Sure thing." {
		t.Errorf("answer = %q", answer)
	}
	if docs != nil {
		t.Errorf("docs = %v, want nil", docs)
	}
}

func TestEngineProviderFailureReturnsFallback(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	engine := NewEngine(&stubVectorStore{}, llm.NewGateway(provider, "test-model"), 5)

	answer, _ := engine.ProcessQuery(context.Background(), "hi", nil, "")

	if answer != llm.FallbackAnswer {
		t.Errorf("answer = %q, want gateway fallback", answer)
	}
}

func TestEngineFoldsHistoryIntoSystemPrompt(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	engine := NewEngine(&stubVectorStore{}, llm.NewGateway(provider, "test-model"), 5)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "Do you sell laptops?"},
		{Role: llm.RoleAssistant, Content: "Yes, several models."},
	}
	engine.ProcessQuery(context.Background(), "Which is cheapest?", history, "")

	req := provider.lastRequest(t)
	system := req.Messages[0].Content
	if !strings.Contains(system, "Recent conversation:") {
		t.Errorf("system prompt missing history block:\n%s", system)
	}
	if !strings.Contains(system, "USER: Do you sell laptops?") {
		t.Errorf("system prompt missing history turn:\n%s", system)
	}
}
