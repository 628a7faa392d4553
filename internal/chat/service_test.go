package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/db"
	"github.com/techverse/aiverse/internal/llm"
	"github.com/techverse/aiverse/internal/vectordb"
)

func setupService(t *testing.T, provider llm.Provider, results []vectordb.SearchResult) *Service {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := catalog.Seed(context.Background(), database); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	store := &stubVectorStore{results: results}
	engine := NewEngine(store, llm.NewGateway(provider, "test-model"), 5)
	return NewService(engine, catalog.NewStore(database))
}

func authedRequest(query string) *Request {
	req := &Request{Query: query}
	req.SetAuth(true, 1)
	return req
}

func TestGeneralQueryReturnsContextAndSources(t *testing.T) {
	provider := &stubProvider{response: "We sell phones and laptops."}
	results := []vectordb.SearchResult{
		docResult("catalog.txt", "TechVerse sells electronics.", 0.9),
		docResult("faq.txt", "Orders ship within 2 days.", 0.8),
	}
	svc := setupService(t, provider, results)

	resp := svc.Process(context.Background(), &Request{Query: "What products do you sell?"})

	if resp.Answer == "" {
		t.Fatal("empty answer")
	}
	if len(resp.Context) != 2 {
		t.Errorf("context = %d entries, want 2", len(resp.Context))
	}
	if len(resp.Sources) != 2 || resp.Sources[0] != "catalog.txt" {
		t.Errorf("sources = %v", resp.Sources)
	}
}

func TestGeneralQueryLimitsContextToThreeDocs(t *testing.T) {
	provider := &stubProvider{response: "Lots of stuff!"}
	results := []vectordb.SearchResult{
		docResult("a.txt", "one", 0.9),
		docResult("b.txt", "two", 0.8),
		docResult("c.txt", "three", 0.7),
		docResult("d.txt", "four", 0.6),
	}
	svc := setupService(t, provider, results)

	resp := svc.Process(context.Background(), &Request{Query: "tell me about the store"})

	if len(resp.Context) != 3 {
		t.Errorf("context = %d entries, want 3", len(resp.Context))
	}
	if len(resp.Sources) != 4 {
		t.Errorf("sources = %d entries, want 4", len(resp.Sources))
	}
}

func TestProductQueryIncludesCatalogFacts(t *testing.T) {
	provider := &stubProvider{response: "Sure!"}
	svc := setupService(t, provider, nil)

	svc.Process(context.Background(), &Request{Query: "What is the price of a laptop?"})

	req := provider.lastRequest(t)
	userMsg := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(userMsg, "Available Products:") {
		t.Errorf("prompt missing product facts:\n%s", userMsg)
	}
	if !strings.Contains(userMsg, "- Galaxy S24: ") {
		t.Errorf("prompt missing product line:\n%s", userMsg)
	}
}

func TestOrderTrackingWithoutNumberAsksForIt(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "Where is my order?"})

	if resp.Answer != askOrderNumberAnswer {
		t.Errorf("answer = %q", resp.Answer)
	}
	if resp.Context != nil || resp.Sources != nil {
		t.Error("tracking responses must not carry retrieval context")
	}
}

func TestOrderTrackingWithNumberRendersOrder(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "track order #1 please"})

	if !strings.Contains(resp.Answer, "Here's the status of your order #1:") {
		t.Errorf("answer = %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Status: Shipped") {
		t.Errorf("missing delivery status: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Items in your order:") {
		t.Errorf("missing items section: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Quantity: ") {
		t.Errorf("missing item line: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Payment status: Paid") {
		t.Errorf("missing payment status: %q", resp.Answer)
	}
}

func TestOrderTrackingUnknownOrder(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "order status for order 999"})

	if !strings.Contains(resp.Answer, "order #999") || !strings.Contains(resp.Answer, "couldn't find") {
		t.Errorf("answer = %q", resp.Answer)
	}

	// Same outcome for a logged-in customer.
	resp = svc.Process(context.Background(), authedRequest("track order #999"))
	if !strings.Contains(resp.Answer, "order #999") || !strings.Contains(resp.Answer, "couldn't find") {
		t.Errorf("authenticated answer = %q", resp.Answer)
	}
}

func TestOrderWithoutDeliveryOmitsStatusLines(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "track order #2"})

	if strings.Contains(resp.Answer, "Status:") {
		t.Errorf("order without delivery should omit status line: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Payment status: Pending") {
		t.Errorf("missing payment status: %q", resp.Answer)
	}
}

func TestAuthenticatedTrackingListsRecentOrders(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), authedRequest("What's my order status?"))

	if !strings.Contains(resp.Answer, "Here are your recent orders:") {
		t.Errorf("answer = %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Order #") {
		t.Errorf("missing order lines: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "providing the order number") {
		t.Errorf("missing follow-up hint: %q", resp.Answer)
	}
}

func TestAuthenticatedTrackingUsesProcessingForMissingDelivery(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), authedRequest("track my order"))

	if !strings.Contains(resp.Answer, "Status: Processing") {
		t.Errorf("order without delivery row should show Processing: %q", resp.Answer)
	}
}

func TestAuthenticatedTrackingRequestTypeHint(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	// No tracking keywords at all; the transport hint alone must route it.
	req := authedRequest("what's happening with it?")
	req.SetRequestType("order_tracking")

	resp := svc.Process(context.Background(), req)

	if !strings.Contains(resp.Answer, "Here are your recent orders:") {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestStockCheckFindsProduct(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "What's the stock of iPhone?"})

	if !strings.Contains(resp.Answer, "availability information for iPhone 15") {
		t.Errorf("answer = %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Status: "+catalog.StatusInStock) {
		t.Errorf("missing status: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Price: $") {
		t.Errorf("missing price: %q", resp.Answer)
	}
	if !strings.Contains(resp.Answer, "Reward Points: ") {
		t.Errorf("missing reward points: %q", resp.Answer)
	}
}

func TestStockCheckUnknownProduct(t *testing.T) {
	svc := setupService(t, &stubProvider{response: "x"}, nil)

	resp := svc.Process(context.Background(), &Request{Query: "Any stock for quantum hoverboards?"})

	if !strings.Contains(resp.Answer, "couldn't find any product matching 'quantum hoverboards'") {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestAuthenticatedGeneralQueryCarriesPersonalizedNote(t *testing.T) {
	provider := &stubProvider{response: "Sure!"}
	svc := setupService(t, provider, nil)

	svc.Process(context.Background(), authedRequest("What payment methods do you accept for a product?"))

	req := provider.lastRequest(t)
	userMsg := req.Messages[len(req.Messages)-1].Content
	if !strings.Contains(userMsg, "User is authenticated. Personalized information available.") {
		t.Errorf("prompt missing authenticated note:\n%s", userMsg)
	}
}
