package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/intent"
)

const (
	apologyAnswer = "I apologize, but I encountered an error while processing your request. Please try again."

	guestTrackingAnswer = "To track your specific order, please log in to your account. As a guest, I can only provide general information about our shipping and delivery processes."

	askOrderNumberAnswer = "I'd be happy to help you track your order. Could you please provide your order number? For personalized tracking, you can also log in to your account."

	askProductNameAnswer = "I'd be happy to check stock availability. Which product are you interested in?"

	noRecentOrdersAnswer = "I don't see any recent orders in your account. If you've placed an order, please provide the order number so I can check its status."
)

const (
	maxContextDocs   = 3
	maxRecentOrders  = 3
	recentOrderFetch = 5
)

// Service is the chat orchestrator. It routes each message to an order
// tracking, stock check, or retrieval-augmented answer path and always
// produces a response: internal failures degrade to an apology.
type Service struct {
	engine  *Engine
	catalog *catalog.Store
}

func NewService(engine *Engine, store *catalog.Store) *Service {
	return &Service{engine: engine, catalog: store}
}

// Process answers one chat request.
func (s *Service) Process(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat processing panic: %v", r)
			resp = &Response{Answer: apologyAnswer}
		}
	}()

	if req.Authenticated() {
		return s.processAuthenticated(ctx, req)
	}

	switch intent.Classify(req.Query, req.RequestType()) {
	case intent.OrderTracking:
		return s.handleOrderTracking(ctx, req.Query)
	case intent.StockCheck:
		return s.handleStockCheck(ctx, req.Query)
	}

	return s.answerWithRetrieval(ctx, req, false)
}

// processAuthenticated handles messages from logged-in users. A
// request_type hint from the transport short-circuits intent detection.
func (s *Service) processAuthenticated(ctx context.Context, req *Request) *Response {
	switch intent.Classify(req.Query, req.RequestType()) {
	case intent.OrderTracking:
		return s.handleAuthenticatedOrderTracking(ctx, req)
	case intent.StockCheck:
		return s.handleStockCheck(ctx, req.Query)
	}

	return s.answerWithRetrieval(ctx, req, true)
}

func (s *Service) answerWithRetrieval(ctx context.Context, req *Request, authenticated bool) *Response {
	dbInfo := buildDBInfo(ctx, s.catalog, req.Query, authenticated)

	answer, docs := s.engine.ProcessQuery(ctx, req.Query, req.History, dbInfo)
	answer = normalizeAnswer(answer)

	var contents []string
	for i, d := range docs {
		if i >= maxContextDocs {
			break
		}
		contents = append(contents, d.Document.Content)
	}
	var sources []string
	for _, d := range docs {
		sources = append(sources, d.Document.Metadata.Source)
	}

	return &Response{Answer: answer, Context: contents, Sources: sources}
}

func (s *Service) handleOrderTracking(ctx context.Context, query string) *Response {
	orderID, ok := intent.ExtractOrderID(query)
	if !ok {
		return &Response{Answer: askOrderNumberAnswer}
	}
	return s.respondWithOrder(ctx, orderID)
}

func (s *Service) handleAuthenticatedOrderTracking(ctx context.Context, req *Request) *Response {
	orderID, ok := intent.ExtractOrderID(req.Query)
	if !ok {
		return s.respondWithRecentOrders(ctx, req.UserID())
	}
	return s.respondWithOrder(ctx, orderID)
}

func (s *Service) respondWithRecentOrders(ctx context.Context, userID int) *Response {
	orders, err := s.catalog.GetRecentOrdersForUser(ctx, userID, recentOrderFetch)
	if err != nil {
		log.Printf("recent order lookup for user %d failed: %v", userID, err)
		orders = nil
	}
	if len(orders) == 0 {
		return &Response{Answer: noRecentOrdersAnswer}
	}

	parts := []string{"Here are your recent orders:"}
	for i, o := range orders {
		if i >= maxRecentOrders {
			break
		}
		status := "Processing"
		if o.Status != nil {
			status = *o.Status
		}
		parts = append(parts, fmt.Sprintf("Order #%d - %s - Status: %s", o.ID, o.Date, status))
	}
	parts = append(parts, "\nYou can ask about a specific order by providing the order number.")

	return &Response{Answer: strings.Join(parts, "\n")}
}

func (s *Service) respondWithOrder(ctx context.Context, orderID int) *Response {
	order, err := s.catalog.GetOrderInfo(ctx, orderID)
	if err != nil {
		log.Printf("order %d lookup failed: %v", orderID, err)
		order = nil
	}
	if order == nil {
		return &Response{Answer: fmt.Sprintf("I couldn't find any information for order #%d. Please check if the order number is correct.", orderID)}
	}

	parts := []string{fmt.Sprintf("Here's the status of your order #%d:", orderID)}

	if order.Status != nil {
		parts = append(parts, fmt.Sprintf("Status: %s", *order.Status))
	}
	if order.DeliveryDate != nil {
		parts = append(parts, fmt.Sprintf("Expected delivery: %s", *order.DeliveryDate))
	}
	if len(order.Items) > 0 {
		parts = append(parts, "\nItems in your order:")
		for _, item := range order.Items {
			parts = append(parts, fmt.Sprintf("- %s (Quantity: %d, Price: $%.2f)", item.Name, item.Quantity, item.Price))
		}
	}
	if order.PaymentStatus != nil {
		parts = append(parts, fmt.Sprintf("\nPayment status: %s", *order.PaymentStatus))
	}

	return &Response{Answer: strings.Join(parts, "\n")}
}

func (s *Service) handleStockCheck(ctx context.Context, query string) *Response {
	name, ok := intent.ExtractProductName(query)
	if !ok {
		return &Response{Answer: askProductNameAnswer}
	}

	product, err := s.catalog.CheckStock(ctx, 0, name)
	if err != nil {
		log.Printf("stock lookup for %q failed: %v", name, err)
		product = nil
	}
	if product == nil {
		return &Response{Answer: fmt.Sprintf("I couldn't find any product matching '%s'. Could you please check the spelling or try a different product?", name)}
	}

	parts := []string{fmt.Sprintf("Here's the availability information for %s:", product.Name)}
	parts = append(parts, fmt.Sprintf("\nStatus: %s", product.StockStatus))
	parts = append(parts, fmt.Sprintf("Price: $%.2f", product.Price))
	if product.CategoryName != "" {
		parts = append(parts, fmt.Sprintf("Category: %s", product.CategoryName))
	}
	if product.RewardPoints > 0 {
		parts = append(parts, fmt.Sprintf("Reward Points: %d", product.RewardPoints))
	}

	return &Response{Answer: strings.Join(parts, "\n")}
}
