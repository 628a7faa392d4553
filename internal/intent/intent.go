// Package intent routes free-text customer queries to the handler that can
// answer them: order tracking, stock checks, or the general RAG pipeline.
package intent

import "strings"

// Intent is the classified purpose of a customer query.
type Intent string

const (
	OrderTracking Intent = "order_tracking"
	StockCheck    Intent = "stock_check"
	General       Intent = "general"
)

// HintOrderTracking is the metadata request_type value that forces the
// order-tracking intent regardless of query text.
const HintOrderTracking = "order_tracking"

// rule pairs an intent with the substrings that trigger it. Rules are
// evaluated in order and the first match wins, so the slice ordering is
// the priority order.
type rule struct {
	intent   Intent
	keywords []string
}

var rules = []rule{
	{
		intent: OrderTracking,
		keywords: []string{
			"track my order", "order status", "where is my order",
			"shipping status", "delivery status", "order #", "order number",
			"track order", "order tracking",
		},
	},
	{
		intent: StockCheck,
		keywords: []string{
			"in stock", "available", "stock", "inventory",
			"when will", "back in stock", "availability",
		},
	},
}

// Classify returns the intent for a query. An explicit hint of
// HintOrderTracking short-circuits keyword matching. Matching is
// case-insensitive substring containment; queries matching no rule are
// General. Classify is pure and always returns exactly one intent.
func Classify(query string, hint string) Intent {
	if hint == HintOrderTracking {
		return OrderTracking
	}

	lowered := strings.ToLower(query)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.intent
			}
		}
	}
	return General
}
