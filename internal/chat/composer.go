package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/techverse/aiverse/internal/catalog"
)

// Words that mark a query as product-related and worth a catalog lookup.
var productTriggers = []string{"product", "item", "price", "cost", "buy"}

const maxProductLines = 5

const authenticatedNote = "\nUser is authenticated. Personalized information available."

// buildDBInfo assembles the database facts handed to the LLM alongside the
// retrieved context. Catalog errors are logged and skipped so the chat
// never fails on a database hiccup.
func buildDBInfo(ctx context.Context, store *catalog.Store, query string, authenticated bool) string {
	var parts []string

	lower := strings.ToLower(query)
	for _, word := range productTriggers {
		if !strings.Contains(lower, word) {
			continue
		}
		products, err := store.GetAllProducts(ctx)
		if err != nil {
			log.Printf("product lookup for chat context failed: %v", err)
			break
		}
		if len(products) == 0 {
			break
		}
		parts = append(parts, "Available Products:")
		for i, p := range products {
			if i >= maxProductLines {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: $%.2f, %s", p.Name, p.Price, p.StockStatus))
		}
		break
	}

	if authenticated {
		parts = append(parts, authenticatedNote)
	}

	return strings.Join(parts, "\n")
}
