package vectordb

import (
	"fmt"
	"strings"
)

// RelevantContext renders search results as a single context string,
// dropping results scoring below minRelevance. When every result scores
// low the full list is used anyway, so a weak match still beats silence.
// Returns "" when there are no results at all.
func RelevantContext(results []SearchResult, minRelevance float32) string {
	if len(results) == 0 {
		return ""
	}

	filtered := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if r.Relevance > minRelevance {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		filtered = results
	}

	parts := make([]string, 0, len(filtered))
	for i, r := range filtered {
		source := r.Document.Metadata.Source
		if source == "" {
			source = fmt.Sprintf("Document %d", i+1)
		}
		parts = append(parts, fmt.Sprintf("[%s]:\n%s\n", source, r.Document.Content))
	}

	return strings.Join(parts, "\n")
}
