// Package vectordb is the embedding-based similarity index over ingested
// knowledge-base documents.
package vectordb

import "context"

// VectorStore stores document chunks and retrieves the nearest neighbors
// of a query, ranked by descending relevance.
type VectorStore interface {
	// AddDocuments adds or updates chunks in the store.
	AddDocuments(ctx context.Context, docs []Document) error

	// Search returns up to k chunks most similar to the query text.
	Search(ctx context.Context, query string, k int) ([]SearchResult, error)

	// DeleteByDocumentID removes every chunk belonging to an uploaded document.
	DeleteByDocumentID(ctx context.Context, documentID string) error

	// Persist saves the store's data to the given directory.
	Persist(ctx context.Context, dir string) error

	// Load restores the store's data from the given directory.
	Load(ctx context.Context, dir string) error

	// Count returns the total number of chunks in the store.
	Count() int
}
