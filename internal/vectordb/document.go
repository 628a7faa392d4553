package vectordb

import "time"

// Document is one indexed chunk of knowledge-base content.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds structured information about a chunk.
type DocumentMetadata struct {
	// Source is the human-readable origin shown to customers,
	// usually the uploaded file name.
	Source string
	// DocumentID is the registry id of the uploaded document this chunk
	// belongs to; chunks are deleted by it when the document is removed.
	DocumentID string
	Description string
	ChunkIndex  int
	AddedAt     time.Time
}

// SearchResult pairs a document with its relevance score, higher is closer.
type SearchResult struct {
	Document  Document
	Relevance float32
}
