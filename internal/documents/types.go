// Package documents manages the knowledge base: uploaded files are parsed,
// chunked, indexed into the vector store, and tracked in the registry so
// they can be listed and removed later.
package documents

import "time"

// Type identifies the format of an uploaded document.
type Type string

const (
	TypePDF  Type = "pdf"
	TypeCSV  Type = "csv"
	TypeJSON Type = "json"
	TypeText Type = "text"
)

// Valid reports whether t is a supported document type.
func (t Type) Valid() bool {
	switch t {
	case TypePDF, TypeCSV, TypeJSON, TypeText:
		return true
	}
	return false
}

// Info is the registry record for one uploaded document.
type Info struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DocumentType Type      `json:"document_type"`
	FilePath     string    `json:"file_path,omitempty"`
	ChunkCount   int       `json:"chunk_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
