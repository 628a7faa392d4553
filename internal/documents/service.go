package documents

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/vectordb"
)

// productKnowledgeID is the fixed registry id for the generated catalog
// document, so a refresh replaces the previous generation.
const productKnowledgeID = "product-knowledge"

// productKnowledgeSource is the source label customers see on catalog facts.
const productKnowledgeSource = "product_database"

// Service ties document ingestion together: parsing, chunking, vector
// indexing, and the registry.
type Service struct {
	store        *Store
	vectors      vectordb.VectorStore
	catalog      *catalog.Store
	dataDir      string
	chunkSize    int
	chunkOverlap int
}

func NewService(store *Store, vectors vectordb.VectorStore, cat *catalog.Store, dataDir string, chunkSize, chunkOverlap int) *Service {
	return &Service{
		store:        store,
		vectors:      vectors,
		catalog:      cat,
		dataDir:      dataDir,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Add parses an uploaded file, indexes its chunks, and records it in the
// registry. The raw upload is kept on disk under the data directory.
func (s *Service) Add(ctx context.Context, content []byte, filename, description string, docType Type) (*Info, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("unsupported document type: %s", docType)
	}

	text, err := Parse(content, filename, docType)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	filePath, err := s.saveFile(content, filename, docType)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	chunks := ChunkText(text, s.chunkSize, s.chunkOverlap)
	if err := s.indexChunks(ctx, id, filename, description, chunks); err != nil {
		return nil, err
	}

	info, err := s.store.Create(ctx, Info{
		ID:           id,
		Name:         filename,
		Description:  description,
		DocumentType: docType,
		FilePath:     filePath,
		ChunkCount:   len(chunks),
	})
	if err != nil {
		// Roll the chunks back so the index does not serve content the
		// registry knows nothing about.
		if derr := s.vectors.DeleteByDocumentID(ctx, id); derr != nil {
			log.Printf("documents: rollback of %s failed: %v", id, derr)
		}
		return nil, err
	}

	s.persist(ctx)
	return info, nil
}

// Get returns one registry record, or (nil, nil) when it does not exist.
func (s *Service) Get(ctx context.Context, id string) (*Info, error) {
	return s.store.GetByID(ctx, id)
}

// List returns all registry records, newest first.
func (s *Service) List(ctx context.Context) ([]Info, error) {
	return s.store.List(ctx)
}

// Delete removes a document from the registry, the index, and disk.
// Returns false when the id is unknown.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	info, err := s.store.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, nil
	}

	if err := s.vectors.DeleteByDocumentID(ctx, id); err != nil {
		return false, fmt.Errorf("removing chunks for %s: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return false, err
	}
	if info.FilePath != "" {
		if err := os.Remove(info.FilePath); err != nil && !os.IsNotExist(err) {
			log.Printf("documents: removing file %s: %v", info.FilePath, err)
		}
	}

	s.persist(ctx)
	return true, nil
}

// RefreshProductKnowledge renders the product catalog as text and reindexes
// it, replacing the previous generation.
func (s *Service) RefreshProductKnowledge(ctx context.Context) (*Info, error) {
	products, err := s.catalog.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading products: %w", err)
	}

	text := renderProductKnowledge(products)

	if err := s.vectors.DeleteByDocumentID(ctx, productKnowledgeID); err != nil {
		return nil, fmt.Errorf("removing previous product knowledge: %w", err)
	}
	if err := s.store.Delete(ctx, productKnowledgeID); err != nil {
		return nil, err
	}

	chunks := ChunkText(text, s.chunkSize, s.chunkOverlap)
	if err := s.indexChunks(ctx, productKnowledgeID, productKnowledgeSource, "Product information from database", chunks); err != nil {
		return nil, err
	}

	info, err := s.store.Create(ctx, Info{
		ID:           productKnowledgeID,
		Name:         productKnowledgeSource,
		Description:  "Product information from database",
		DocumentType: TypeText,
		ChunkCount:   len(chunks),
	})
	if err != nil {
		return nil, err
	}

	s.persist(ctx)
	return info, nil
}

func (s *Service) indexChunks(ctx context.Context, documentID, source, description string, chunks []string) error {
	if len(chunks) == 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]vectordb.Document, 0, len(chunks))
	for i, chunk := range chunks {
		docs = append(docs, vectordb.Document{
			ID:      fmt.Sprintf("%s:%d", documentID, i),
			Content: chunk,
			Metadata: vectordb.DocumentMetadata{
				Source:      source,
				DocumentID:  documentID,
				Description: description,
				ChunkIndex:  i,
				AddedAt:     now,
			},
		})
	}
	return s.vectors.AddDocuments(ctx, docs)
}

// saveFile writes the raw upload under a per-type subdirectory with a
// unique name, mirroring how uploads are laid out on disk.
func (s *Service) saveFile(content []byte, filename string, docType Type) (string, error) {
	dir := filepath.Join(s.dataDir, string(docType))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename)))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("saving upload: %w", err)
	}
	return path, nil
}

func (s *Service) persist(ctx context.Context) {
	if err := s.vectors.Persist(ctx, s.dataDir); err != nil {
		log.Printf("documents: persisting vector store: %v", err)
	}
}

func renderProductKnowledge(products []catalog.Product) string {
	if len(products) == 0 {
		return "No product information available."
	}

	var sb strings.Builder
	sb.WriteString("# Product Information\n\n")
	for _, p := range products {
		fmt.Fprintf(&sb, "## %s\n", p.Name)
		fmt.Fprintf(&sb, "ID: %d\n", p.ID)
		if p.Description != "" {
			fmt.Fprintf(&sb, "Description: %s\n", p.Description)
		}
		fmt.Fprintf(&sb, "Price: $%.2f\n", p.Price)
		fmt.Fprintf(&sb, "Stock: %d units\n", p.StockQty)
		if p.CategoryName != "" {
			fmt.Fprintf(&sb, "Category: %s\n", p.CategoryName)
		}
		if p.RewardPoints > 0 {
			fmt.Fprintf(&sb, "Reward Points: %d\n", p.RewardPoints)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
