package documents

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/techverse/aiverse/internal/db"
)

// Store persists the document registry.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a registry record, assigning an id if none is set.
func (s *Store) Create(ctx context.Context, info Info) (*Info, error) {
	if info.ID == "" {
		info.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	info.CreatedAt = now
	info.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, name, description, document_type, file_path, chunk_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Name, info.Description, info.DocumentType, info.FilePath, info.ChunkCount, info.CreatedAt, info.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting document: %w", err)
	}
	return &info, nil
}

// GetByID returns a document record, or (nil, nil) when it does not exist.
func (s *Store) GetByID(ctx context.Context, id string) (*Info, error) {
	var info Info
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, document_type, file_path, chunk_count, created_at, updated_at
		 FROM documents WHERE id = ?`, id,
	).Scan(&info.ID, &info.Name, &info.Description, &info.DocumentType, &info.FilePath, &info.ChunkCount, &info.CreatedAt, &info.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return &info, nil
}

// List returns all documents, newest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, document_type, file_path, chunk_count, created_at, updated_at
		 FROM documents ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []Info
	for rows.Next() {
		var info Info
		if err := rows.Scan(&info.ID, &info.Name, &info.Description, &info.DocumentType, &info.FilePath, &info.ChunkCount, &info.CreatedAt, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, info)
	}
	return docs, rows.Err()
}

// Delete removes a document record.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	return err
}
