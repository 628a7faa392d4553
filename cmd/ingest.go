package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/db"
	"github.com/techverse/aiverse/internal/documents"
	"github.com/techverse/aiverse/internal/progress"
	"github.com/techverse/aiverse/internal/vectordb"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Add documents to the knowledge base from the command line",
	Long: `Parses the given files, indexes their content into the vector store, and
records them in the document registry. The document type is inferred from
the file extension (.pdf, .csv, .json, anything else is treated as text).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}
		ctx := context.Background()
		if err := store.Load(ctx, cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", cfg.DataDir, err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "aiverse.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		svc := documents.NewService(
			documents.NewStore(database), store, catalog.NewStore(database),
			cfg.DataDir, cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap,
		)

		reporter := progress.NewReporter()
		reporter.Start(len(args))

		var failed int
		for i, path := range args {
			reporter.Update(i, filepath.Base(path))

			content, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
				failed++
				continue
			}

			name := filepath.Base(path)
			if _, err := svc.Add(ctx, content, name, "", docTypeForFile(path)); err != nil {
				fmt.Fprintf(os.Stderr, "Error ingesting %s: %v\n", path, err)
				failed++
				continue
			}
			reporter.Update(i+1, name)
		}
		reporter.Finish()

		fmt.Fprintf(os.Stderr, "Ingested %d of %d files (%d chunks indexed)\n", len(args)-failed, len(args), store.Count())
		if failed > 0 {
			return fmt.Errorf("%d files failed to ingest", failed)
		}
		return nil
	},
}

func docTypeForFile(path string) documents.Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return documents.TypePDF
	case ".csv":
		return documents.TypeCSV
	case ".json":
		return documents.TypeJSON
	}
	return documents.TypeText
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
