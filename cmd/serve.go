package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/techverse/aiverse/internal/auth"
	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/chat"
	"github.com/techverse/aiverse/internal/db"
	"github.com/techverse/aiverse/internal/documents"
	"github.com/techverse/aiverse/internal/llm"
	"github.com/techverse/aiverse/internal/server"
	"github.com/techverse/aiverse/internal/vectordb"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AiVerse chat backend",
	Long:  `Starts the assistant API server: chat endpoints, order tracking, stock checks, and the knowledge base admin API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}

		store, err := vectordb.NewChromemStore(embedder)
		if err != nil {
			return fmt.Errorf("creating vector store: %w", err)
		}
		if err := store.Load(context.Background(), cfg.DataDir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", cfg.DataDir, err)
		}

		provider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "aiverse.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			DataDir:  cfg.DataDir,
			AllowAll: true,
		}, database, store, embedder, provider)

		registerAllRoutes(srv, cfg.Retrieval.TopK, cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap, cfg.Model)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "aiverse v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Model: %s/%s\n", cfg.Provider, cfg.Model)
		fmt.Fprintf(os.Stderr, "  Chunks indexed: %d\n", store.Count())

		return srv.Start()
	},
}

// registerAllRoutes wires the feature packages onto the server router.
func registerAllRoutes(srv *server.Server, topK, chunkSize, chunkOverlap int, model string) {
	r := srv.Router()
	database := srv.Database()

	catalogStore := catalog.NewStore(database)
	gateway := llm.NewGateway(srv.Provider(), model)
	engine := chat.NewEngine(srv.Store(), gateway, topK)
	chatSvc := chat.NewService(engine, catalogStore)
	chat.RegisterRoutes(r, chatSvc, auth.NewStaticVerifier(nil))

	docStore := documents.NewStore(database)
	docSvc := documents.NewService(docStore, srv.Store(), catalogStore, srv.ServerConfig().DataDir, chunkSize, chunkOverlap)
	documents.RegisterRoutes(r, docSvc)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
