package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/techverse/aiverse/internal/catalog"
	"github.com/techverse/aiverse/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo catalog data into the store database",
	Long:  `Populates the database with a small demo catalog: categories, products, a customer, and sample orders. Intended for development and evaluation setups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.DataDir, "aiverse.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		if err := catalog.Seed(context.Background(), database); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}

		fmt.Printf("Seeded demo catalog into %s\n", dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
