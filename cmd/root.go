package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "aiverse",
	Short: "RAG-powered shopping assistant backend for TechVerse",
	Long: `AiVerse is the TechVerse store's chat assistant backend. It answers
customer questions from an indexed knowledge base, checks live stock
and order status against the store database, and serves both anonymous
and authenticated conversations over a REST and WebSocket API.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".aiverse.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
