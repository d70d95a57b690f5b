package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/remedia-ai/remedia/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env if present; environment variables take precedence
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "remediad",
		Short: "Remedia retrieval-augmented remedy search service",
		Long:  "remediad serves semantic search and question answering over a homeopathic remedy corpus, backed by a pgvector index.",
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.IngestCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	// Default to serve when invoked with no subcommand
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
