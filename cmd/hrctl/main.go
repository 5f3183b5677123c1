// Package main provides the hrctl CLI for managing the employee index.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bull/hr-assistant/internal/embedding"
	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/indexer"
	"github.com/bull/hr-assistant/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "hrctl",
	Short: "HR assistant employee index management tool",
	Long:  "CLI tool for seeding employee datasets and managing the employee index in Qdrant",
}

var (
	seedCount  int
	seedSeed   int64
	seedOutput string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a fake employee dataset CSV",
	Long: `Generates a deterministic fake employee dataset.

The same --seed always produces the same roster, so test environments can be
rebuilt reproducibly.`,
	RunE: runSeed,
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <dataset.csv>",
	Short: "Index an employee dataset into Qdrant",
	Long: `Loads an employee dataset CSV, embeds every record and upserts the
documents into Qdrant. Document IDs are derived from employee names, so
re-running ingest on the same dataset updates in place without duplicating.

Environment variables:
  QDRANT_HOST     Qdrant hostname (default: localhost)
  QDRANT_PORT     Qdrant gRPC port (default: 6334)
  OPENAI_API_KEY  OpenAI API key for embeddings (required)
  OPENAI_BASE_URL Optional OpenAI-compatible embedding endpoint`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop and recreate the employee collection",
	RunE:  runClear,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 100, "number of employees to generate")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 42, "random seed for reproducible datasets")
	seedCmd.Flags().StringVarP(&seedOutput, "output", "o", "employee_dataset.csv", "output CSV path")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(clearCmd)
}

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	records := employee.Generate(seedCount, seedSeed)
	if err := employee.SaveCSV(seedOutput, records); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	fmt.Printf("Wrote %d employees to %s\n", len(records), seedOutput)
	return nil
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()

	records, err := employee.LoadCSV(args[0])
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	fmt.Printf("Loaded %d employees from %s\n", len(records), args[0])

	store, err := connectStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureCollection(ctx); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}

	embeddingClient, err := embedding.NewClient()
	if err != nil {
		return fmt.Errorf("create embedding client: %w", err)
	}
	embedder := embedding.NewEmbedder(embeddingClient, 0) // Use default batch size

	pipeline := indexer.NewPipeline(embedder, store, slog.Default())
	result, err := pipeline.IngestAll(ctx, records)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Println()
	fmt.Println("Ingestion complete!")
	fmt.Printf("  Records: %d/%d\n", result.Indexed, result.TotalRecords)
	fmt.Printf("  Duration: %s\n", result.Duration.Round(time.Millisecond))

	if len(result.Failed) > 0 {
		fmt.Println()
		fmt.Println("Skipped records:")
		for _, failed := range result.Failed {
			fmt.Printf("  - %q: %s\n", failed.Name, failed.Reason)
		}
	}

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count documents: %w", err)
	}
	fmt.Printf("  Index now holds %d documents\n", count)

	fmt.Println()
	fmt.Printf("Total time: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := connectStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ClearCollection(ctx); err != nil {
		return fmt.Errorf("clear collection: %w", err)
	}
	fmt.Println("Collection cleared")
	return nil
}

func connectStore() (*storage.QdrantStore, error) {
	host := getEnv("QDRANT_HOST", "localhost")
	port := getEnvInt("QDRANT_PORT", 6334)

	fmt.Printf("Connecting to Qdrant at %s:%d...\n", host, port)
	store, err := storage.NewQdrantStore(host, port)
	if err != nil {
		return nil, fmt.Errorf("connect to Qdrant: %w", err)
	}
	return store, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}
