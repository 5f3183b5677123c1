// Package main provides the HTTP server entry point for the HR assistant.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bull/hr-assistant/internal/api"
	"github.com/bull/hr-assistant/internal/embedding"
	"github.com/bull/hr-assistant/internal/generation"
	mcpserver "github.com/bull/hr-assistant/internal/mcp"
	"github.com/bull/hr-assistant/internal/rag"
	"github.com/bull/hr-assistant/internal/retrieval"
	"github.com/bull/hr-assistant/internal/storage"
)

func main() {
	// Load .env file if present (local development), ignore if missing (production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Create context that cancels on SIGTERM/SIGINT
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	logger := slog.Default()

	// Configuration from environment
	qdrantHost := getEnv("QDRANT_HOST", "localhost")
	qdrantPort := getEnvInt("QDRANT_PORT", 6334)
	ollamaHost := getEnv("OLLAMA_HOST", "")
	ollamaModel := getEnv("OLLAMA_MODEL", generation.DefaultModel)
	genTimeout := time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 60)) * time.Second
	port := getEnv("PORT", "8000")

	// Initialize the vector index; unreachable store is fatal
	store, err := storage.NewQdrantStore(qdrantHost, qdrantPort)
	if err != nil {
		log.Fatalf("failed to connect to Qdrant: %v", err)
	}
	defer store.Close()

	if err := store.EnsureCollection(ctx); err != nil {
		log.Fatalf("failed to ensure collection: %v", err)
	}

	// Empty index is a warning, not a failure: the server starts but search
	// returns nothing until ingestion runs.
	count, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("failed to count indexed employees: %v", err)
	}
	if count == 0 {
		logger.Warn("employee index is empty; run `hrctl ingest` to populate it")
	} else {
		logger.Info("employee index ready", "documents", count)
	}

	// Initialize embedding client
	embeddingClient, err := embedding.NewClient()
	if err != nil {
		log.Fatalf("failed to create embedding client: %v", err)
	}
	embedder := embedding.NewEmbedder(embeddingClient, 0) // Use default batch size

	// Initialize generation client and probe it once. A failed probe disables
	// the chat path but keeps search serving.
	var generator rag.Generator
	genClient, err := generation.NewClient(ollamaHost, ollamaModel, genTimeout)
	if err != nil {
		logger.Error("generation client unavailable, chat disabled", "error", err)
	} else if err := genClient.Health(ctx); err != nil {
		logger.Error("generation health check failed, chat disabled", "model", ollamaModel, "error", err)
	} else {
		logger.Info("generation ready", "model", ollamaModel)
		generator = genClient
	}

	retriever := retrieval.NewRetriever(embedder, store, nil, 0)
	orchestrator := rag.New(retriever, generator, store, logger)

	// REST endpoints per the public contract
	mux := http.NewServeMux()
	mux.HandleFunc("/chat", api.NewChatHandler(orchestrator, logger))
	mux.HandleFunc("/employees/search", api.NewSearchHandler(orchestrator, logger))
	mux.HandleFunc("/health", api.NewHealthHandler(store, generator != nil))

	// MCP endpoint for agent clients
	mcpSrv := mcpserver.NewServer(orchestrator)
	mux.Handle("/mcp", mcpserver.NewHTTPHandler(mcpSrv, nil))

	server := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: api.CORS(mux),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	log.Printf("Starting HR assistant on %s (chat at /chat, search at /employees/search, MCP at /mcp)", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server error: %v", err)
	}
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
