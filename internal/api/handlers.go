package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bull/hr-assistant/internal/employee"
	"github.com/bull/hr-assistant/internal/rag"
)

const (
	defaultSearchTopK = 5
	maxSearchTopK     = 20
)

// Assistant is the slice of the orchestrator the handlers need.
type Assistant interface {
	Answer(ctx context.Context, query string) (string, error)
	Search(ctx context.Context, query string, topK int) ([]employee.Record, error)
}

// HealthChecker reports vector index connectivity.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// NewChatHandler creates the POST /chat handler. Validation errors map to
// 400, an unavailable generation service to 503, generation failures to 502,
// retrieval failures and anything unclassified to 500 with a generic detail.
func NewChatHandler(assistant Assistant, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "request body must be JSON with a \"query\" field")
			return
		}

		answer, err := assistant.Answer(r.Context(), req.Query)
		if err != nil {
			writeChatError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, ChatResponse{Response: answer})
	}
}

// writeChatError maps the rag error taxonomy onto HTTP statuses.
func writeChatError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var retrievalErr *rag.RetrievalError
	var generationErr *rag.GenerationError

	switch {
	case errors.Is(err, rag.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, "query must not be blank")
	case errors.Is(err, rag.ErrGenerationUnavailable):
		writeError(w, http.StatusServiceUnavailable,
			"The assistant's language model is unavailable. Employee search still works at /employees/search.")
	case errors.As(err, &generationErr):
		logger.Error("generation failed", "error", err)
		writeError(w, http.StatusBadGateway,
			"Employee search worked, but answer generation failed. Please try again.")
	case errors.As(err, &retrievalErr):
		logger.Error("retrieval failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Employee search failed. Please try again.")
	default:
		logger.Error("unexpected chat error", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred while processing your query.")
	}
}

// NewSearchHandler creates the GET /employees/search handler. An empty match
// set is a 200 with an empty array, never an error.
func NewSearchHandler(assistant Assistant, logger *slog.Logger) http.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		query := r.URL.Query().Get("query")

		topK := defaultSearchTopK
		if raw := r.URL.Query().Get("top_k"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "top_k must be an integer")
				return
			}
			topK = parsed
		}
		if topK > maxSearchTopK {
			topK = maxSearchTopK
		}

		records, err := assistant.Search(r.Context(), query, topK)
		if err != nil {
			switch {
			case errors.Is(err, rag.ErrEmptyQuery):
				writeError(w, http.StatusBadRequest, "query must not be blank")
			case errors.Is(err, rag.ErrInvalidTopK):
				writeError(w, http.StatusBadRequest, "top_k must be at least 1")
			default:
				logger.Error("employee search failed", "error", err)
				writeError(w, http.StatusInternalServerError, "Employee search failed. Please try again.")
			}
			return
		}

		if records == nil {
			records = []employee.Record{} // Empty array, not null, in JSON
		}
		writeJSON(w, http.StatusOK, SearchResponse{Employees: records})
	}
}

// NewHealthHandler creates the GET /health handler. Qdrant connectivity is
// probed per request with a short timeout; generator availability reflects
// the startup health check.
func NewHealthHandler(store HealthChecker, generationAvailable bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		response := HealthResponse{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Generator: "unavailable",
		}
		if generationAvailable {
			response.Generator = "available"
		}

		if err := store.Health(ctx); err != nil {
			response.Status = "unhealthy"
			response.Qdrant = "disconnected"
			writeJSON(w, http.StatusServiceUnavailable, response)
			return
		}

		response.Status = "healthy"
		response.Qdrant = "connected"
		writeJSON(w, http.StatusOK, response)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}
