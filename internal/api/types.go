// Package api serves the HTTP contract of the HR assistant: chat, employee
// search and health.
package api

import "github.com/bull/hr-assistant/internal/employee"

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// SearchResponse is the body of GET /employees/search.
type SearchResponse struct {
	Employees []employee.Record `json:"employees"`
}

// ErrorResponse is the error body of every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Qdrant    string `json:"qdrant"`
	Generator string `json:"generator"`
	Timestamp string `json:"timestamp"`
}
