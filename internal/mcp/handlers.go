package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/bull/hr-assistant/internal/rag"
)

// makeSearchHandler creates the search_employees tool handler. It runs the
// direct-search path only; the language model is never involved.
func makeSearchHandler(assistant Assistant) func(
	context.Context, *mcp.CallToolRequest, SearchEmployeesInput,
) (*mcp.CallToolResult, SearchEmployeesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchEmployeesInput) (
		*mcp.CallToolResult, SearchEmployeesOutput, error,
	) {
		topK := input.TopK
		if topK <= 0 {
			topK = 5
		}

		records, err := assistant.Search(ctx, input.Query, topK)
		if err != nil {
			if errors.Is(err, rag.ErrEmptyQuery) || errors.Is(err, rag.ErrInvalidTopK) {
				return nil, SearchEmployeesOutput{}, fmt.Errorf("invalid input: %w", err)
			}
			return nil, SearchEmployeesOutput{}, fmt.Errorf("search failed: %w", err)
		}

		results := make([]EmployeeResult, 0, len(records))
		for _, rec := range records {
			results = append(results, EmployeeResult{
				Name:            rec.Name,
				Skills:          rec.Skills,
				ExperienceYears: rec.ExperienceYears,
				PastProjects:    rec.PastProjects,
				Availability:    rec.Availability,
			})
		}

		if len(results) == 0 {
			return nil, SearchEmployeesOutput{
				Employees: []EmployeeResult{},
				Message:   "No matching employees found. Try broader search terms.",
			}, nil
		}

		return nil, SearchEmployeesOutput{Employees: results}, nil
	}
}

// makeAskHandler creates the ask_hr tool handler.
func makeAskHandler(assistant Assistant) func(
	context.Context, *mcp.CallToolRequest, AskHRInput,
) (*mcp.CallToolResult, AskHROutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskHRInput) (
		*mcp.CallToolResult, AskHROutput, error,
	) {
		answer, err := assistant.Answer(ctx, input.Query)
		if err != nil {
			if errors.Is(err, rag.ErrEmptyQuery) {
				return nil, AskHROutput{}, fmt.Errorf("invalid input: %w", err)
			}
			if errors.Is(err, rag.ErrGenerationUnavailable) {
				return nil, AskHROutput{}, fmt.Errorf("the language model is unavailable; use search_employees instead")
			}
			return nil, AskHROutput{}, fmt.Errorf("answer failed: %w", err)
		}

		return nil, AskHROutput{Answer: answer}, nil
	}
}
