// Package mcp exposes the HR assistant over the Model Context Protocol so
// agent clients can call employee search and chat as tools.
package mcp

// SearchEmployeesInput defines the input parameters for the search_employees tool.
type SearchEmployeesInput struct {
	// Query is the semantic search query.
	Query string `json:"query" jsonschema:"required,description=Keywords describing the employees to find (skills, experience, projects, availability)"`
	// TopK is the maximum number of employees to return.
	TopK int `json:"top_k,omitempty" jsonschema:"minimum=1,maximum=20,default=5,description=Maximum number of employees to return"`
}

// EmployeeResult is a single employee match.
type EmployeeResult struct {
	Name            string `json:"name"`
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years"`
	PastProjects    string `json:"past_projects"`
	Availability    string `json:"availability"`
}

// SearchEmployeesOutput contains the search results.
type SearchEmployeesOutput struct {
	// Employees is the list of matching profiles.
	Employees []EmployeeResult `json:"employees"`
	// Message provides informational context (e.g., "No matching employees found").
	Message string `json:"message,omitempty"`
}

// AskHRInput defines the input parameters for the ask_hr tool.
type AskHRInput struct {
	// Query is the natural-language question about the roster.
	Query string `json:"query" jsonschema:"required,description=A natural-language question about employees (e.g. who knows Python and is available)"`
}

// AskHROutput contains the generated answer.
type AskHROutput struct {
	// Answer is the assistant's response grounded in retrieved profiles.
	Answer string `json:"answer"`
}
