// Package mcp exposes the langgpt service as an MCP server: four tools, three
// prompt templates and one resource per predefined role.
package mcp

// Tool names.
const (
	ToolGenerate = "generate_langgpt_prompt"
	ToolAnalyze  = "analyze_prompt"
	ToolOptimize = "optimize_prompt"
	ToolRoles    = "get_predefined_roles"
)

// ServerName is the implementation name reported during initialization.
const ServerName = "langgpt-prompt-assistant"

// RoleResourcePrefix prefixes the URI of every role resource.
const RoleResourcePrefix = "langgpt://roles/"

// RolesParams defines the parameters for the get_predefined_roles tool.
type RolesParams struct {
	// Category filters by role group: programming, writing, analysis or research.
	Category string `json:"category,omitempty" jsonschema:"Filter by category (programming, writing, analysis, research)"`
}
