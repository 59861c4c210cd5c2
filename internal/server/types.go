package server

// APIResponse is the envelope of every /api reply.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OperationResult pairs a core response with the markdown the MCP tools return
// for it, so the browser UI can show either.
type OperationResult struct {
	Response any    `json:"response"`
	Text     string `json:"text"`
}

// TemplateInfo describes one predefined role for /api/templates.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// HealthResponse is the reply of /api/health.
type HealthResponse struct {
	Success      bool   `json:"success"`
	Status       string `json:"status"`
	MCPConnected bool   `json:"mcpConnected"`
	Timestamp    string `json:"timestamp"`
}
