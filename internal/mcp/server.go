package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/models"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wires a langgpt.Service into an MCP server.
type Server struct {
	svc *langgpt.Service
	log *slog.Logger
	mcp *mcpsdk.Server
}

// NewServer registers every tool, prompt and resource and returns the server.
// Nothing is written to stdout; it belongs to the JSON-RPC stream. One role
// resource is registered per category known at this point.
func NewServer(svc *langgpt.Service, version string, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{svc: svc, log: log}

	impl := &mcpsdk.Implementation{Name: ServerName, Version: version}
	s.mcp = mcpsdk.NewServer(impl, &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, _ *mcpsdk.ServerSession, _ *mcpsdk.InitializedParams) {
			log.InfoContext(ctx, "mcp client initialized")
		},
	})

	s.registerTools()
	s.registerPrompts()
	s.registerResources()
	return s
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcpsdk.Server { return s.mcp }

// HTTPHandler serves the same server over the streamable HTTP transport.
// Every session shares this server's tools, prompts and resources.
func (s *Server) HTTPHandler() http.Handler {
	return mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server { return s.mcp }, nil)
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.InfoContext(ctx, "mcp server starting", "transport", "stdio")
	if err := s.mcp.Run(ctx, mcpsdk.NewStdioTransport()); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	addTool(s, ToolGenerate, "generating prompt",
		"Generate a structured LangGPT-style prompt based on role type, domain, and specific task",
		func(ctx context.Context, req models.GenerationRequest) *mcpsdk.CallToolResultFor[any] {
			resp := s.svc.Generate(ctx, req)
			return textResult(FormatGeneration(resp), !resp.Success)
		})

	addTool(s, ToolAnalyze, "analyzing prompt",
		"Analyze an existing prompt for structure, effectiveness, and improvement opportunities",
		func(ctx context.Context, req models.AnalysisRequest) *mcpsdk.CallToolResultFor[any] {
			resp := s.svc.Analyze(ctx, req)
			return textResult(FormatAnalysis(resp), !resp.Success)
		})

	addTool(s, ToolOptimize, "optimizing prompt",
		"Optimize an existing prompt based on specified goals and constraints",
		func(ctx context.Context, req models.OptimizationRequest) *mcpsdk.CallToolResultFor[any] {
			resp := s.svc.Optimize(ctx, req)
			return textResult(FormatOptimization(resp), !resp.Success)
		})

	addTool(s, ToolRoles, "getting predefined roles",
		"Get a list of available predefined LangGPT roles",
		func(ctx context.Context, params RolesParams) *mcpsdk.CallToolResultFor[any] {
			catalog := s.svc.Catalog()
			if catalog == nil {
				return errorResult("Error getting predefined roles: no catalog loaded")
			}
			return textResult(FormatRoles(catalog.Entries(params.Category)), false)
		})
}

// addTool registers a tool whose arguments are decoded leniently into In and
// checked with models.ValidateStruct. Unknown keys are ignored; bad arguments
// come back as an IsError result naming op.
func addTool[In any](s *Server, name, op, description string, run func(context.Context, In) *mcpsdk.CallToolResultFor[any]) {
	mcpsdk.AddTool(s.mcp, &mcpsdk.Tool{
		Name:        name,
		Description: description,
		InputSchema: inputSchema[In](),
	}, func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[map[string]any]) (*mcpsdk.CallToolResultFor[any], error) {
		var in In
		if err := decodeArguments(params.Arguments, &in); err != nil {
			return errorResult(FormatError(op, err)), nil
		}
		if err := models.ValidateStruct(in); err != nil {
			return errorResult(FormatError(op, err)), nil
		}
		return run(ctx, in), nil
	})
}

func (s *Server) registerPrompts() {
	for _, tmpl := range prompts.Templates() {
		args := make([]*mcpsdk.PromptArgument, 0, len(tmpl.Arguments))
		for _, a := range tmpl.Arguments {
			args = append(args, &mcpsdk.PromptArgument{
				Name:        a.Name,
				Description: a.Description,
				Required:    a.Required,
			})
		}
		s.mcp.AddPrompt(&mcpsdk.Prompt{
			Name:        string(tmpl.Key),
			Description: tmpl.Description,
			Arguments:   args,
		}, promptHandler(tmpl))
	}
}

func promptHandler(tmpl prompts.Template) func(context.Context, *mcpsdk.ServerSession, *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
	return func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.GetPromptParams) (*mcpsdk.GetPromptResult, error) {
		text, err := tmpl.Build(params.Arguments)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", tmpl.Key, err)
		}
		return &mcpsdk.GetPromptResult{
			Description: tmpl.Description,
			Messages: []*mcpsdk.PromptMessage{
				{Role: "user", Content: &mcpsdk.TextContent{Text: text}},
			},
		}, nil
	}
}

func (s *Server) registerResources() {
	catalog := s.svc.Catalog()
	if catalog == nil {
		return
	}

	s.mcp.AddResource(&mcpsdk.Resource{
		URI:         "langgpt://roles",
		Name:        "roles",
		Description: "Predefined LangGPT roles in JSON format",
		MIMEType:    "application/json",
	}, func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
		data, err := json.MarshalIndent(s.svc.Catalog().Entries(""), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal roles: %w", err)
		}
		return resourceResult(params.URI, "application/json", string(data)), nil
	})

	for _, cat := range catalog.Categories() {
		entry, err := catalog.Entry(cat)
		if err != nil {
			continue
		}
		s.mcp.AddResource(&mcpsdk.Resource{
			URI:         RoleResourcePrefix + string(cat),
			Name:        string(cat),
			Description: entry.Summary,
			MIMEType:    "text/markdown",
		}, func(ctx context.Context, _ *mcpsdk.ServerSession, params *mcpsdk.ReadResourceParams) (*mcpsdk.ReadResourceResult, error) {
			s.log.DebugContext(ctx, "role resource read", "category", cat)
			// read through the service so a reloaded catalog is served
			current, err := s.svc.Catalog().Entry(cat)
			if err != nil {
				return nil, err
			}
			return resourceResult(params.URI, "text/markdown", langgpt.Render(current.Role)), nil
		})
	}
}

func resourceResult(uri, mime, text string) *mcpsdk.ReadResourceResult {
	return &mcpsdk.ReadResourceResult{
		Contents: []*mcpsdk.ResourceContents{{URI: uri, MIMEType: mime, Text: text}},
	}
}

func textResult(text string, isError bool) *mcpsdk.CallToolResultFor[any] {
	return &mcpsdk.CallToolResultFor[any]{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		IsError: isError,
	}
}

// errorResult reports a tool failure in the result rather than as a protocol
// error so the calling model can see it and correct its arguments.
func errorResult(text string) *mcpsdk.CallToolResultFor[any] {
	return textResult(text, true)
}
