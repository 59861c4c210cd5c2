package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/josephgoksu/langgpt-assistant/internal/config"
	"github.com/josephgoksu/langgpt-assistant/internal/langgpt"
	"github.com/josephgoksu/langgpt-assistant/internal/logger"
	"github.com/josephgoksu/langgpt-assistant/internal/mcp"
	"github.com/josephgoksu/langgpt-assistant/prompts"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPOverHTTP(t *testing.T) {
	svc := langgpt.NewService(prompts.MustDefault(), langgpt.WithLogger(logger.Discard()))
	srv := New(config.Default().Server, svc, logger.Discard(),
		WithClock(func() time.Time { return fixedTime }),
		WithMCP(mcp.NewServer(svc, "test", logger.Discard()).HTTPHandler()),
	)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/health", "")
	assert.JSONEq(t,
		`{"success":true,"status":"healthy","mcpConnected":true,"timestamp":"2025-03-01T12:00:00Z"}`,
		rec.Body.String())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, mcpsdk.NewStreamableClientTransport(ts.URL+"/mcp", nil))
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      mcp.ToolRoles,
		Arguments: map[string]any{"category": "writing"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "- **Category:** writing")
}

func TestMCPNotMountedByDefault(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv.Handler(), http.MethodPost, "/mcp", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatusRecorderFlush(t *testing.T) {
	w := httptest.NewRecorder()
	rec := record(w)
	var f http.Flusher = rec
	f.Flush()
	assert.True(t, w.Flushed)
}
