package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"capsection/internal/config"
	"capsection/internal/manufacturing"
	"capsection/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.InitForCLI(logging.LevelError, io.Discard)
	os.Exit(m.Run())
}

func newTestServer(cfg config.CapsectionConfig) *Server {
	fixed := time.Date(2031, time.March, 4, 12, 0, 0, 0, time.UTC)
	return New(config.NewStatic(cfg), "test",
		WithRenderer(manufacturing.NewRenderer(manufacturing.WithClock(func() time.Time { return fixed }))),
	)
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestRenderSection_Formats(t *testing.T) {
	s := newTestServer(config.GetDefaultConfig())

	tests := []struct {
		name   string
		args   map[string]any
		prefix string
		want   string
	}{
		{"default html", nil, "<section", "SYS.VER.2031.3"},
		{"html", map[string]any{"format": "html"}, "<section", "DOC.CQS.CAP.2031"},
		{"page", map[string]any{"format": "page"}, "<!doctype html>", "<title>CQS | Manufacturing Capabilities</title>"},
		{"text", map[string]any{"format": "text"}, "", "ID: CAP-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.handleRenderSection(context.Background(), call("render_section", tt.args))
			require.NoError(t, err)
			assert.False(t, result.IsError)

			text := resultText(t, result)
			assert.True(t, strings.HasPrefix(text, tt.prefix))
			assert.Contains(t, text, tt.want)
		})
	}
}

func TestRenderSection_CompanyOverride(t *testing.T) {
	s := newTestServer(config.GetDefaultConfig())

	result, err := s.handleRenderSection(context.Background(), call("render_section", map[string]any{
		"format":       "text",
		"company_name": "ACME",
	}))
	require.NoError(t, err)
	text := resultText(t, result)
	assert.Contains(t, text, "DOC.ACME.CAP.2031")
	assert.Contains(t, text, "CAP-01/ACME")
}

func TestRenderSection_UnknownFormat(t *testing.T) {
	s := newTestServer(config.GetDefaultConfig())

	result, err := s.handleRenderSection(context.Background(), call("render_section", map[string]any{"format": "pdf"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), `Unknown format "pdf"`)
}

func TestListCapabilities(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Section.Capabilities = []manufacturing.Capability{
		{ID: "CAP-02", Title: "Machining", Features: []string{"a", "b", "c", "d", "e"}, Precision: "±0.01mm"},
	}
	s := newTestServer(cfg)

	result, err := s.handleListCapabilities(context.Background(), call("list_capabilities", nil))
	require.NoError(t, err)

	var doc manufacturing.Document
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &doc))
	require.Len(t, doc.Cards, 1)
	card := doc.Cards[0]
	assert.Equal(t, "wrench", card.Icon)
	assert.Equal(t, "SYS.VER.2031.1", card.Version)
	assert.Equal(t, []string{"target", "cog", "cpu", "alert-circle", "target"}, card.FeatureIcons)
	assert.Equal(t, "±0.01mm", card.Precision)
}

func TestTools(t *testing.T) {
	tools := Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "render_section", tools[0].Name)
	assert.Contains(t, tools[0].InputSchema.Properties, "format")
	assert.Contains(t, tools[0].InputSchema.Properties, "company_name")
	assert.Equal(t, "list_capabilities", tools[1].Name)
}
