// Package mcpserver exposes the section renderer as MCP tools over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"capsection/internal/config"
	"capsection/internal/manufacturing"
	"capsection/internal/preview"
	"capsection/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Output formats accepted by render_section.
const (
	FormatHTML = "html"
	FormatPage = "page"
	FormatText = "text"
)

// Source provides the configuration used for each tool call.
type Source interface {
	Config() config.CapsectionConfig
}

// Server wraps an MCP server with the capsection tools registered.
type Server struct {
	source   Source
	renderer *manufacturing.Renderer
	mcp      *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithRenderer replaces the default renderer.
func WithRenderer(r *manufacturing.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// New creates the MCP server and registers its tools.
func New(source Source, version string, opts ...Option) *Server {
	s := &Server{source: source}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = manufacturing.NewRenderer()
	}

	s.mcp = server.NewMCPServer(
		"capsection",
		version,
		server.WithToolCapabilities(true),
	)
	s.mcp.AddTool(renderSectionTool(), s.handleRenderSection)
	s.mcp.AddTool(listCapabilitiesTool(), s.handleListCapabilities)
	return s
}

// Tools returns the tool definitions registered by New.
func Tools() []mcp.Tool {
	return []mcp.Tool{renderSectionTool(), listCapabilitiesTool()}
}

// ServeStdio serves MCP over stdin/stdout until the input closes or the
// process receives SIGTERM.
func (s *Server) ServeStdio() error {
	logging.Info("MCP", "Serving capsection tools over stdio")
	return server.ServeStdio(s.mcp)
}

func renderSectionTool() mcp.Tool {
	return mcp.NewTool("render_section",
		mcp.WithDescription("Render the manufacturing capabilities section"),
		mcp.WithString("format",
			mcp.Description("Output format: html (section fragment), page (full document) or text (terminal layout)"),
			mcp.Enum(FormatHTML, FormatPage, FormatText),
		),
		mcp.WithString("company_name",
			mcp.Description("Company name used in references; overrides the configured one"),
		),
	)
}

func listCapabilitiesTool() mcp.Tool {
	return mcp.NewTool("list_capabilities",
		mcp.WithDescription("List the configured capabilities with their derived references as JSON"),
	)
}

// props returns the configured props with optional per-call overrides.
func (s *Server) props(request mcp.CallToolRequest) (manufacturing.Props, manufacturing.PageOptions) {
	cfg := s.source.Config()
	p := cfg.Section.Props()
	if company, ok := request.GetArguments()["company_name"].(string); ok && company != "" {
		p.CompanyName = company
	}
	return p, cfg.Page.PageOptions()
}

func (s *Server) handleRenderSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := FormatHTML
	if f, ok := request.GetArguments()["format"].(string); ok && f != "" {
		format = f
	}

	p, pageOpts := s.props(request)
	v := s.renderer.View(p)

	var buf bytes.Buffer
	switch format {
	case FormatHTML:
		if err := manufacturing.SectionFromView(v).Render(&buf); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to render section: %v", err)), nil
		}
	case FormatPage:
		if err := manufacturing.PageFromView(v, pageOpts).Render(&buf); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to render page: %v", err)), nil
		}
	case FormatText:
		buf.WriteString(preview.Render(v, preview.Options{Focus: -1}))
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown format %q (want html, page or text)", format)), nil
	}

	logging.Debug("MCP", "render_section format=%s: %s", format, preview.Summary(v))
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) handleListCapabilities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, _ := s.props(request)
	doc, err := s.renderer.View(p).Document()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build capabilities: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format capabilities: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
