// Package mcp exposes the text actions and statistics as Model Context
// Protocol tools served over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

var transformToolDef = mcp.NewTool("transform_text",
	mcp.WithDescription("Apply word counter actions to a text in order and return the result with its statistics. "+
		"Actions: setText, toUppercase, toLowercase, clear, collapseWhitespace, copyToClipboard, toggleTheme. "+
		"Unrecognized actions are ignored."),
	mcp.WithString("text", mcp.Required(), mcp.Description("The text to transform")),
	mcp.WithArray("actions", mcp.Required(), mcp.WithStringItems(),
		mcp.Description("Action names applied left to right, e.g. [\"collapseWhitespace\", \"toUppercase\"]")),
	mcp.WithString("payload", mcp.Description("Replacement text used by setText actions")),
)

var statsToolDef = mcp.NewTool("text_stats",
	mcp.WithDescription("Count words and characters of a text and estimate its reading time in minutes."),
	mcp.WithString("text", mcp.Required(), mcp.Description("The text to analyze")),
	mcp.WithNumber("words_per_minute", mcp.Description("Reading speed; defaults to the configured speed")),
)

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"transform_text": {
		def:     transformToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTransform },
	},
	"text_stats": {
		def:     statsToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleStats },
	},
}

// NewServer creates an MCP server with the wordpad tools registered.
func NewServer(h *Handlers, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"wordpad",
		version,
		server.WithToolCapabilities(true),
	)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}
	return s
}

// Run serves the tools on stdin and stdout until the client disconnects.
func Run(h *Handlers, version string) error {
	return server.ServeStdio(NewServer(h, version))
}
