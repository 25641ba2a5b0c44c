// Package mcpserver exposes the analysis pipeline as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"prism/src/config"
	"prism/src/controller"
	"prism/src/util"
)

// New creates the MCP server with every tool registered
func New(cfg *config.Config, pipeline *controller.Pipeline) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Agent.Name,
		cfg.Agent.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	tools := NewTools(cfg, pipeline)
	s.AddTool(tools.AnalyzeDefinition(), tools.HandleAnalyze)
	s.AddTool(tools.ValidateDefinition(), tools.HandleValidate)

	return s
}

// Serve blocks serving MCP on stdin and stdout
func Serve(cfg *config.Config, pipeline *controller.Pipeline) error {
	util.Info("Serving MCP tools on stdio")
	return server.ServeStdio(New(cfg, pipeline))
}
