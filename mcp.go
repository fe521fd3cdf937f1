package mkvtoolnix

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	internalmcp "github.com/wagiedev/mkvtoolnix-go/internal/mcp"
)

// MCPServer serves a Toolnix as Model Context Protocol tools.
type MCPServer = internalmcp.ToolServer

// MCP tool names.
const (
	MCPToolIdentify      = internalmcp.ToolIdentify
	MCPToolVersion       = internalmcp.ToolVersion
	MCPToolListLanguages = internalmcp.ToolListLanguages
	MCPToolPropEditSet   = internalmcp.ToolPropEditSet
)

// NewMCPServer returns a tool server exposing identify, version,
// list_languages and propedit_set backed by t.
func (t *Toolnix) NewMCPServer(name, version string) *MCPServer {
	server := internalmcp.NewToolServer(t.options.Logger, name, version)
	internalmcp.RegisterToolkit(server, t)

	return server
}

// ServeMCP serves the toolkit over stdio until ctx is done or the client
// disconnects.
func (t *Toolnix) ServeMCP(ctx context.Context, name, version string) error {
	return t.NewMCPServer(name, version).Run(ctx, &mcp.StdioTransport{})
}
