// Package mcp exposes the toolkit as Model Context Protocol tools.
//
// ToolServer keeps its own registry so tools can be invoked directly, and
// registers the same tools on an official SDK server when served over a
// transport such as stdio.
package mcp
