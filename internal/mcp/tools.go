package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/mkvtoolnix-go/internal/cli"
	"github.com/wagiedev/mkvtoolnix-go/internal/identification"
	langtable "github.com/wagiedev/mkvtoolnix-go/internal/language"
	"github.com/wagiedev/mkvtoolnix-go/internal/propedit"
	"github.com/wagiedev/mkvtoolnix-go/internal/subprocess"
)

// Toolkit is the functionality the tools are served from.
type Toolkit interface {
	Identify(ctx context.Context, file string) (*identification.FileIdentification, error)
	Versions(ctx context.Context) ([]cli.VersionInfo, error)
	Languages(ctx context.Context) (*langtable.Table, error)
	Execute(ctx context.Context, cmd subprocess.Command) (*subprocess.Result, error)
}

// Tool names.
const (
	ToolIdentify      = "identify"
	ToolVersion       = "version"
	ToolListLanguages = "list_languages"
	ToolPropEditSet   = "propedit_set"
)

// RegisterToolkit adds the toolkit tools to s.
func RegisterToolkit(s *ToolServer, tk Toolkit) {
	s.AddTool(
		NewTool(ToolIdentify, "Identify a media file and return its tracks, attachments and container as JSON.",
			SimpleSchema(map[string]string{"file": "string"})),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return nil, err
			}

			file, _ := args["file"].(string)
			if file == "" {
				return ErrorResult("file is required"), nil
			}

			info, err := tk.Identify(ctx, file)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			return jsonResult(info)
		},
	)

	s.AddTool(
		NewTool(ToolVersion, "Report the versions of mkvmerge, mkvpropedit and mkvextract.",
			&jsonschema.Schema{Type: "object"}),
		func(ctx context.Context, _ *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			versions, err := tk.Versions(ctx)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			return jsonResult(versions)
		},
	)

	s.AddTool(
		NewTool(ToolListLanguages, "List the languages known to mkvmerge, optionally filtered by name or code.",
			&jsonschema.Schema{
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"query": {Type: "string"},
				},
			}),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args, err := ParseArguments(req)
			if err != nil {
				return nil, err
			}

			table, err := tk.Languages(ctx)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			query, _ := args["query"].(string)

			return TextResult(formatLanguages(table, strings.ToLower(query))), nil
		},
	)

	s.AddTool(
		NewTool(ToolPropEditSet, "Set a property on a track (by track number) or, with track 0, on the segment info.",
			SimpleSchema(map[string]string{"file": "string", "track": "int", "property": "string", "value": "string"})),
		func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			var in struct {
				File     string `json:"file"`
				Track    uint64 `json:"track"`
				Property string `json:"property"`
				Value    string `json:"value"`
			}

			if req != nil && req.Params != nil && len(req.Params.Arguments) > 0 {
				if err := json.Unmarshal(req.Params.Arguments, &in); err != nil {
					return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
				}
			}

			if in.File == "" || in.Property == "" {
				return ErrorResult("file and property are required"), nil
			}

			set := func(e *propedit.PropertyEdit) { e.Set(in.Property, in.Value) }

			cmd := propedit.New(in.File)
			if in.Track == 0 {
				cmd.EditSegmentInfo(set)
			} else {
				cmd.EditTrackByNumber(in.Track, set)
			}

			res, err := tk.Execute(ctx, cmd)
			if err != nil {
				return ErrorResult(err.Error()), nil
			}

			var b strings.Builder

			fmt.Fprintf(&b, "set %s=%s in %s", in.Property, in.Value, in.File)

			if res != nil {
				for _, w := range res.Warnings() {
					fmt.Fprintf(&b, "\nwarning: %s", w.Text)
				}
			}

			return TextResult(b.String()), nil
		},
	)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return TextResult(string(data)), nil
}

func formatLanguages(table *langtable.Table, query string) string {
	var b strings.Builder

	for l := range table.All() {
		if query != "" &&
			!strings.Contains(strings.ToLower(l.Name), query) &&
			l.ISO6393 != query && l.ISO6392 != query && l.ISO6391 != query {
			continue
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%s | %s | %s | %s", l.Name, l.ISO6393, l.ISO6392, l.ISO6391)
	}

	return b.String()
}
