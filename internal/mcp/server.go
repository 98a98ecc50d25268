// Package mcp provides a Model Context Protocol server for pulseci.
// It exposes the workflow catalog and the emitter as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all pulseci tools registered.
// dir is the target directory used by check_workflows and emit_workflows.
func NewServer(version string, dir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "pulseci",
		Version: version,
	}, nil)
	registerTools(server, dir)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for emit_workflows. Overwriting a
// locally edited workflow discards the edit, so the tool is destructive.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		IdempotentHint:  true,
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, dir string) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_workflows",
		Description: "List the embedded GitHub Actions workflows: filename, workflow title, job IDs and size.",
		Annotations: readOnlyAnnotations(),
	}, handleList())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_workflow",
		Description: "Return the exact content of one embedded workflow by filename (the .yml suffix is optional).",
		Annotations: readOnlyAnnotations(),
	}, handleShow())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_workflows",
		Description: "Compare the workflow files in the target directory with the embedded copies and report ok, missing or modified per file.",
		Annotations: readOnlyAnnotations(),
	}, handleCheck(dir))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "emit_workflows",
		Description: "Write all five workflow files into the target directory, creating it if needed. Existing copies are overwritten and local edits to them are lost; other files are left alone. Set dry_run to preview.",
		Annotations: writeAnnotations(),
	}, handleEmit(dir))
}
