package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qntmpulse/pulseci/internal/emitter"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// SuccessMessage is reported after a successful emit.
const SuccessMessage = "GitHub Actions workflows created successfully!"

// --- list_workflows ---

// ListInput is the input for list_workflows (no parameters).
type ListInput struct{}

// ListOutput is the output for list_workflows.
type ListOutput struct {
	Workflows []workflows.Info `json:"workflows" jsonschema:"filename, title, job IDs and size of each workflow in emission order"`
}

func handleList() mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, ListOutput, error) {
		docs := workflows.All()
		out := ListOutput{Workflows: make([]workflows.Info, 0, len(docs))}
		for _, doc := range docs {
			info, err := doc.Info()
			if err != nil {
				return nil, ListOutput{}, err
			}
			out.Workflows = append(out.Workflows, info)
		}
		return nil, out, nil
	}
}

// --- show_workflow ---

// ShowInput is the input for show_workflow.
type ShowInput struct {
	Name string `json:"name" jsonschema:"workflow filename, with or without .yml (required)"`
}

// ShowOutput is the output for show_workflow.
type ShowOutput struct {
	Name    string `json:"name"    jsonschema:"workflow filename"`
	Title   string `json:"title"   jsonschema:"the workflow's name: field"`
	Content string `json:"content" jsonschema:"exact file content"`
}

func handleShow() mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		doc, ok := workflows.Lookup(input.Name)
		if !ok {
			return nil, ShowOutput{}, fmt.Errorf("unknown workflow %q", input.Name)
		}
		title, err := doc.Title()
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{Name: doc.Name, Title: title, Content: string(doc.Content)}, nil
	}
}

// --- check_workflows ---

// CheckInput is the input for check_workflows (no parameters).
type CheckInput struct{}

// CheckOutput is the output for check_workflows.
type CheckOutput struct {
	Dir   string              `json:"dir"   jsonschema:"target directory"`
	Clean bool                `json:"clean" jsonschema:"true when every file matches its embedded copy"`
	Files []emitter.FileCheck `json:"files" jsonschema:"per-file status: ok, missing or modified"`
}

func handleCheck(dir string) mcp.ToolHandlerFor[CheckInput, CheckOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
		report, err := emitter.Check(dir, workflows.All())
		if err != nil {
			return nil, CheckOutput{}, fmt.Errorf("checking workflows: %w", err)
		}
		return nil, CheckOutput{Dir: report.Dir, Clean: report.Clean(), Files: report.Files}, nil
	}
}

// --- emit_workflows ---

// EmitInput is the input for emit_workflows.
type EmitInput struct {
	DryRun bool `json:"dry_run,omitempty" jsonschema:"report what would change without writing"`
}

// EmitOutput is the output for emit_workflows.
type EmitOutput struct {
	Dir     string               `json:"dir"               jsonschema:"target directory"`
	DryRun  bool                 `json:"dry_run"           jsonschema:"true when nothing was written"`
	Message string               `json:"message,omitempty" jsonschema:"confirmation message after a real emit"`
	Files   []emitter.FileResult `json:"files"             jsonschema:"per-file result"`
}

func handleEmit(dir string) mcp.ToolHandlerFor[EmitInput, EmitOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input EmitInput) (*mcp.CallToolResult, EmitOutput, error) {
		if input.DryRun {
			plan, err := emitter.Plan(dir, workflows.All())
			if err != nil {
				return nil, EmitOutput{}, fmt.Errorf("planning workflows: %w", err)
			}
			return nil, EmitOutput{Dir: plan.Dir, DryRun: true, Files: plan.Files}, nil
		}

		result, err := emitter.Emit(dir, workflows.All())
		if err != nil {
			return nil, EmitOutput{}, fmt.Errorf("emitting workflows: %w", err)
		}
		return nil, EmitOutput{Dir: result.Dir, Message: SuccessMessage, Files: result.Files}, nil
	}
}
