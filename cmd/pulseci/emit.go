package main

import (
	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/config"
	"github.com/qntmpulse/pulseci/internal/emitter"
	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// successMessage is the single line printed after every workflow is written.
const successMessage = "GitHub Actions workflows created successfully!"

// emitFlags holds the command-line flags for the emit command.
type emitFlags struct {
	dir     string
	dryRun  bool
	verbose bool
}

// newEmitCmd creates the emit command.
func newEmitCmd() *cobra.Command {
	flags := &emitFlags{}

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write all workflow files",
		Long: `Write the five workflow files into the target directory.

The directory and any missing parents are created. Each workflow file is
replaced in full; other files in the directory are left alone. The first
failure stops the run and files already written stay in place.

Examples:
  pulseci emit                          # Write to <repo root>/.github/workflows
  pulseci emit --dir ../web/.github/workflows
  pulseci emit --dry-run                # Show what would change
  pulseci emit --json                   # Structured result`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmit(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Target directory (default <repo root>/.github/workflows)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be written without writing")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "List each file written")

	return cmd
}

// runEmit executes the emit command. The bare root command runs it with zero flags.
func runEmit(cmd *cobra.Command, flags *emitFlags) error {
	printer := newPrinter(cmd)

	dir, err := config.WorkflowsDir(flags.dir)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		return runEmitDryRun(printer, dir)
	}

	result, err := emitter.Emit(dir, workflows.All())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "ok",
			"message": successMessage,
			"dir":     result.Dir,
			"files":   result.Files,
		})
	}

	if flags.verbose {
		printFileResults(printer, result)
	}
	return printer.Success(map[string]any{"message": successMessage})
}

// runEmitDryRun reports the plan without touching the filesystem.
func runEmitDryRun(printer *output.Printer, dir string) error {
	plan, err := emitter.Plan(dir, workflows.All())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": "dry_run",
			"dir":    plan.Dir,
			"files":  plan.Files,
		})
	}

	styles := printer.Styles()
	printer.Print("%s %s\n", styles.Bold.Render("Dry run: pulseci emit into"), styles.Dim.Render(plan.Dir))
	printer.Println()
	printFileResults(printer, plan)
	return nil
}

// printFileResults prints one line per file: icon, name, status.
func printFileResults(printer *output.Printer, result *emitter.Result) {
	styles := printer.Styles()
	for _, f := range result.Files {
		printer.Print("  %s %s %s\n",
			fileStatusIcon(styles, f.Status),
			f.Name,
			styles.Dim.Render("("+f.Status+")"),
		)
	}
}

// fileStatusIcon returns a styled icon for an emit or plan status.
func fileStatusIcon(styles *output.Styles, status string) string {
	switch status {
	case emitter.StatusCreated, emitter.StatusOverwritten:
		return styles.Success.Render("ok")
	case emitter.StatusCreate, emitter.StatusOverwrite:
		return styles.Accent.Render(">")
	case emitter.StatusUnchanged:
		return styles.Dim.Render("--")
	default:
		return "??"
	}
}
