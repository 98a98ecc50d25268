package main

import (
	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/config"
	"github.com/qntmpulse/pulseci/internal/emitter"
	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report workflow files that differ from the embedded copies",
		Long: `Compare the workflow files on disk with the embedded copies.

Each file is reported as:
  ok        identical to the embedded copy
  missing   not present
  modified  present with different content

Exits with code 3 when any file is missing or modified.

Examples:
  pulseci check
  pulseci check --dir ../web/.github/workflows --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default <repo root>/.github/workflows)")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, dirFlag string) error {
	printer := newPrinter(cmd)

	dir, err := config.WorkflowsDir(dirFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	report, err := emitter.Check(dir, workflows.All())
	if err != nil {
		printer.Error(err)
		return err
	}

	var driftErr error
	if !report.Clean() {
		driftErr = output.NewConflictErrorf(
			"%d workflow(s) missing, %d modified; run 'pulseci emit' to restore",
			report.Count(emitter.DriftMissing), report.Count(emitter.DriftModified))
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{
			"dir":   report.Dir,
			"clean": report.Clean(),
			"files": report.Files,
		}); err != nil {
			return err
		}
		return driftErr
	}

	outputCheckHuman(printer, report)
	if driftErr != nil {
		printer.Error(driftErr)
	}
	return driftErr
}

// outputCheckHuman prints the report with one line per file and a summary.
func outputCheckHuman(printer *output.Printer, report *emitter.Report) {
	styles := printer.Styles()

	printer.Section("Workflows")
	printer.KeyValue("Directory", report.Dir)
	printer.Println()

	for _, f := range report.Files {
		printer.Print("  %s  %s %s\n", driftIcon(styles, f.Status), f.Name, styles.Dim.Render(f.Status))
	}

	printer.Println()
	printer.Print("%s %d ok  %s %d missing  %s %d modified\n",
		driftIcon(styles, emitter.DriftOK), report.Count(emitter.DriftOK),
		driftIcon(styles, emitter.DriftMissing), report.Count(emitter.DriftMissing),
		driftIcon(styles, emitter.DriftModified), report.Count(emitter.DriftModified),
	)
}

// driftIcon returns a styled icon for a drift status.
func driftIcon(styles *output.Styles, status string) string {
	switch status {
	case emitter.DriftOK:
		return styles.Success.Render("ok")
	case emitter.DriftMissing:
		return styles.Error.Render("XX")
	case emitter.DriftModified:
		return styles.Warning.Render("!!")
	default:
		return "??"
	}
}
