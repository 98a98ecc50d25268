package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one embedded workflow",
		Long: `Print the exact content of one workflow. The .yml suffix is optional.

Examples:
  pulseci show ci
  pulseci show deploy-production.yml > deploy-production.yml
  pulseci show lighthouse --json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: workflows.Names(),
		RunE:      runShow,
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	doc, ok := workflows.Lookup(args[0])
	if !ok {
		err := output.NewUserErrorf("unknown workflow: %s (available: %s)",
			args[0], strings.Join(workflows.Names(), ", "))
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		title, err := doc.Title()
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to read embedded workflow "+doc.Name, err)
			printer.Error(sysErr)
			return sysErr
		}
		return printer.WriteJSON(map[string]any{
			"name":    doc.Name,
			"title":   title,
			"content": string(doc.Content),
		})
	}

	printer.Write(doc.Content)
	return nil
}
