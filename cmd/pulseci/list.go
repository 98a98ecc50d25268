package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/workflows"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the embedded workflows",
		Long: `List the workflows pulseci writes, in the order they are written.

Examples:
  pulseci list
  pulseci list --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	docs := workflows.All()
	infos := make([]workflows.Info, 0, len(docs))
	for _, doc := range docs {
		info, err := doc.Info()
		if err != nil {
			sysErr := output.NewSystemErrorWithCause("failed to read embedded workflow "+doc.Name, err)
			printer.Error(sysErr)
			return sysErr
		}
		infos = append(infos, info)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"workflows": infos})
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			info.Title,
			strings.Join(info.Jobs, ", "),
			strconv.Itoa(info.Bytes),
		})
	}
	printer.Table([]string{"FILE", "NAME", "JOBS", "BYTES"}, rows)
	return nil
}
