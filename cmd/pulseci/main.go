// Package main provides the entry point for the pulseci CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/config"
	"github.com/qntmpulse/pulseci/internal/envfile"
	"github.com/qntmpulse/pulseci/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color against TTY detection on the command's stdout.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns a printer for cmd with human errors routed to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	return output.GetExitCode(execute(context.Background(), newRootCmd()))
}

// execute runs cmd through fang.
func execute(ctx context.Context, cmd *cobra.Command) error {
	return fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
}

// handleError reports errors the commands did not print themselves.
// An *output.ExitError has always been through the Printer already.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the pulseci CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pulseci",
		Short: "Write the Pulse GitHub Actions workflows",
		Long: `pulseci writes the Pulse web app's GitHub Actions workflows into .github/workflows.

Run with no command to write all five workflows (same as 'pulseci emit'):
  ci.yml                 lint, test, build and audit on main/develop
  deploy-staging.yml     Vercel preview deploy for pull requests
  deploy-production.yml  checked, built and verified production deploy
  lighthouse.yml         weekly and per-PR Lighthouse audit
  security-scan.yml      dependency, CodeQL and secret scans

The target is <repo root>/.github/workflows unless --dir or
PULSECI_WORKFLOWS_DIR says otherwise. Existing copies are overwritten.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEmit(cmd, &emitFlags{})
		},
	}

	// Load .env.local, .env, then the global env file. Variables already
	// in the environment take precedence over all of them.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if mode, _ := cmd.Flags().GetString("color"); mode != "" {
			if err := output.ValidateColorMode(mode); err != nil {
				output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), false).
					WithStderr(cmd.ErrOrStderr()).Error(err)
				return err
			}
		}
		if _, err := loadEnvFiles(); err != nil {
			newPrinter(cmd).Warn("%v", err)
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Colorize output: auto, always, never")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func loadEnvFiles() ([]string, error) {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	return envfile.LoadAll(paths...)
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "inspect", Title: "Inspect Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "setup", Title: "Setup Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newEmitCmd(), "core")
	addGroupedCommand(cmd, newCheckCmd(), "core")

	addGroupedCommand(cmd, newListCmd(), "inspect")
	addGroupedCommand(cmd, newShowCmd(), "inspect")

	addGroupedCommand(cmd, newHooksCmd(), "setup")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
