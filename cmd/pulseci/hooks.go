package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qntmpulse/pulseci/internal/git"
	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/setup"
)

// newHooksCmd creates the hooks parent command with subcommands.
func newHooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Manage the pulseci git pre-commit hook",
		Long: `Manage a git pre-commit hook that runs 'pulseci check'.

The hook warns when the workflow files differ from the pulseci copies.
The warning is non-blocking: commits still proceed.

Examples:
  pulseci hooks list              # Show hook status
  pulseci hooks install           # Install pre-commit hook
  pulseci hooks install --chain   # Install and keep running the existing hook
  pulseci hooks uninstall         # Remove the hook, restore any backup`,
	}

	cmd.AddCommand(newHooksListCmd())
	cmd.AddCommand(newHooksInstallCmd())
	cmd.AddCommand(newHooksUninstallCmd())
	return cmd
}

// preCommitPath resolves .git/hooks/pre-commit for the current repository.
func preCommitPath(printer *output.Printer) (string, error) {
	if !git.IsRepo() {
		err := output.NewSystemError("not in a git repository")
		printer.Error(err)
		return "", err
	}

	hooksDir, err := setup.GetHooksDir()
	if err != nil {
		printer.Error(err)
		return "", err
	}
	return filepath.Join(hooksDir, setup.PreCommitHook), nil
}

// newHooksListCmd creates the hooks list subcommand.
func newHooksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show status of the pre-commit hook",
		Args:  cobra.NoArgs,
		RunE:  runHooksList,
	}
}

// runHooksList executes the hooks list command.
func runHooksList(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	hookPath, err := preCommitPath(printer)
	if err != nil {
		return err
	}
	status := setup.CheckHookStatus(hookPath)

	if printer.IsJSON() {
		return printer.Success(map[string]any{"pre_commit": status})
	}

	printer.Section("Git Hooks")
	statusStr := "not installed"
	if status.Installed {
		statusStr = "installed"
		if status.Chained {
			statusStr += " (chained)"
		}
	}
	printer.KeyValue(setup.PreCommitHook, statusStr)
	return nil
}

// newHooksInstallCmd creates the hooks install subcommand.
func newHooksInstallCmd() *cobra.Command {
	var opts setup.InstallOptions
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pre-commit hook",
		Long: `Install the pulseci pre-commit hook to .git/hooks/.

Use --chain to keep an existing hook (it runs after the check).
Use --force to overwrite an existing hook without backup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHooksInstall(cmd, opts, dryRun)
		},
	}

	cmd.Flags().BoolVar(&opts.Chain, "chain", false, "Preserve the existing hook and run it after the check")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite the existing hook without backup")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runHooksInstall executes the hooks install command.
func runHooksInstall(cmd *cobra.Command, opts setup.InstallOptions, dryRun bool) error {
	printer := newPrinter(cmd)

	hookPath, err := preCommitPath(printer)
	if err != nil {
		return err
	}

	if dryRun {
		existing := setup.HookExists(hookPath)
		ours := setup.CheckHookStatus(hookPath).Installed
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status": "dry_run",
				"hook":   setup.PreCommitHook,
				"exists": existing,
				"action": setup.DescribeInstallAction(existing, ours, opts.Chain, opts.Force),
			})
		}
		printer.Section("Dry Run")
		printer.KeyValue("Hook", setup.PreCommitHook)
		printer.KeyValue("Path", hookPath)
		printer.KeyValue("Action", setup.DescribeInstallAction(existing, ours, opts.Chain, opts.Force))
		return nil
	}

	res, err := setup.Install(hookPath, opts)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"hook":     setup.PreCommitHook,
			"path":     res.Path,
			"chained":  res.Chained,
			"replaced": res.Replaced,
		})
	}

	msg := "Installed pre-commit hook"
	if res.Chained {
		msg += " (existing hook backed up and chained)"
	}
	return printer.Success(map[string]any{"message": msg})
}

// newHooksUninstallCmd creates the hooks uninstall subcommand.
func newHooksUninstallCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the pre-commit hook",
		Long:  `Remove the pulseci pre-commit hook and restore any backup.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHooksUninstall(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without doing it")

	return cmd
}

// runHooksUninstall executes the hooks uninstall command.
func runHooksUninstall(cmd *cobra.Command, dryRun bool) error {
	printer := newPrinter(cmd)

	hookPath, err := preCommitPath(printer)
	if err != nil {
		return err
	}

	installed := setup.CheckHookStatus(hookPath).Installed

	if dryRun {
		hasBackup := setup.HookExists(setup.BackupPath(hookPath))
		if printer.IsJSON() {
			return printer.Success(map[string]any{
				"status":     "dry_run",
				"hook":       setup.PreCommitHook,
				"installed":  installed,
				"has_backup": hasBackup,
			})
		}
		printer.Section("Dry Run")
		printer.KeyValue("Hook", setup.PreCommitHook)
		printer.KeyValue("Path", hookPath)
		printer.KeyValue("Action", setup.DescribeUninstallAction(installed, hasBackup))
		return nil
	}

	if !installed {
		if printer.IsJSON() {
			return printer.Success(map[string]any{"status": "ok", "message": "no pulseci hook installed"})
		}
		return printer.Success(map[string]any{"message": "No pulseci hook installed"})
	}

	restored, err := setup.Uninstall(hookPath)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":   "ok",
			"hook":     setup.PreCommitHook,
			"restored": restored,
		})
	}

	msg := "Removed pre-commit hook"
	if restored {
		msg += " and restored original"
	}
	return printer.Success(map[string]any{"message": msg})
}
