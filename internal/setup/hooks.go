package setup

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/qntmpulse/pulseci/internal/git"
	"github.com/qntmpulse/pulseci/internal/output"
)

// PreCommitHook is the file name of the only hook pulseci manages.
const PreCommitHook = "pre-commit"

// backupSuffix is appended to a foreign hook moved aside by --chain.
const backupSuffix = ".backup"

// hookMarker identifies a hook written by pulseci.
const hookMarker = "pulseci check"

// HookStatus represents the status of a single git hook.
type HookStatus struct {
	Installed bool `json:"installed"`
	Chained   bool `json:"chained"`
}

// InstallOptions controls what Install does when a hook already exists.
type InstallOptions struct {
	// Chain moves the existing hook to <hook>.backup and runs it after the check.
	Chain bool
	// Force overwrites the existing hook without a backup.
	Force bool
}

// InstallResult describes what Install did.
type InstallResult struct {
	Path     string `json:"path"`
	Chained  bool   `json:"chained"`
	Replaced bool   `json:"replaced"`
}

// GetHooksDir returns the hooks directory of the current repository.
func GetHooksDir() (string, error) {
	root, err := git.RepoRoot()
	if err != nil {
		return "", err
	}
	return HooksDir(root), nil
}

// HooksDir returns <root>/.git/hooks.
func HooksDir(root string) string {
	return filepath.Join(root, ".git", "hooks")
}

// BackupPath returns where a chained hook's original is kept.
func BackupPath(hookPath string) string {
	return hookPath + backupSuffix
}

// HookExists checks if a hook file exists at the given path.
func HookExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckHookStatus checks if the pulseci hook is installed and whether it chains to a backup.
func CheckHookStatus(hookPath string) HookStatus {
	status := HookStatus{}

	content, err := os.ReadFile(hookPath)
	if err != nil {
		return status
	}

	contentStr := string(content)
	if strings.Contains(contentStr, hookMarker) {
		status.Installed = true
		status.Chained = strings.Contains(contentStr, backupSuffix)
	}

	return status
}

// GeneratePreCommitHook generates the pre-commit hook script content.
// If withChain is true, the hook runs the backed-up original afterwards.
func GeneratePreCommitHook(withChain bool) string {
	script := `#!/bin/sh
# pulseci pre-commit hook
# Warns when GitHub Actions workflows drift from the pulseci copies (non-blocking)

if command -v pulseci >/dev/null 2>&1; then
  if ! pulseci check >/dev/null 2>&1; then
    echo "pulseci: workflow files differ from the embedded copies; run 'pulseci check' for details" >&2
  fi
fi
`

	if withChain {
		script += `
# Chain to original hook if it exists
if [ -x ".git/hooks/pre-commit.backup" ]; then
  exec .git/hooks/pre-commit.backup "$@"
fi
`
	}

	return script
}

// BackupExistingHook moves an existing hook to its backup location.
// An earlier backup is never replaced: that is a conflict.
func BackupExistingHook(hookPath string) error {
	backupPath := BackupPath(hookPath)
	if HookExists(backupPath) {
		return output.NewConflictErrorf("backup %s already exists; move it aside or use --force", backupPath)
	}
	if err := os.Rename(hookPath, backupPath); err != nil {
		return output.NewSystemErrorWithCause("failed to backup existing hook", err)
	}
	return nil
}

// Install writes the pre-commit hook to hookPath.
//
// An existing hook is a conflict unless opts.Force or opts.Chain is set.
// Force wins when both are set. A hook pulseci wrote earlier is simply
// rewritten and keeps its chain.
func Install(hookPath string, opts InstallOptions) (*InstallResult, error) {
	res := &InstallResult{Path: hookPath}

	if HookExists(hookPath) {
		current := CheckHookStatus(hookPath)
		switch {
		case current.Installed:
			res.Chained = current.Chained
			res.Replaced = true
		case opts.Force:
			res.Replaced = true
		case opts.Chain:
			if err := BackupExistingHook(hookPath); err != nil {
				return nil, err
			}
			res.Chained = true
		default:
			return nil, output.NewConflictError("hook already exists; use --chain to preserve or --force to overwrite")
		}
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create hooks directory", err)
	}

	// #nosec G306 -- hook needs execute permission
	if err := os.WriteFile(hookPath, []byte(GeneratePreCommitHook(res.Chained)), 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to write hook", err)
	}

	return res, nil
}

// Uninstall removes the pulseci hook and restores a chained original.
// It is a no-op when the hook at hookPath was not written by pulseci.
func Uninstall(hookPath string) (bool, error) {
	if !CheckHookStatus(hookPath).Installed {
		return false, nil
	}

	if err := os.Remove(hookPath); err != nil {
		return false, output.NewSystemErrorWithCause("failed to remove hook", err)
	}

	backupPath := BackupPath(hookPath)
	if err := os.Rename(backupPath, hookPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, output.NewSystemErrorWithCause("failed to restore backup", err)
	}
	return true, nil
}

// DescribeInstallAction returns a human-readable description of what the
// install operation would do given the current state.
func DescribeInstallAction(existingHook, ours, chain, force bool) string {
	if !existingHook {
		return "would install"
	}
	switch {
	case ours:
		return "would update the pulseci hook"
	case force:
		return "would overwrite existing hook"
	case chain:
		return "would backup and chain existing hook"
	default:
		return "would fail (hook exists, use --chain or --force)"
	}
}

// DescribeUninstallAction returns a human-readable description of what the
// uninstall operation would do given the current state.
func DescribeUninstallAction(installed, hasBackup bool) string {
	switch {
	case !installed:
		return "no pulseci hook installed"
	case hasBackup:
		return "would remove and restore backup"
	default:
		return "would remove"
	}
}
