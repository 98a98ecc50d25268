// Package config resolves where pulseci reads settings from and writes workflows to.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/qntmpulse/pulseci/internal/git"
	"github.com/qntmpulse/pulseci/internal/output"
)

// Environment variables consulted during resolution.
const (
	EnvConfigHome   = "PULSECI_CONFIG_HOME"
	EnvWorkflowsDir = "PULSECI_WORKFLOWS_DIR"
)

// WorkflowsSubdir is the repository-relative location GitHub reads workflows from.
var WorkflowsSubdir = filepath.Join(".github", "workflows")

// Dir returns the pulseci global configuration directory.
//
// Resolution:
//   - $PULSECI_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/pulseci if set
//   - %AppData%/pulseci on Windows
//   - ~/.config/pulseci on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pulseci")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pulseci")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pulseci")
}

// WorkflowsDir returns the directory workflows are written to.
//
// Resolution (first match wins):
//   - override (the --dir flag)
//   - $PULSECI_WORKFLOWS_DIR
//   - <git repo root>/.github/workflows
//   - <cwd>/.github/workflows
func WorkflowsDir(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}
	if dir := os.Getenv(EnvWorkflowsDir); dir != "" {
		return filepath.Clean(dir), nil
	}

	if root, err := git.RepoRoot(); err == nil {
		return filepath.Join(root, WorkflowsSubdir), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to get working directory", err)
	}
	return filepath.Join(cwd, WorkflowsSubdir), nil
}
