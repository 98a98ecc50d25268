package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/qntmpulse/pulseci/internal/output"
)

// Run executes a git command in the current directory and returns trimmed stdout.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), "", args...)
}

// RunContext executes a git command in dir (the current directory when empty).
// Returns an *output.ExitError with ExitSystemError on failure.
func RunContext(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsRepo reports whether the current directory is inside a git work tree.
func IsRepo() bool {
	_, err := Run("rev-parse", "--git-dir")
	return err == nil
}

// RepoRoot returns the top-level directory of the current work tree.
func RepoRoot() (string, error) {
	return RepoRootFrom("")
}

// RepoRootFrom returns the top-level directory of the work tree containing dir.
func RepoRootFrom(dir string) (string, error) {
	root, err := RunContext(context.Background(), dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", output.NewSystemErrorWithCause("not in a git repository", err)
	}
	return root, nil
}
