package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qntmpulse/pulseci/internal/git"
	"github.com/qntmpulse/pulseci/internal/output"
	"github.com/qntmpulse/pulseci/internal/setup"
)

// chdirRepo isolates the environment and moves into a fresh git repository.
func chdirRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	isolateEnv(t)

	dir := t.TempDir()
	if _, err := git.RunContext(t.Context(), dir, "init", "--quiet"); err != nil {
		t.Fatalf("git init: %v", err)
	}
	t.Chdir(dir)
	return filepath.Join(setup.HooksDir(dir), setup.PreCommitHook)
}

func TestHooksCommand_InstallListUninstall(t *testing.T) {
	hookPath := chdirRepo(t)

	out, _, err := executeCmd(t, "hooks", "install")
	if err != nil {
		t.Fatalf("install failed: %v", err)
	}
	if !strings.Contains(out, "Installed pre-commit hook") {
		t.Errorf("install output = %q", out)
	}
	if !setup.CheckHookStatus(hookPath).Installed {
		t.Fatal("hook should be installed")
	}

	out, _, err = executeCmd(t, "hooks", "list", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var listed struct {
		PreCommit setup.HookStatus `json:"pre_commit"`
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("failed to parse JSON: %v\nOutput: %s", err, out)
	}
	if !listed.PreCommit.Installed {
		t.Errorf("hooks list reports %+v, want installed", listed.PreCommit)
	}

	out, _, err = executeCmd(t, "hooks", "uninstall")
	if err != nil {
		t.Fatalf("uninstall failed: %v", err)
	}
	if !strings.Contains(out, "Removed pre-commit hook") {
		t.Errorf("uninstall output = %q", out)
	}
	if setup.HookExists(hookPath) {
		t.Error("hook should be removed")
	}
}

func TestHooksCommand_InstallConflict(t *testing.T) {
	hookPath := chdirRepo(t)
	if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(hookPath, []byte("#!/bin/sh\necho mine\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, errOut, err := executeCmd(t, "hooks", "install")
	if code := output.GetExitCode(err); code != output.ExitConflict {
		t.Errorf("exit code = %d, want %d", code, output.ExitConflict)
	}
	if !strings.Contains(errOut, "--chain") {
		t.Errorf("stderr should suggest --chain: %q", errOut)
	}

	out, _, err := executeCmd(t, "hooks", "install", "--dry-run", "--chain")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if !strings.Contains(out, "would backup and chain") {
		t.Errorf("dry run output = %q", out)
	}
	if setup.CheckHookStatus(hookPath).Installed {
		t.Error("dry run must not install")
	}

	if _, _, err := executeCmd(t, "hooks", "install", "--chain"); err != nil {
		t.Fatalf("install --chain failed: %v", err)
	}
	if !setup.CheckHookStatus(hookPath).Chained {
		t.Error("hook should chain to the backup")
	}
}

func TestHooksCommand_NotARepo(t *testing.T) {
	isolateEnv(t)
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(t.TempDir()))

	_, _, err := executeCmd(t, "hooks", "list")
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", code, output.ExitSystemError)
	}
}
