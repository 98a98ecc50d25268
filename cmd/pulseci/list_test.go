package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestListCommand_Human(t *testing.T) {
	isolateEnv(t)

	out, _, err := executeCmd(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want header + 5 rows:\n%s", len(lines), out)
	}
	for _, want := range []string{"FILE", "NAME", "JOBS", "BYTES"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("header missing %q: %q", want, lines[0])
		}
	}
	if !strings.HasPrefix(lines[1], "ci.yml") || !strings.Contains(lines[1], "Continuous Integration") {
		t.Errorf("first row = %q, want ci.yml / Continuous Integration", lines[1])
	}
	if !strings.HasPrefix(lines[5], "security-scan.yml") {
		t.Errorf("last row = %q, want security-scan.yml", lines[5])
	}
}

func TestListCommand_JSON(t *testing.T) {
	isolateEnv(t)

	out, _, err := executeCmd(t, "list", "--json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var result struct {
		Workflows []struct {
			Name  string   `json:"name"`
			Title string   `json:"title"`
			Jobs  []string `json:"jobs"`
			Bytes int      `json:"bytes"`
		} `json:"workflows"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nOutput: %s", err, out)
	}
	if len(result.Workflows) != 5 {
		t.Fatalf("len(workflows) = %d, want 5", len(result.Workflows))
	}
	prod := result.Workflows[2]
	if prod.Name != "deploy-production.yml" || prod.Title != "Deploy to Production" {
		t.Errorf("workflows[2] = %+v", prod)
	}
	if len(prod.Jobs) != 4 || prod.Bytes == 0 {
		t.Errorf("deploy-production jobs=%v bytes=%d", prod.Jobs, prod.Bytes)
	}
}
