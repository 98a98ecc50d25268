package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"status": "created",
		"dir":    ".github/workflows",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["status"] != "created" {
		t.Errorf("status = %v, want %q", result["status"], "created")
	}
	if result["dir"] != ".github/workflows" {
		t.Errorf("dir = %v, want %q", result["dir"], ".github/workflows")
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	exitErr := NewUserError("unknown workflow: release")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "unknown workflow: release" {
		t.Errorf("error = %v, want %q", result["error"], "unknown workflow: release")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false (no colors)

	data := map[string]any{
		"message": "GitHub Actions workflows created successfully!",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "GitHub Actions workflows created successfully!") {
		t.Errorf("output = %q, want to contain 'GitHub Actions workflows created successfully!'", output)
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false

	exitErr := NewUserError("unknown workflow: release")
	printer.Error(exitErr)

	output := buf.String()
	if !strings.Contains(output, "Error") {
		t.Errorf("output should contain 'Error': %q", output)
	}
	if !strings.Contains(output, "unknown workflow: release") {
		t.Errorf("output should contain error message: %q", output)
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("Hello")

	if buf.String() != "Hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello\n")
	}
}

func TestIsTTY(t *testing.T) {
	// IsTTY on a buffer should return false
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	jsonPrinter := NewPrinter(&buf, true, false)
	if !jsonPrinter.IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}

	humanPrinter := NewPrinter(&buf, false, false)
	if humanPrinter.IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Warn("%s already exists", "release.yml")

	output := buf.String()
	if !strings.Contains(output, "Warning") {
		t.Errorf("output should contain 'Warning': %q", output)
	}
	if !strings.Contains(output, "release.yml") {
		t.Errorf("output should contain message: %q", output)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("drift detected")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["warning"] != "drift detected" {
		t.Errorf("warning = %v, want %q", result["warning"], "drift detected")
	}
}

func TestErrorJSON_Format(t *testing.T) {
	// ErrorJSON must produce exactly {"code":N,"error":"..."}
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitUserError {
		t.Errorf("code = %d, want %d", parsed.Code, ExitUserError)
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"FILE", "JOBS"}, [][]string{
		{"ci.yml", "4"},
		{"deploy-production.yml", "4"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	// Second column starts at the same offset on every line.
	col := strings.Index(lines[0], "JOBS")
	if col != len("deploy-production.yml")+2 {
		t.Errorf("JOBS column at %d, want %d", col, len("deploy-production.yml")+2)
	}
	if strings.Index(lines[1], "4") != col {
		t.Errorf("row not aligned with header: %q", lines[1])
	}
}

func TestPrinter_Table_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false, false).Table(nil, [][]string{{"x"}})
	if buf.Len() != 0 {
		t.Errorf("Table without headers wrote %q", buf.String())
	}
}

func TestPrinter_SectionAndKeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Workflows")
	printer.KeyValue("Directory", ".github/workflows")

	want := "\nWorkflows\n" + strings.Repeat("─", len("Workflows")) + "\nDirectory: .github/workflows\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Write_Raw(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, true)

	payload := []byte("name: Lighthouse CI\n")
	printer.Write(payload)

	if buf.String() != string(payload) {
		t.Errorf("Write() altered payload: %q", buf.String())
	}
}

func TestPrinter_WithStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewSystemError("failed to write ci.yml"))

	if out.Len() != 0 {
		t.Errorf("human error leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "failed to write ci.yml") {
		t.Errorf("stderr = %q, want error message", errOut.String())
	}
}
