// ABOUTME: Integration tests for fitness CLI.
// ABOUTME: Builds the binary and drives a full register, log, report workflow.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	fitnessBinary := filepath.Join(t.TempDir(), "fitness")

	buildCmd := exec.Command("go", "build", "-o", fitnessBinary, "./cmd/fitness")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"FITNESS_DATA_DIR="+filepath.Join(tmpDir, "data"),
		"FITNESS_BACKEND=sqlite",
		"FITNESS_DSN=",
		"FITNESS_PASSWORD=hunter2",
		"FITNESS_USER=alice",
		"NO_COLOR=1",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(fitnessBinary, args...)
		cmd.Env = env
		cmd.Dir = tmpDir
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	output, err := run("register", "--age", "30", "--gender", "female")
	if err != nil {
		t.Fatalf("Failed to register: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Registered alice") {
		t.Errorf("Expected 'Registered alice' in output, got: %s", output)
	}

	// Duplicate registration fails with a friendly message
	output, err = run("register", "--age", "30", "--gender", "female")
	if err == nil {
		t.Fatal("Expected duplicate registration to fail")
	}
	if !strings.Contains(output, "username already exists") {
		t.Errorf("Expected duplicate name message, got: %s", output)
	}

	output, err = run("workout", "add", "Running", "--duration", "30", "--calories", "300", "--date", "2024-01-01")
	if err != nil {
		t.Fatalf("Failed to add workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Logged Running workout") {
		t.Errorf("Expected 'Logged Running workout' in output, got: %s", output)
	}

	// Validation errors are shown as the field message
	output, err = run("workout", "add", "Running", "--duration", "0")
	if err == nil {
		t.Fatal("Expected zero duration to fail")
	}
	if !strings.Contains(output, "duration must be greater than 0 minutes") {
		t.Errorf("Expected validation message, got: %s", output)
	}

	output, err = run("measure", "add", "70", "--height", "175", "--date", "2024-01-01")
	if err != nil {
		t.Fatalf("Failed to add measurement: %v\n%s", err, output)
	}

	output, err = run("dashboard")
	if err != nil {
		t.Fatalf("Failed to show dashboard: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Normal (22.9)") {
		t.Errorf("Expected BMI status in dashboard, got: %s", output)
	}

	output, err = run("report", "--save")
	if err != nil {
		t.Fatalf("Failed to save report: %v\n%s", err, output)
	}
	report, err := os.ReadFile(filepath.Join(tmpDir, "fitness_report_alice.txt"))
	if err != nil {
		t.Fatalf("Report file missing: %v", err)
	}
	if !strings.Contains(string(report), "Total Calories      300") {
		t.Errorf("Unexpected report:\n%s", report)
	}

	// Wrong password is rejected
	env = append(env, "FITNESS_PASSWORD=wrong")
	output, err = run("workout", "list")
	if err == nil {
		t.Fatal("Expected login with wrong password to fail")
	}
	if !strings.Contains(output, "invalid username or password") {
		t.Errorf("Expected credentials message, got: %s", output)
	}
}
