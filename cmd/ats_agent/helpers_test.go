package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	sampleJob = "Senior Backend Engineer\n\nWe need Go, AWS and Docker experience. 5+ years of experience. Strong leadership and communication."

	sampleResume = "Jane Doe\njane@example.com | 555-123-4567\n\nEXPERIENCE\nSoftware Engineer | Acme Corp | Jan 2019 - Present\n• Built billing services in Go used by 500 customers\n• worked on deployment tooling\n\nEDUCATION\nB.S. Computer Science, State University, 2018\n\nSKILLS\nGo, SQL"
)

// getBinaryPath returns the path to the ats_agent binary for testing
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "ats_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_agent ./cmd/ats_agent'", binaryPath)
	}
	abs, err := filepath.Abs(binaryPath)
	require.NoError(t, err)
	return abs
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI runs the binary with a clean environment and returns its stdout,
// stderr and error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command(getBinaryPath(t), args...)
	cmd.Dir = t.TempDir()
	cmd.Env = []string{"PATH=" + os.Getenv("PATH"), "HOME=" + t.TempDir()}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
