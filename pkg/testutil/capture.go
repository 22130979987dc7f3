// Package testutil provides shared test utilities for ncu packages:
// stderr capture, manifest fixtures, and a fake npm registry.
package testutil

import (
	"bytes"
	"io"
	"os"
	"testing"
)

// CaptureStderr captures stderr during the execution of fn and returns the output as a string.
//
// Warnings are written to the process stderr by default, so this is how
// tests observe them without swapping the warning writer.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - fn: Function to execute while capturing stderr
//
// Returns:
//   - string: All content written to stderr during fn execution
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("create pipe: %v", err)
	}

	oldStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	return <-done
}
