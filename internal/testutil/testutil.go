// Package testutil provides shell-stub helpers for tests that exercise
// real subprocess execution.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeStubScript(t, dir, name, fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
}

// WriteVersionStub writes an executable shell stub that prints line and exits 0,
// simulating a tool that reports its version.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteVersionStub(t *testing.T, dir string, name string, line string) {
	t.Helper()
	writeStubScript(t, dir, name, fmt.Sprintf("#!/bin/sh\necho '%s'\nexit 0\n", line))
}

// WriteBrokenStub writes an executable shell stub that prints garbage to stderr
// and exits non-zero, simulating a present but broken tool.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteBrokenStub(t *testing.T, dir string, name string) {
	t.Helper()
	writeStubScript(t, dir, name, "#!/bin/sh\necho 'segmentation fault' >&2\nexit 127\n")
}

func writeStubScript(t *testing.T, dir string, name string, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}
