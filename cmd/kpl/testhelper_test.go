package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/testutil"
)

// runCLI executes the root command with args and captures combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(append([]string{"kpl"}, args...), &out, &out)
	return out.String(), err
}

// stubHome creates a scratch tools home, points KORGS_TOOLS_HOME at it,
// and returns it with the default manifest resolved against it.
func stubHome(t *testing.T) (string, *manifest.Manifest) {
	t.Helper()
	home := t.TempDir()
	t.Setenv(host.EnvToolsHome, home)
	// Keep real toolchains on the developer's machine out of the confined
	// PATH suffix; stubs under the scratch home are the only tools visible.
	t.Setenv("PATH", "/usr/bin:/bin")
	m, err := manifest.Load(home, manifest.Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	return home, m
}

// binDir is where probe stubs live; it is on the runner's confined PATH.
func binDir(home string) string {
	return filepath.Join(home, "cargo", "bin")
}

// probeLine fabricates probe output that the tool's pattern parses back to
// its target version.
func probeLine(t *testing.T, m *manifest.Manifest, name string) string {
	t.Helper()
	tool, ok := m.Lookup(name)
	if !ok {
		t.Fatalf("unknown tool %s", name)
	}
	switch name {
	case manifest.ToolRust:
		return "rustc " + tool.TargetVersion + " (stable)"
	case manifest.ToolSolana:
		return "solana-cli " + tool.TargetVersion + " (src:devbuild)"
	default:
		return tool.TargetVersion
	}
}

// writeSatisfiedHost writes a probe stub at target version for every tool.
// The solana stub lives under home/solana/bin, mirroring where the real
// installer puts it, so the built-in rm -rf removal actually removes it.
func writeSatisfiedHost(t *testing.T, home string, m *manifest.Manifest) {
	t.Helper()
	for _, tool := range m.Tools() {
		dir := binDir(home)
		if tool.Name == manifest.ToolSolana {
			dir = filepath.Join(home, "solana", "bin")
		}
		testutil.WriteVersionStub(t, dir, tool.ProbeCommand[0], probeLine(t, m, tool.Name))
	}
}

// writeInstallerStub writes a stub named name that, when invoked, creates
// the probe stub for target so a follow-up probe sees it installed.
func writeInstallerStub(t *testing.T, home string, name string, target string, line string) {
	t.Helper()
	dir := binDir(home)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	targetPath := filepath.Join(dir, target)
	script := fmt.Sprintf("#!/bin/sh\nprintf '#!/bin/sh\\necho %q\\n' > %s\nchmod +x %s\n", line, targetPath, targetPath)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

// writeRemoverStub writes a stub named name that deletes the probe stub
// given by its last argument, simulating an uninstaller.
func writeRemoverStub(t *testing.T, home string, name string) {
	t.Helper()
	dir := binDir(home)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	script := fmt.Sprintf("#!/bin/sh\nfor last; do :; done\nrm -f %s/$last\n", dir)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

// writeOverridesFile writes a version-overrides TOML file into a scratch
// directory and returns its path.
func writeOverridesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), manifest.DefaultOverridesFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeFixedRemoverStub writes a stub named name that deletes the probe
// stub target regardless of arguments, for uninstallers whose arguments
// name a version rather than a binary.
func writeFixedRemoverStub(t *testing.T, home string, name string, target string) {
	t.Helper()
	dir := binDir(home)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	script := fmt.Sprintf("#!/bin/sh\nrm -f %s\n", filepath.Join(dir, target))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}
