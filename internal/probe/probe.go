// Package probe reads the currently installed version of a managed tool.
// Probing never installs or modifies the host.
package probe

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/messages"
)

// Result reports a single tool's installed state.
//
// An empty Installed with a nil Err means the tool is absent — the common
// first-run case, not a failure. A non-nil Err means the tool is present
// but its version could not be read (broken binary, unparsable output).
type Result struct {
	Tool      string
	Installed string
	Err       error
}

// Missing reports whether the tool is simply not installed.
func (r Result) Missing() bool {
	return r.Installed == "" && r.Err == nil
}

// Prober reads installed versions. The provisioning, verify, and teardown
// engines depend on this interface so tests can inject fakes.
type Prober interface {
	Probe(ctx context.Context, tool manifest.ToolSpec) Result
}

// HostProber probes through a host runner.
type HostProber struct {
	Runner host.Runner
}

// Probe executes the tool's probe command and parses its output. The
// reported version is compared elsewhere by exact string equality.
func (p HostProber) Probe(ctx context.Context, tool manifest.ToolSpec) Result {
	if _, err := p.Runner.LookPath(tool.ProbeCommand[0]); err != nil {
		if errors.Is(err, host.ErrExecutableNotFound) {
			return Result{Tool: tool.Name}
		}
		return Result{Tool: tool.Name, Err: fmt.Errorf(messages.ProbeCommandFailedFmt, tool.Name, err)}
	}

	out, err := p.Runner.Run(ctx, tool.ProbeCommand)
	if err != nil {
		return Result{Tool: tool.Name, Err: fmt.Errorf(messages.ProbeCommandFailedFmt, tool.Name, err)}
	}

	// Patterns are code-defined in the manifest and validated at load, so
	// compilation cannot fail here.
	re := regexp.MustCompile(tool.ProbePattern)
	m := re.FindStringSubmatch(out)
	if len(m) < 2 {
		return Result{Tool: tool.Name, Err: fmt.Errorf(messages.ProbeUnparsableFmt, tool.Name, strings.TrimSpace(out))}
	}
	return Result{Tool: tool.Name, Installed: m[1]}
}
