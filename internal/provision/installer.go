package provision

import (
	"context"
	"fmt"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/probe"
)

// Installer brings a single tool to its pinned version.
type Installer interface {
	Install(ctx context.Context, tool manifest.ToolSpec) error
}

// HostInstaller runs a tool's install command and confirms the result with
// a fresh probe. An exit-zero install command is not trusted on its own:
// installers that silently no-op or serve a cached different version are
// caught by the confirmation probe.
//
// Install is safe to call on an already-correct host. Install commands
// target the exact pinned version, so the worst case is reinstalling over
// itself.
type HostInstaller struct {
	Runner host.Runner
	Prober probe.Prober
}

// Install executes the tool's install command and requires the follow-up
// probe to report exactly the target version.
func (i HostInstaller) Install(ctx context.Context, tool manifest.ToolSpec) error {
	if _, err := i.Runner.Run(ctx, tool.InstallCommand); err != nil {
		return &InstallError{Tool: tool.Name, Kind: ExecutionFailed, Cause: err}
	}

	res := i.Prober.Probe(ctx, tool)
	switch {
	case res.Err != nil:
		return &InstallError{Tool: tool.Name, Kind: VerificationFailed, Cause: res.Err}
	case res.Missing():
		return &InstallError{
			Tool:  tool.Name,
			Kind:  VerificationFailed,
			Cause: fmt.Errorf(messages.ProvisionConfirmMissingFmt, tool.Name),
		}
	case res.Installed != tool.TargetVersion:
		return &InstallError{
			Tool:  tool.Name,
			Kind:  VerificationFailed,
			Cause: fmt.Errorf(messages.ProvisionConfirmMismatchFmt, tool.Name, res.Installed, tool.TargetVersion),
		}
	}
	return nil
}
