// Package provision decides, per managed tool, whether to install, skip,
// upgrade, or report a mismatch, and performs those actions idempotently.
package provision

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/probe"
)

// Options controls one orchestrator run.
type Options struct {
	// Jobs bounds how many independent tools provision at once within a
	// dependency generation. Zero or one means fully sequential.
	Jobs int
	// Retries is how many extra attempts an ExecutionFailed install gets.
	// VerificationFailed is deterministic and never retried.
	Retries int
}

// Orchestrator drives install decisions across the manifest in dependency
// order. It holds no state between runs: every invocation re-probes the
// live host, so a run interrupted mid-install is repaired by the next run
// rather than rolled back.
type Orchestrator struct {
	Prober    probe.Prober
	Installer Installer
}

// Run processes every tool and returns the aggregate report in manifest
// order. Tools whose dependencies failed or were skipped are marked
// Skipped without an install attempt; unrelated tools keep provisioning.
func (o Orchestrator) Run(ctx context.Context, m *manifest.Manifest, opts Options) Report {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var mu sync.Mutex
	outcomes := make(map[string]ToolResult, len(m.Tools()))

	// Generations run sequentially; tools inside one generation have no
	// dependency relationship and may run concurrently. A tool therefore
	// never starts before all its dependencies have a terminal outcome.
	for _, gen := range m.Generations() {
		var g errgroup.Group
		g.SetLimit(jobs)
		for _, tool := range gen {
			// Same-generation goroutines write the map concurrently, so even
			// these dependency reads (always of earlier generations) take
			// the lock.
			mu.Lock()
			reason, blocked := dependencyBlocked(outcomes, tool)
			if blocked {
				outcomes[tool.Name] = ToolResult{Tool: tool.Name, Outcome: OutcomeSkipped, Detail: reason}
			}
			mu.Unlock()
			if blocked {
				continue
			}
			g.Go(func() error {
				res := o.provisionOne(ctx, tool, opts)
				mu.Lock()
				outcomes[tool.Name] = res
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	report := Report{Results: make([]ToolResult, 0, len(outcomes))}
	for _, tool := range m.Tools() {
		report.Results = append(report.Results, outcomes[tool.Name])
	}
	return report
}

// provisionOne runs the per-tool state machine: probe, compare, install,
// classify.
func (o Orchestrator) provisionOne(ctx context.Context, tool manifest.ToolSpec, opts Options) ToolResult {
	before := o.Prober.Probe(ctx, tool)
	if before.Installed == tool.TargetVersion && before.Err == nil {
		return ToolResult{
			Tool:    tool.Name,
			Outcome: OutcomeAlreadySatisfied,
			Detail:  fmt.Sprintf(messages.ProvisionAlreadyDetailFmt, before.Installed),
		}
	}

	// A probe error means the tool is present but broken. Reinstalling is
	// the repair path; skipping would leave the breakage in place.
	if err := o.installWithRetry(ctx, tool, opts.Retries); err != nil {
		return ToolResult{Tool: tool.Name, Outcome: OutcomeFailed, Err: err}
	}

	switch {
	case before.Err != nil:
		return ToolResult{
			Tool:    tool.Name,
			Outcome: OutcomeUpgraded,
			Detail:  fmt.Sprintf(messages.ProvisionRepairedDetailFmt, tool.TargetVersion),
		}
	case before.Missing():
		return ToolResult{
			Tool:    tool.Name,
			Outcome: OutcomeInstalled,
			Detail:  fmt.Sprintf(messages.ProvisionInstalledDetailFmt, tool.TargetVersion),
		}
	default:
		return ToolResult{
			Tool:    tool.Name,
			Outcome: OutcomeUpgraded,
			Detail:  fmt.Sprintf(messages.ProvisionUpgradedDetailFmt, before.Installed, tool.TargetVersion),
		}
	}
}

// installWithRetry retries ExecutionFailed installs up to retries extra
// times. Verification failures pass through immediately.
func (o Orchestrator) installWithRetry(ctx context.Context, tool manifest.ToolSpec, retries int) error {
	for attempt := 0; ; attempt++ {
		err := o.Installer.Install(ctx, tool)
		if err == nil {
			return nil
		}
		var ie *InstallError
		if !errors.As(err, &ie) || ie.Kind != ExecutionFailed || attempt >= retries {
			return err
		}
	}
}

// dependencyBlocked reports whether any dependency missed its desired end
// state. Dependencies always live in earlier generations, so their
// outcomes are final by the time this runs.
func dependencyBlocked(outcomes map[string]ToolResult, tool manifest.ToolSpec) (string, bool) {
	for _, dep := range tool.DependsOn {
		if res, ok := outcomes[dep]; ok && !res.Outcome.Success() {
			return fmt.Sprintf(messages.ProvisionSkippedDependencyFmt, dep), true
		}
	}
	return "", false
}
