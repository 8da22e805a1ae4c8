// Package teardown removes managed tools from the tools home, dependents
// before their dependencies. Removal is best-effort: one tool's failure is
// recorded and removal continues for the rest.
package teardown

import (
	"context"
	"fmt"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/probe"
)

// Result records one removal attempt.
type Result struct {
	Tool    string
	Removed bool
	Detail  string
	Err     error
}

// Report aggregates removal attempts in removal (reverse dependency)
// order.
type Report struct {
	Results []Result
}

// Failed reports whether any removal attempt errored. Missing tools do
// not count; nothing to remove is a clean result.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

// Run removes every managed tool in reverse topological order. A missing
// tool is recorded and skipped. A present-but-broken tool (probe error)
// still gets its remove command: teardown should clear broken installs,
// not trip over them.
func Run(ctx context.Context, runner host.Runner, p probe.Prober, m *manifest.Manifest) Report {
	var report Report
	for _, tool := range m.ReverseTools() {
		res := p.Probe(ctx, tool)
		if res.Missing() {
			report.Results = append(report.Results, Result{
				Tool:   tool.Name,
				Detail: messages.TeardownNotInstalledDetail,
			})
			continue
		}
		if _, err := runner.Run(ctx, tool.RemoveCommand); err != nil {
			report.Results = append(report.Results, Result{
				Tool: tool.Name,
				Err:  fmt.Errorf(messages.TeardownRemoveFailedFmt, tool.Name, err),
			})
			continue
		}
		report.Results = append(report.Results, Result{
			Tool:    tool.Name,
			Removed: true,
			Detail:  messages.TeardownRemovedDetail,
		})
	}
	return report
}
