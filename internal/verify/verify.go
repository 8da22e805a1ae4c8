// Package verify is the read-only pass: it diffs installed tool versions
// against the manifest pins and never installs anything.
package verify

import (
	"context"

	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/probe"
)

// Status classifies one tool during a check.
type Status int

const (
	StatusMatch Status = iota
	StatusMismatch
	StatusMissing
	StatusProbeError
)

// String returns a stable lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusMismatch:
		return "mismatch"
	case StatusMissing:
		return "missing"
	case StatusProbeError:
		return "probe-error"
	}
	return "unknown"
}

// Result classifies one tool against its pin.
type Result struct {
	Tool      string
	Status    Status
	Installed string
	Target    string
	Err       error
}

// Report is the aggregate of one check pass, in manifest order.
type Report struct {
	Results []Result
}

// AllMatch reports whether every tool is at its pinned version.
func (r Report) AllMatch() bool {
	for _, res := range r.Results {
		if res.Status != StatusMatch {
			return false
		}
	}
	return true
}

// Run probes every tool in the manifest and classifies each result.
// Comparison is exact string equality: an installed 1.2.4 against a
// pinned 1.2.3 is a mismatch, never an implicit range match. Ordering
// follows the manifest only for stable output; nothing here mutates state.
func Run(ctx context.Context, p probe.Prober, m *manifest.Manifest) Report {
	tools := m.Tools()
	report := Report{Results: make([]Result, 0, len(tools))}
	for _, tool := range tools {
		res := p.Probe(ctx, tool)
		out := Result{Tool: tool.Name, Installed: res.Installed, Target: tool.TargetVersion, Err: res.Err}
		switch {
		case res.Err != nil:
			out.Status = StatusProbeError
		case res.Missing():
			out.Status = StatusMissing
		case res.Installed == tool.TargetVersion:
			out.Status = StatusMatch
		default:
			out.Status = StatusMismatch
		}
		report.Results = append(report.Results, out)
	}
	return report
}
