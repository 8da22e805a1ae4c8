package provision

// Outcome is the terminal state of one tool in one orchestrator run.
// Outcomes are never persisted; every run recomputes state from the live
// host, which is the only source of truth.
type Outcome int

const (
	OutcomeAlreadySatisfied Outcome = iota
	OutcomeInstalled
	OutcomeUpgraded
	OutcomeFailed
	OutcomeSkipped
)

// String returns a stable lowercase name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadySatisfied:
		return "already-satisfied"
	case OutcomeInstalled:
		return "installed"
	case OutcomeUpgraded:
		return "upgraded"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Success reports whether the tool reached the desired end state.
// Skipped counts as failure at the aggregate level: the pinned version is
// not on the host.
func (o Outcome) Success() bool {
	switch o {
	case OutcomeAlreadySatisfied, OutcomeInstalled, OutcomeUpgraded:
		return true
	}
	return false
}

// ToolResult is one tool's outcome with human-readable detail.
type ToolResult struct {
	Tool    string
	Outcome Outcome
	Detail  string
	Err     error
}

// Report aggregates per-tool results for one run, in manifest order.
type Report struct {
	Results []ToolResult
}

// Failed reports whether any tool missed its desired end state.
func (r Report) Failed() bool {
	for _, res := range r.Results {
		if !res.Outcome.Success() {
			return true
		}
	}
	return false
}

// Result returns the entry for the named tool.
func (r Report) Result(name string) (ToolResult, bool) {
	for _, res := range r.Results {
		if res.Tool == name {
			return res, true
		}
	}
	return ToolResult{}, false
}
