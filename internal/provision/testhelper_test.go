package provision

import (
	"context"
	"sync"

	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/probe"
)

// fakeProber pops scripted results per tool; the last result is sticky so
// repeated probes observe the final state.
type fakeProber struct {
	mu      sync.Mutex
	results map[string][]probe.Result
	calls   map[string]int
}

func newFakeProber() *fakeProber {
	return &fakeProber{results: make(map[string][]probe.Result), calls: make(map[string]int)}
}

func (f *fakeProber) set(tool string, results ...probe.Result) {
	f.results[tool] = results
}

func (f *fakeProber) Probe(ctx context.Context, tool manifest.ToolSpec) probe.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[tool.Name]++
	q := f.results[tool.Name]
	if len(q) == 0 {
		return probe.Result{Tool: tool.Name}
	}
	res := q[0]
	if len(q) > 1 {
		f.results[tool.Name] = q[1:]
	}
	return res
}

// fakeInstaller pops scripted errors per tool; an exhausted queue means
// success.
type fakeInstaller struct {
	mu    sync.Mutex
	errs  map[string][]error
	calls map[string]int
}

func newFakeInstaller() *fakeInstaller {
	return &fakeInstaller{errs: make(map[string][]error), calls: make(map[string]int)}
}

func (f *fakeInstaller) fail(tool string, errs ...error) {
	f.errs[tool] = errs
}

func (f *fakeInstaller) Install(ctx context.Context, tool manifest.ToolSpec) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[tool.Name]++
	q := f.errs[tool.Name]
	if len(q) == 0 {
		return nil
	}
	err := q[0]
	f.errs[tool.Name] = q[1:]
	return err
}

func (f *fakeInstaller) installCount(tool string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[tool]
}

func toolSpec(name string, deps ...string) manifest.ToolSpec {
	return manifest.ToolSpec{
		Name:           name,
		TargetVersion:  "1.0.0",
		ProbeCommand:   []string{name, "--version"},
		ProbePattern:   `(\d+\.\d+\.\d+)`,
		InstallCommand: []string{"install", name},
		RemoveCommand:  []string{"remove", name},
		DependsOn:      deps,
	}
}

func mustManifest(specs ...manifest.ToolSpec) *manifest.Manifest {
	m, err := manifest.New(specs)
	if err != nil {
		panic(err)
	}
	return m
}

func installed(tool string, version string) probe.Result {
	return probe.Result{Tool: tool, Installed: version}
}

func missing(tool string) probe.Result {
	return probe.Result{Tool: tool}
}

func broken(tool string, err error) probe.Result {
	return probe.Result{Tool: tool, Err: err}
}
