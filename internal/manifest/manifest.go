// Package manifest declares the managed tool set: identities, pinned
// versions, and the probe/install/remove commands for each tool.
//
// A Manifest is loaded and validated once per invocation and never mutated
// afterwards. Validation is fail-fast: duplicate names, unknown
// dependencies, and dependency cycles are rejected before any host
// mutation can happen.
package manifest

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/levicook/korgs-program-library/internal/messages"
)

// ErrManifest marks any manifest validation failure.
var ErrManifest = errors.New(messages.ManifestInvalid)

// ToolSpec describes one managed tool: how to read its installed version,
// how to install the pinned version, and how to remove it.
//
// ProbePattern is a regular expression whose first capture group yields
// the installed version from the probe command's output. Command shapes
// and patterns are code-defined; only TargetVersion is externally
// configurable.
type ToolSpec struct {
	Name           string
	TargetVersion  string
	ProbeCommand   []string
	ProbePattern   string
	InstallCommand []string
	RemoveCommand  []string
	DependsOn      []string
}

// Manifest is the validated, immutable tool set for one run.
type Manifest struct {
	tools []ToolSpec // topological order
	index map[string]int
}

// New validates specs and returns a Manifest whose tools are in
// topological order: each tool appears after everything in its DependsOn
// set. The input order is preserved among independent tools.
func New(specs []ToolSpec) (*Manifest, error) {
	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		if _, dup := index[spec.Name]; dup {
			return nil, fmt.Errorf(messages.ManifestDuplicateToolFmt, ErrManifest, spec.Name)
		}
		index[spec.Name] = i
	}
	for _, spec := range specs {
		for _, dep := range spec.DependsOn {
			if _, ok := index[dep]; !ok {
				return nil, fmt.Errorf(messages.ManifestUnknownDependencyFmt, ErrManifest, spec.Name, dep)
			}
		}
		if spec.ProbePattern != "" {
			if _, err := regexp.Compile(spec.ProbePattern); err != nil {
				return nil, fmt.Errorf(messages.ManifestToolVersionFmt, ErrManifest, spec.Name, err)
			}
		}
	}

	ordered, err := topoSort(specs, index)
	if err != nil {
		return nil, err
	}

	m := &Manifest{tools: ordered, index: make(map[string]int, len(ordered))}
	for i, tool := range ordered {
		m.index[tool.Name] = i
	}
	return m, nil
}

// Tools returns the tool set in topological order.
func (m *Manifest) Tools() []ToolSpec {
	return append([]ToolSpec(nil), m.tools...)
}

// ReverseTools returns the tool set in reverse topological order,
// dependents before their dependencies. Teardown removes in this order.
func (m *Manifest) ReverseTools() []ToolSpec {
	out := make([]ToolSpec, 0, len(m.tools))
	for i := len(m.tools) - 1; i >= 0; i-- {
		out = append(out, m.tools[i])
	}
	return out
}

// Lookup returns the spec for name.
func (m *Manifest) Lookup(name string) (ToolSpec, bool) {
	i, ok := m.index[name]
	if !ok {
		return ToolSpec{}, false
	}
	return m.tools[i], true
}

// Generations groups tools into dependency generations: every tool in
// generation n depends only on tools in generations before n. Tools within
// one generation are mutually independent and may provision concurrently.
func (m *Manifest) Generations() [][]ToolSpec {
	level := make(map[string]int, len(m.tools))
	maxLevel := 0
	for _, tool := range m.tools {
		l := 0
		for _, dep := range tool.DependsOn {
			if dl := level[dep] + 1; dl > l {
				l = dl
			}
		}
		level[tool.Name] = l
		if l > maxLevel {
			maxLevel = l
		}
	}
	gens := make([][]ToolSpec, maxLevel+1)
	for _, tool := range m.tools {
		l := level[tool.Name]
		gens[l] = append(gens[l], tool)
	}
	return gens
}

// topoSort orders specs so dependencies come first, preserving input order
// among ready tools, and rejects cycles.
func topoSort(specs []ToolSpec, index map[string]int) ([]ToolSpec, error) {
	const (
		white = iota // unvisited
		gray         // on the current DFS path
		black        // done
	)
	colors := make([]int, len(specs))
	ordered := make([]ToolSpec, 0, len(specs))

	var visit func(i int) error
	visit = func(i int) error {
		switch colors[i] {
		case black:
			return nil
		case gray:
			return fmt.Errorf(messages.ManifestCycleFmt, ErrManifest, specs[i].Name)
		}
		colors[i] = gray
		for _, dep := range specs[i].DependsOn {
			if err := visit(index[dep]); err != nil {
				return err
			}
		}
		colors[i] = black
		ordered = append(ordered, specs[i])
		return nil
	}

	for i := range specs {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}
