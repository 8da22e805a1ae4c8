package manifest

import (
	"fmt"
	"strings"

	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/version"
)

// Built-in tool names.
const (
	ToolRust          = "rust"
	ToolCargoBinstall = "cargo-binstall"
	ToolSBFLinker     = "sbf-linker"
	ToolSolana        = "solana"
)

// toolTemplate is a built-in tool definition before version overrides and
// placeholder expansion. Command elements may contain {version} and {home}.
type toolTemplate struct {
	name           string
	version        string
	dependsOn      []string
	probeCommand   []string
	probePattern   string
	installCommand []string
	removeCommand  []string
}

// builtins is the fixed tool table for the korgs workspace. The version
// numbers are the only externally configurable data; command shapes are
// not user-configurable.
//
// rustup default both installs the pinned toolchain and selects it, so the
// post-install probe observes the target. The linker plugin installs
// through cargo-binstall, which is why it depends on both the toolchain
// and the binary installer.
var builtins = []toolTemplate{
	{
		name:           ToolRust,
		version:        "1.92.0",
		probeCommand:   []string{"rustc", "--version"},
		probePattern:   `rustc (\d+\.\d+\.\d+)`,
		installCommand: []string{"rustup", "default", "{version}"},
		removeCommand:  []string{"rustup", "toolchain", "uninstall", "{version}"},
	},
	{
		name:           ToolCargoBinstall,
		version:        "1.10.8",
		dependsOn:      []string{ToolRust},
		probeCommand:   []string{"cargo-binstall", "-V"},
		probePattern:   `(\d+\.\d+\.\d+)`,
		installCommand: []string{"cargo", "install", "cargo-binstall", "--version", "{version}", "--locked"},
		removeCommand:  []string{"cargo", "uninstall", "cargo-binstall"},
	},
	{
		name:           ToolSBFLinker,
		version:        "0.1.6",
		dependsOn:      []string{ToolRust, ToolCargoBinstall},
		probeCommand:   []string{"sbpf-linker", "--version"},
		probePattern:   `(\d+\.\d+\.\d+)`,
		installCommand: []string{"cargo-binstall", "sbpf-linker", "--version", "{version}", "--no-confirm"},
		removeCommand:  []string{"cargo", "uninstall", "sbpf-linker"},
	},
	{
		name:           ToolSolana,
		version:        "2.1.4",
		probeCommand:   []string{"solana", "--version"},
		probePattern:   `solana-cli (\d+\.\d+\.\d+)`,
		installCommand: []string{"solana-install", "init", "{version}"},
		removeCommand:  []string{"rm", "-rf", "{home}/solana"},
	},
}

// Load builds the manifest for the korgs workspace: the built-in tool
// table with ov's version overrides applied and {version}/{home}
// placeholders expanded against home.
func Load(home string, ov Overrides) (*Manifest, error) {
	versions := make(map[string]string, len(builtins))
	for _, tpl := range builtins {
		versions[tpl.name] = tpl.version
	}
	for name, v := range ov.Versions {
		if _, ok := versions[name]; !ok {
			return nil, fmt.Errorf(messages.ManifestUnknownOverrideFmt, ErrManifest, name)
		}
		versions[name] = v
	}

	specs := make([]ToolSpec, 0, len(builtins))
	for _, tpl := range builtins {
		target, err := version.Normalize(versions[tpl.name])
		if err != nil {
			return nil, fmt.Errorf(messages.ManifestToolVersionFmt, ErrManifest, tpl.name, err)
		}
		specs = append(specs, ToolSpec{
			Name:           tpl.name,
			TargetVersion:  target,
			ProbeCommand:   expand(tpl.probeCommand, target, home),
			ProbePattern:   tpl.probePattern,
			InstallCommand: expand(tpl.installCommand, target, home),
			RemoveCommand:  expand(tpl.removeCommand, target, home),
			DependsOn:      append([]string(nil), tpl.dependsOn...),
		})
	}
	return New(specs)
}

// expand substitutes {version} and {home} in each command element.
func expand(argv []string, target string, home string) []string {
	out := make([]string, len(argv))
	for i, arg := range argv {
		arg = strings.ReplaceAll(arg, "{version}", target)
		arg = strings.ReplaceAll(arg, "{home}", home)
		out[i] = arg
	}
	return out
}
