package main

import (
	"github.com/spf13/cobra"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/manifest"
	"github.com/levicook/korgs-program-library/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSetupCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newTeardownCmd())
	return cmd
}

var resolveToolsHomeFunc = host.ResolveToolsHome

// loadManifest resolves the tools home and builds the validated manifest,
// applying version overrides from overridesPath. An empty overridesPath
// means the default file in the working directory, which is optional.
func loadManifest(overridesPath string) (*manifest.Manifest, string, error) {
	home, err := resolveToolsHomeFunc()
	if err != nil {
		return nil, "", err
	}
	if overridesPath == "" {
		overridesPath = manifest.DefaultOverridesFile
	}
	ov, err := manifest.LoadOverrides(overridesPath)
	if err != nil {
		return nil, "", err
	}
	m, err := manifest.Load(home, ov)
	if err != nil {
		return nil, "", err
	}
	return m, home, nil
}
