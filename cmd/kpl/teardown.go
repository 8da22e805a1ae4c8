package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/probe"
	"github.com/levicook/korgs-program-library/internal/teardown"
)

// ErrTeardownIncomplete is returned when at least one removal failed.
var ErrTeardownIncomplete = errors.New(messages.TeardownIncomplete)

var confirmTeardownFunc = promptTeardownConfirm

func newTeardownCmd() *cobra.Command {
	var yes bool
	var overridesPath string

	cmd := &cobra.Command{
		Use:   messages.TeardownUse,
		Short: messages.TeardownShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m, home, err := loadManifest(overridesPath)
			if err != nil {
				return err
			}

			if !yes {
				confirmed, err := confirmTeardownFunc(home)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(out, messages.TeardownAborted)
					return nil
				}
			}
			_, _ = fmt.Fprintf(out, messages.TeardownHeaderFmt, home)

			runner := host.NewExecRunner(home)
			prober := probe.HostProber{Runner: runner}
			report := teardown.Run(cmd.Context(), runner, prober, m)

			for _, res := range report.Results {
				printTeardownResult(out, res)
			}
			if report.Failed() {
				return ErrTeardownIncomplete
			}
			_, _ = fmt.Fprintln(out, messages.TeardownComplete)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, messages.TeardownFlagYesUsage)
	cmd.Flags().StringVar(&overridesPath, "manifest", "", messages.FlagManifestUsage)
	return cmd
}

// promptTeardownConfirm asks before removing anything. Teardown deletes
// directories under the tools home, so it never proceeds silently unless
// --yes was given.
func promptTeardownConfirm(home string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf(messages.TeardownConfirmTitleFmt, home)).
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// printTeardownResult renders one removal attempt with a colored status tag.
func printTeardownResult(out io.Writer, res teardown.Result) {
	switch {
	case res.Err != nil:
		_, _ = fmt.Fprintf(out, messages.TeardownErrLineFmt,
			color.RedString(messages.TeardownFailedLabel), res.Tool, res.Err)
	case res.Removed:
		_, _ = fmt.Fprintf(out, messages.TeardownLineFmt,
			color.GreenString(messages.TeardownRemovedLabel), res.Tool, res.Detail)
	default:
		_, _ = fmt.Fprintf(out, messages.TeardownLineFmt,
			color.YellowString(messages.TeardownSkippedLabel), res.Tool, res.Detail)
	}
}
