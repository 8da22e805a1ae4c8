package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/levicook/korgs-program-library/internal/host"
	"github.com/levicook/korgs-program-library/internal/messages"
	"github.com/levicook/korgs-program-library/internal/probe"
	"github.com/levicook/korgs-program-library/internal/verify"
)

// ErrCheckFailed is returned when any tool is not at its pinned version.
var ErrCheckFailed = errors.New(messages.CheckFailed)

func newCheckCmd() *cobra.Command {
	var overridesPath string

	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m, home, err := loadManifest(overridesPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.CheckHeaderFmt, home)

			prober := probe.HostProber{Runner: host.NewExecRunner(home)}
			report := verify.Run(cmd.Context(), prober, m)

			for _, res := range report.Results {
				printCheckResult(out, res)
			}
			if !report.AllMatch() {
				return ErrCheckFailed
			}
			_, _ = fmt.Fprintln(out, messages.CheckAllMatch)
			return nil
		},
	}

	cmd.Flags().StringVar(&overridesPath, "manifest", "", messages.FlagManifestUsage)
	return cmd
}

// printCheckResult renders one tool's classification with a colored status tag.
func printCheckResult(out io.Writer, res verify.Result) {
	switch res.Status {
	case verify.StatusMatch:
		_, _ = fmt.Fprintf(out, messages.CheckLineMatchFmt,
			color.GreenString(messages.StatusMatchLabel), res.Tool, res.Installed)
	case verify.StatusMismatch:
		_, _ = fmt.Fprintf(out, messages.CheckLineMismatchFmt,
			color.RedString(messages.StatusMismatchLabel), res.Tool, res.Installed, res.Target)
	case verify.StatusMissing:
		_, _ = fmt.Fprintf(out, messages.CheckLineMissingFmt,
			color.YellowString(messages.StatusMissingLabel), res.Tool, res.Target)
	case verify.StatusProbeError:
		_, _ = fmt.Fprintf(out, messages.CheckLineErrorFmt,
			color.RedString(messages.StatusProbeErrorLabel), res.Tool, res.Err)
	}
}
