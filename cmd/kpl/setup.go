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
	"github.com/levicook/korgs-program-library/internal/provision"
)

// ErrSetupIncomplete is returned when at least one tool missed its pinned
// version, so CI sees a non-zero exit.
var ErrSetupIncomplete = errors.New(messages.SetupIncomplete)

// setupRetries is how many extra attempts a failed-to-execute install
// command gets before its tool is reported Failed.
const setupRetries = 1

func newSetupCmd() *cobra.Command {
	var jobs int
	var overridesPath string

	cmd := &cobra.Command{
		Use:   messages.SetupUse,
		Short: messages.SetupShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			m, home, err := loadManifest(overridesPath)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.SetupHeaderFmt, home)

			runner := host.NewExecRunner(home)
			prober := probe.HostProber{Runner: runner}
			eng := provision.Orchestrator{
				Prober:    prober,
				Installer: provision.HostInstaller{Runner: runner, Prober: prober},
			}
			report := eng.Run(cmd.Context(), m, provision.Options{Jobs: jobs, Retries: setupRetries})

			for _, res := range report.Results {
				printProvisionResult(out, res)
			}
			if report.Failed() {
				return ErrSetupIncomplete
			}
			_, _ = fmt.Fprintln(out, messages.SetupComplete)
			return nil
		},
	}

	cmd.Flags().IntVar(&jobs, "jobs", 1, messages.FlagJobsUsage)
	cmd.Flags().StringVar(&overridesPath, "manifest", "", messages.FlagManifestUsage)
	return cmd
}

// printProvisionResult renders one tool's outcome with a colored status tag.
func printProvisionResult(out io.Writer, res provision.ToolResult) {
	var label string
	switch res.Outcome {
	case provision.OutcomeAlreadySatisfied:
		label = color.GreenString(messages.OutcomeAlreadySatisfiedLabel)
	case provision.OutcomeInstalled:
		label = color.GreenString(messages.OutcomeInstalledLabel)
	case provision.OutcomeUpgraded:
		label = color.GreenString(messages.OutcomeUpgradedLabel)
	case provision.OutcomeSkipped:
		label = color.YellowString(messages.OutcomeSkippedLabel)
	case provision.OutcomeFailed:
		label = color.RedString(messages.OutcomeFailedLabel)
	}

	detail := res.Detail
	if res.Err != nil {
		detail = res.Err.Error()
	}
	_, _ = fmt.Fprintf(out, messages.SetupResultLineFmt, label, res.Tool, detail)
}
