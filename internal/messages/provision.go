package messages

// Probe, installer, and orchestrator strings.
const (
	ProbeCommandFailedFmt = "probe %s: %v"
	ProbeUnparsableFmt    = "probe %s: could not parse a version from output %q"

	ProvisionConfirmMissingFmt  = "install command reported success but %s is still missing"
	ProvisionConfirmMismatchFmt = "install command left %s at %s, want %s"

	ProvisionAlreadyDetailFmt     = "already at %s"
	ProvisionInstalledDetailFmt   = "installed %s"
	ProvisionUpgradedDetailFmt    = "upgraded %s -> %s"
	ProvisionRepairedDetailFmt    = "repaired broken install, now at %s"
	ProvisionSkippedDependencyFmt = "dependency failed: %s"
)
