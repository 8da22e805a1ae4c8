package messages

// Teardown command strings.
const (
	TeardownUse   = "teardown"
	TeardownShort = "Remove every managed tool from the tools home"

	TeardownHeaderFmt       = "Removing korgs toolchain from %s\n"
	TeardownConfirmTitleFmt = "Remove all managed tools under %s?"
	TeardownAborted         = "Teardown aborted."
	TeardownComplete        = "All managed tools removed."
	TeardownIncomplete      = "teardown completed with failures"
	TeardownFlagYesUsage    = "skip the confirmation prompt"

	TeardownLineFmt            = "%s %s: %s\n"
	TeardownErrLineFmt         = "%s %s: %v\n"
	TeardownRemovedDetail      = "removed"
	TeardownNotInstalledDetail = "not installed, nothing to remove"
	TeardownRemoveFailedFmt    = "remove %s: %v"

	TeardownRemovedLabel = "[removed]"
	TeardownSkippedLabel = "[skipped]"
	TeardownFailedLabel  = "[failed]"
)
