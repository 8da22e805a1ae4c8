package messages

// Check command strings.
const (
	CheckUse   = "check"
	CheckShort = "Verify installed tool versions against the manifest"

	CheckHeaderFmt = "Checking korgs toolchain in %s\n"
	CheckAllMatch  = "All tools match their pinned versions."
	CheckFailed    = "toolchain check failed"

	CheckLineMatchFmt    = "%s %s at %s\n"
	CheckLineMismatchFmt = "%s %s installed %s, pinned %s\n"
	CheckLineMissingFmt  = "%s %s not installed (pinned %s)\n"
	CheckLineErrorFmt    = "%s %s: %v\n"

	StatusMatchLabel      = "[match]"
	StatusMismatchLabel   = "[mismatch]"
	StatusMissingLabel    = "[missing]"
	StatusProbeErrorLabel = "[error]"
)
