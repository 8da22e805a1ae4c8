package messages

// Setup command strings.
const (
	SetupUse   = "setup"
	SetupShort = "Install or upgrade every pinned tool"

	SetupHeaderFmt  = "Provisioning korgs toolchain into %s\n"
	SetupComplete   = "All tools are at their pinned versions."
	SetupIncomplete = "setup completed with failures"

	SetupResultLineFmt = "%s %s: %s\n"

	OutcomeAlreadySatisfiedLabel = "[ok]"
	OutcomeInstalledLabel        = "[installed]"
	OutcomeUpgradedLabel         = "[upgraded]"
	OutcomeFailedLabel           = "[failed]"
	OutcomeSkippedLabel          = "[skipped]"
)
