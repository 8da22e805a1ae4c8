package messages

// Root command and version strings.
const (
	// RootUse is the root command name.
	RootUse   = "kpl"
	RootShort = "Manage the pinned korgs workspace toolchain"
	RootLong  = "kpl provisions, verifies, and removes the pinned developer toolchain\n" +
		"for the korgs program workspace, so every contributor and CI run builds\n" +
		"against identical tool versions."

	VersionTemplate  = "kpl {{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	FlagManifestUsage = "path to the version override file"
	FlagJobsUsage     = "maximum number of independent tools to provision at once"
)
