package messages

// Host execution and tools-home resolution.
const (
	HostExecutableNotFound = "executable not found"
	HostCommandFailedFmt   = "command %q failed: %v"
	HostEmptyCommand       = "empty command"
	HostHomeDirErrFmt      = "resolve user home directory: %v"
)
