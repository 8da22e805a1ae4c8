package provision

import "fmt"

// InstallErrorKind distinguishes how an install attempt failed.
type InstallErrorKind int

const (
	// ExecutionFailed means the install command could not run or exited
	// non-zero. The orchestrator may retry these.
	ExecutionFailed InstallErrorKind = iota
	// VerificationFailed means the install command reported success but
	// the post-install probe did not observe the target version. Never
	// treated as success and never retried.
	VerificationFailed
)

// InstallError reports a failed install attempt for one tool.
type InstallError struct {
	Tool  string
	Kind  InstallErrorKind
	Cause error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s: %v", e.Tool, e.Cause)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}
