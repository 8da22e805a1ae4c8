// Package host executes tool commands against the machine being
// provisioned.
//
// The Runner interface is intentionally package-local so the probe,
// provisioning, and teardown engines can be unit-tested with fakes and
// never touch the host. ExecRunner is the only implementation that runs
// real subprocesses.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/levicook/korgs-program-library/internal/messages"
)

// ErrExecutableNotFound reports that a command's executable is absent from
// the confined PATH. Probes treat this as "not installed", not a failure.
var ErrExecutableNotFound = errors.New(messages.HostExecutableNotFound)

// Runner executes tool commands.
type Runner interface {
	// LookPath reports the absolute path of an executable on the confined
	// PATH, or an error wrapping ErrExecutableNotFound.
	LookPath(name string) (string, error)
	// Run executes argv and returns its combined output. A non-zero exit
	// is an error carrying the command and cause.
	Run(ctx context.Context, argv []string) (string, error)
}

// ExecRunner runs commands with an environment confined to the tools home:
// CARGO_HOME, RUSTUP_HOME, and the PATH prefix all resolve under it, so
// installs land in one removable root and teardown stays precise.
//
// Concurrent kpl invocations against the same home are undefined behavior;
// the runner takes no lock and relies on the install commands' own
// single-writer semantics.
type ExecRunner struct {
	home string
	path string
	env  []string
}

// NewExecRunner builds a runner rooted at the tools home directory.
func NewExecRunner(home string) *ExecRunner {
	path := strings.Join([]string{
		filepath.Join(home, "cargo", "bin"),
		filepath.Join(home, "solana", "bin"),
		os.Getenv("PATH"),
	}, string(os.PathListSeparator))

	env := append(os.Environ(),
		EnvToolsHome+"="+home,
		"CARGO_HOME="+filepath.Join(home, "cargo"),
		"RUSTUP_HOME="+filepath.Join(home, "rustup"),
		"PATH="+path,
	)
	return &ExecRunner{home: home, path: path, env: env}
}

// Home returns the tools home the runner is confined to.
func (r *ExecRunner) Home() string {
	return r.home
}

// LookPath searches the confined PATH for name. exec.LookPath consults the
// process PATH, which does not include the tools home, so the search is
// done against the runner's own PATH value.
func (r *ExecRunner) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) {
		if isExecutable(name) {
			return name, nil
		}
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}
	for _, dir := range filepath.SplitList(r.path) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
}

// Run executes argv with the confined environment and returns combined
// stdout and stderr. No timeout is imposed; a hung command blocks until
// ctx is canceled.
func (r *ExecRunner) Run(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New(messages.HostEmptyCommand)
	}
	path, err := r.LookPath(argv[0])
	if err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Env = r.env
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf(messages.HostCommandFailedFmt, strings.Join(argv, " "), err)
	}
	return string(out), nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
