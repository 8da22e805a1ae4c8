package provision

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts Run results and records commands.
type fakeRunner struct {
	mu     sync.Mutex
	runErr error
	runs   [][]string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	return "/stub/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, argv []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, argv)
	return "", f.runErr
}

func TestInstallRunsCommandAndConfirms(t *testing.T) {
	tool := toolSpec("toolchain")
	runner := &fakeRunner{}
	prober := newFakeProber()
	prober.set("toolchain", installed("toolchain", "1.0.0"))

	err := HostInstaller{Runner: runner, Prober: prober}.Install(context.Background(), tool)
	require.NoError(t, err)
	require.Len(t, runner.runs, 1)
	assert.Equal(t, tool.InstallCommand, runner.runs[0])
}

func TestInstallExecutionFailure(t *testing.T) {
	tool := toolSpec("toolchain")
	runner := &fakeRunner{runErr: errors.New("exit status 1")}
	prober := newFakeProber()

	err := HostInstaller{Runner: runner, Prober: prober}.Install(context.Background(), tool)
	require.Error(t, err)

	var ie *InstallError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, ExecutionFailed, ie.Kind)
	assert.Equal(t, "toolchain", ie.Tool)
}

func TestInstallVerificationFailureOnMismatch(t *testing.T) {
	// The install command exits zero but the host ends up with a cached
	// different version. That is a failure, never a success.
	tool := toolSpec("toolchain")
	runner := &fakeRunner{}
	prober := newFakeProber()
	prober.set("toolchain", installed("toolchain", "0.9.9"))

	err := HostInstaller{Runner: runner, Prober: prober}.Install(context.Background(), tool)
	require.Error(t, err)

	var ie *InstallError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, VerificationFailed, ie.Kind)
}

func TestInstallVerificationFailureWhenStillMissing(t *testing.T) {
	tool := toolSpec("toolchain")
	runner := &fakeRunner{}
	prober := newFakeProber()
	prober.set("toolchain", missing("toolchain"))

	err := HostInstaller{Runner: runner, Prober: prober}.Install(context.Background(), tool)
	require.Error(t, err)

	var ie *InstallError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, VerificationFailed, ie.Kind)
}

func TestInstallVerificationFailureOnProbeError(t *testing.T) {
	tool := toolSpec("toolchain")
	runner := &fakeRunner{}
	prober := newFakeProber()
	prober.set("toolchain", broken("toolchain", errors.New("unreadable")))

	err := HostInstaller{Runner: runner, Prober: prober}.Install(context.Background(), tool)
	require.Error(t, err)

	var ie *InstallError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, VerificationFailed, ie.Kind)
}

func TestInstallErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &InstallError{Tool: "toolchain", Kind: ExecutionFailed, Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "toolchain")
}
