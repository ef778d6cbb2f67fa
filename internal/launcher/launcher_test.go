package launcher_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pbxscope.dev/analyzer/internal/launcher"
)

type fakeResolver struct {
	known map[string]string
}

func (r *fakeResolver) LookPath(file string) (string, error) {
	if path, ok := r.known[file]; ok {
		return path, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

type fakeCall struct {
	name string
	args []string
}

type fakeRunner struct {
	calls    []fakeCall
	exitCode int
	err      error
}

func (r *fakeRunner) Run(name string, args ...string) (int, error) {
	r.calls = append(r.calls, fakeCall{name: name, args: args})
	return r.exitCode, r.err
}

func newLauncher(t *testing.T, resolver launcher.Resolver, runner launcher.Runner, withEntryPoint bool) (*launcher.Launcher, *bytes.Buffer) {
	workingDir := t.TempDir()
	if withEntryPoint {
		assert.NoError(t, os.WriteFile(filepath.Join(workingDir, "pbxlog.0"), []byte("[log]\n"), 0644))
	}
	output := &bytes.Buffer{}
	return &launcher.Launcher{
		Interpreter: "pbxscope",
		EntryPoint:  "pbxlog.0",
		WorkingDir:  workingDir,
		Input:       strings.NewReader("\n\n"),
		Output:      output,
		Resolver:    resolver,
		Runner:      runner,
	}, output
}

func TestInterpreterAbsent(t *testing.T) {
	runner := &fakeRunner{}
	instance, output := newLauncher(t, &fakeResolver{}, runner, true)

	assert.Equal(t, 1, instance.Execute())
	assert.Contains(t, output.String(), "pbxscope not found")
	assert.Contains(t, output.String(), "Please install pbxscope")
	assert.Contains(t, output.String(), "Press Enter to exit...")
	assert.Empty(t, runner.calls)
}

func TestInterpreterProbeFailure(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"pbxscope": "/usr/bin/pbxscope"}}
	runner := &fakeRunner{err: errors.New("broken binary")}
	instance, output := newLauncher(t, resolver, runner, true)

	assert.Equal(t, 1, instance.Execute())
	assert.Contains(t, output.String(), "not installed or not reachable")
	assert.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"--version"}, runner.calls[0].args)
}

func TestEntryPointMissing(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"pbxscope": "/usr/bin/pbxscope"}}
	runner := &fakeRunner{}
	instance, output := newLauncher(t, resolver, runner, false)

	assert.Equal(t, 1, instance.Execute())
	assert.Contains(t, output.String(), "pbxlog.0")
	assert.Contains(t, output.String(), "same directory as the launcher")
	// Only the version probe ran, never the entry point
	assert.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"--version"}, runner.calls[0].args)
}

func TestSuccessfulRun(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"pbxscope": "/usr/bin/pbxscope"}}
	runner := &fakeRunner{}
	instance, output := newLauncher(t, resolver, runner, true)

	assert.Equal(t, 0, instance.Execute())
	assert.Contains(t, output.String(), "Starting pbxscope pbxlog.0")
	assert.Contains(t, output.String(), "finished with status 0")
	assert.Contains(t, output.String(), "Press Enter to exit...")
	assert.Len(t, runner.calls, 2)
	assert.Equal(t, "pbxscope", runner.calls[1].name)
	assert.Equal(t, []string{filepath.Join(instance.WorkingDir, "pbxlog.0")}, runner.calls[1].args)
}

func TestChildFailureDoesNotChangeExitCode(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"pbxscope": "/usr/bin/pbxscope"}}
	runner := &fakeRunner{exitCode: 3}
	instance, output := newLauncher(t, resolver, runner, true)

	assert.Equal(t, 0, instance.Execute())
	assert.Contains(t, output.String(), "finished with status 3")
	assert.Contains(t, output.String(), "Press Enter to exit...")
}

func TestProbeOrdering(t *testing.T) {
	// Neither the interpreter nor the entry point exists. Only the
	// interpreter diagnostic may appear: its probe runs first.
	runner := &fakeRunner{}
	instance, output := newLauncher(t, &fakeResolver{}, runner, false)

	assert.Equal(t, 1, instance.Execute())
	assert.Contains(t, output.String(), "pbxscope not found")
	assert.NotContains(t, output.String(), "same directory as the launcher")
}

func TestIdempotence(t *testing.T) {
	resolver := &fakeResolver{known: map[string]string{"pbxscope": "/usr/bin/pbxscope"}}
	runner := &fakeRunner{}
	instance, _ := newLauncher(t, resolver, runner, true)

	first := instance.Execute()
	instance.Input = strings.NewReader("\n")
	second := instance.Execute()
	assert.Equal(t, first, second)
	// Each run performs exactly one probe and one execution
	assert.Len(t, runner.calls, 4)
	assert.Equal(t, runner.calls[:2], runner.calls[2:])
}
