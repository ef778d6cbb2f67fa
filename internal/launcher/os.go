package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// OSResolver resolves executables through the process search path.
type OSResolver struct{}

func (OSResolver) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// OSRunner spawns child processes with the console streams inherited,
// so the child's interactive behavior stays visible.
type OSRunner struct{}

func (OSRunner) Run(name string, args ...string) (exitCode int, err error) {
	command := exec.Command(name, args...)
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err = command.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return exitError.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
