package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Failure kinds for the two pre-flight probes. Both are fatal.
var (
	ErrInterpreterNotFound = errors.New("interpreter not installed or not reachable")
	ErrEntryPointMissing   = errors.New("entry point file missing")
)

// Resolver resolves an executable by logical name using the host's
// standard resolution rule.
type Resolver interface {
	LookPath(file string) (string, error)
}

// Runner delegates to an external program and waits for completion,
// passing through interactive I/O.
type Runner interface {
	Run(name string, args ...string) (exitCode int, err error)
}

// Launcher walks the pre-flight/execute/post-flight sequence: probe
// the interpreter, probe the entry point file, run the child with the
// console inherited, then hold the terminal open so transient output
// stays readable.
type Launcher struct {
	Interpreter string
	EntryPoint  string
	WorkingDir  string

	Input  io.Reader
	Output io.Writer

	Resolver Resolver
	Runner   Runner
}

// Execute runs the whole sequence and returns the process exit code:
// 1 when either probe fails, 0 once execution was attempted. The
// child's own exit status is surfaced on the console but never acted
// on.
func (l *Launcher) Execute() int {
	if err := l.checkInterpreter(); err != nil {
		fmt.Fprintf(l.Output, "%s not found: %s\n", l.Interpreter, err)
		fmt.Fprintf(l.Output, "Please install %s and make sure it is on your PATH.\n", l.Interpreter)
		l.hold()
		return 1
	}

	entryPointPath := filepath.Join(l.WorkingDir, l.EntryPoint)
	if err := l.checkEntryPoint(entryPointPath); err != nil {
		fmt.Fprintf(l.Output, "%s: %s\n", l.EntryPoint, err)
		fmt.Fprintf(l.Output, "Place %s in the same directory as the launcher and run it again.\n", l.EntryPoint)
		l.hold()
		return 1
	}

	fmt.Fprintf(l.Output, "Starting %s %s\n", l.Interpreter, l.EntryPoint)
	exitCode, err := l.Runner.Run(l.Interpreter, entryPointPath)
	if err != nil {
		fmt.Fprintf(l.Output, "Run failed: %s\n", err)
	} else {
		fmt.Fprintf(l.Output, "%s finished with status %d\n", l.Interpreter, exitCode)
	}
	l.hold()
	return 0
}

func (l *Launcher) checkInterpreter() (err error) {
	if _, err = l.Resolver.LookPath(l.Interpreter); err != nil {
		return ErrInterpreterNotFound
	}
	if _, err = l.Runner.Run(l.Interpreter, "--version"); err != nil {
		return ErrInterpreterNotFound
	}
	return
}

func (l *Launcher) checkEntryPoint(entryPointPath string) error {
	if _, err := os.Stat(entryPointPath); err != nil {
		return ErrEntryPointMissing
	}
	return nil
}

// hold keeps the console window open until the user presses Enter.
func (l *Launcher) hold() {
	fmt.Fprint(l.Output, "Press Enter to exit...")
	reader := bufio.NewReader(l.Input)
	reader.ReadString('\n')
	fmt.Fprintln(l.Output)
}
