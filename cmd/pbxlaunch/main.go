package main

import (
	"os"

	"pbxscope.dev/analyzer/internal/launcher"
)

// Baked-in launch targets: the analyzer runtime to probe and the log
// dump it is handed.
const (
	interpreterName = "pbxscope"
	entryPointName  = "pbxlog.0"
)

func main() {
	workingDir, err := os.Getwd()
	if err != nil {
		workingDir = "."
	}
	instance := &launcher.Launcher{
		Interpreter: interpreterName,
		EntryPoint:  entryPointName,
		WorkingDir:  workingDir,
		Input:       os.Stdin,
		Output:      os.Stdout,
		Resolver:    launcher.OSResolver{},
		Runner:      launcher.OSRunner{},
	}
	os.Exit(instance.Execute())
}
