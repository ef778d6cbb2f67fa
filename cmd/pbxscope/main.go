package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"pbxscope.dev/analyzer/internal/analyzer"
	"pbxscope.dev/analyzer/internal/configloader"
	"pbxscope.dev/analyzer/internal/database"
	"pbxscope.dev/analyzer/internal/database/delegate/sqlite"
	"pbxscope.dev/analyzer/internal/menu"
	"pbxscope.dev/analyzer/internal/report"
	"pbxscope.dev/analyzer/internal/settings"
)

// Name of the current application. Used to load the configuration.
const APPLICATION_NAME = "pbxscope"

// Settings file persisted next to the binary between sessions.
const SETTINGS_FILE_NAME = "pbxscope.cfg"

var configurationFilePath string

func main() {
	rootCommand := &cobra.Command{
		Use:     "pbxscope [logfile]",
		Short:   "PBX log analysis console",
		Long:    "Parses Yeastar PBX log dumps into a local database and serves reports, searches and statistics over the stored data.",
		Version: applicationVersion(),
		Args:    cobra.MaximumNArgs(1),
		RunE:    runConsole,
	}
	rootCommand.PersistentFlags().StringVar(&configurationFilePath, "config", "", "Configuration file path")

	parseCommand := &cobra.Command{
		Use:   "parse <logfile>",
		Short: "Parse a log file into the analysis database",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}

	reportCommand := &cobra.Command{
		Use:   "report",
		Short: "Generate an HTML report from the stored data",
		RunE:  runReport,
	}
	reportCommand.Flags().StringP("output", "o", "pbx_analysis_report.html", "Report output path")

	rootCommand.AddCommand(parseCommand, reportCommand)
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func applicationVersion() string {
	if buildInfo, ok := debug.ReadBuildInfo(); ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}
	return "(devel)"
}

// boot loads the configuration, syncs the settings file and brings the
// database engine up. The returned settings already include any
// configuration overrides.
func boot() (databaseEngine *database.Database, current settings.Settings, err error) {
	var configuration configloader.Config
	if configuration, err = configloader.LoadConfiguration(APPLICATION_NAME, configurationFilePath); err != nil {
		return
	}
	var level logrus.Level
	if level, err = logrus.ParseLevel(configuration.LogLevel); err != nil {
		return
	}
	logrus.SetLevel(level)

	if current, err = settings.Sync(SETTINGS_FILE_NAME); err != nil {
		return
	}
	defaults := settings.Default()
	if configuration.DatabasePath != defaults.DatabasePath {
		current.DatabasePath = configuration.DatabasePath
	}
	if configuration.ChunkSize != defaults.ChunkSize {
		current.ChunkSize = configuration.ChunkSize
	}
	if configuration.MaxWorkers != defaults.MaxWorkers {
		current.MaxWorkers = configuration.MaxWorkers
	}

	databaseEngine = database.NewDatabase(current.DatabasePath, &sqlite.SQLiteDelegate{})
	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go databaseEngine.Initialize(&waitGroup)
	waitGroup.Wait()
	return
}

func newAnalyzer(databaseEngine *database.Database, current settings.Settings) *analyzer.Analyzer {
	analyzerEngine := analyzer.NewAnalyzer(databaseEngine.Delegate(), current.ChunkSize, current.MaxWorkers)
	analyzerEngine.ProgressEventEmitter.Subscribe(func(progress analyzer.ChunkProgress) {
		logrus.Debugf("Chunk %d stored: %d log entries, %d call records",
			progress.ChunkID, progress.LogEntries, progress.CallRecords)
	})
	return analyzerEngine
}

func runConsole(command *cobra.Command, args []string) error {
	databaseEngine, current, err := boot()
	if err != nil {
		return err
	}
	defer databaseEngine.Deinitialize()

	analyzerEngine := newAnalyzer(databaseEngine, current)
	if len(args) == 1 {
		summary, parseError := analyzerEngine.ParseLogFile(args[0])
		if parseError != nil {
			return parseError
		}
		fmt.Printf("Parsed %d lines from %s\n", summary.Lines, args[0])
	}

	console := menu.NewMenu(os.Stdin, os.Stdout, databaseEngine, analyzerEngine, SETTINGS_FILE_NAME, current)
	console.Run()
	return nil
}

func runParse(command *cobra.Command, args []string) error {
	databaseEngine, current, err := boot()
	if err != nil {
		return err
	}
	defer databaseEngine.Deinitialize()

	summary, err := newAnalyzer(databaseEngine, current).ParseLogFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d lines: %d log entries, %d call records, %d SIP messages, %d registration events, %d system events\n",
		summary.Lines, summary.LogEntries, summary.CallRecords,
		summary.SIPMessages, summary.RegistrationEvents, summary.SystemEvents)
	return nil
}

func runReport(command *cobra.Command, args []string) error {
	databaseEngine, _, err := boot()
	if err != nil {
		return err
	}
	defer databaseEngine.Deinitialize()

	hasData, err := databaseEngine.HasData()
	if err != nil {
		return err
	}
	if !hasData {
		return fmt.Errorf("no data stored, parse a log file first")
	}

	outputPath, _ := command.Flags().GetString("output")
	generator := report.NewGenerator(databaseEngine.Delegate())
	if err = generator.GenerateHTML(outputPath, ""); err != nil {
		return err
	}
	fmt.Println("Report written to", outputPath)
	return nil
}
