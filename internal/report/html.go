package report

import (
	"html/template"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"pbxscope.dev/analyzer/internal/database/delegate"
	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/helpers"
)

const recentCallsInReport = 50

// reportData feeds the HTML template.
type reportData struct {
	GeneratedAt         string
	SourceLog           string
	TableCounts         []delegate.TableCount
	Durations           delegate.DurationStats
	AvgDurationReadable string
	Dispositions        []delegate.DispositionCount
	TopCallers          []delegate.CallerCount
	RecentCalls         []entity.CallRecord
	RegistrationSummary []delegate.EventTypeCount
	ErrorSummary        []delegate.CategoryCount
}

// Generator renders the analysis report.
type Generator struct {
	delegate delegate.DatabaseDelegate
}

func NewGenerator(databaseDelegate delegate.DatabaseDelegate) (instance *Generator) {
	instance = &Generator{delegate: databaseDelegate}
	return
}

// GenerateHTML writes the full report to outputPath.
func (g *Generator) GenerateHTML(outputPath string, sourceLog string) (err error) {
	data := reportData{
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
		SourceLog:   sourceLog,
	}
	if data.TableCounts, err = g.delegate.TableCounts(); err != nil {
		return
	}
	if data.Durations, err = g.delegate.CallDurationStats(); err != nil {
		return
	}
	data.AvgDurationReadable = helpers.FormatDuration(int(data.Durations.AvgDuration))
	if data.Dispositions, err = g.delegate.DispositionCounts(); err != nil {
		return
	}
	if data.TopCallers, err = g.delegate.TopCallers(10); err != nil {
		return
	}
	if data.RecentCalls, err = g.delegate.RecentCallRecords(recentCallsInReport); err != nil {
		return
	}
	if data.RegistrationSummary, err = g.delegate.RegistrationSummary(); err != nil {
		return
	}
	if data.ErrorSummary, err = g.delegate.ErrorSummary(); err != nil {
		return
	}

	var output *os.File
	if output, err = os.Create(outputPath); err != nil {
		return
	}
	defer output.Close()

	if err = reportTemplate.Execute(output, data); err != nil {
		return
	}
	logrus.Info("Report written to ", outputPath)
	return
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>PBX Log Analysis Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.2em; }
h2 { margin-top: 1.6em; }
table { border-collapse: collapse; margin-top: 0.6em; }
th, td { border: 1px solid #bbb; padding: 0.3em 0.8em; text-align: left; }
th { background: #eee; }
.meta { color: #666; }
</style>
</head>
<body>
<h1>PBX Log Analysis Report</h1>
<p class="meta">Generated at {{.GeneratedAt}}{{if .SourceLog}} from {{.SourceLog}}{{end}}</p>

<h2>Stored Data</h2>
<table>
<tr><th>Table</th><th>Records</th></tr>
{{range .TableCounts}}<tr><td>{{.Table}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Call Statistics</h2>
<table>
<tr><th>Total Calls</th><th>Total Duration (s)</th><th>Average Duration</th><th>Longest Call (s)</th></tr>
<tr><td>{{.Durations.Calls}}</td><td>{{.Durations.TotalDuration}}</td><td>{{.AvgDurationReadable}}</td><td>{{.Durations.MaxDuration}}</td></tr>
</table>

<h2>Dispositions</h2>
<table>
<tr><th>Disposition</th><th>Calls</th></tr>
{{range .Dispositions}}<tr><td>{{.Disposition}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Top Callers</h2>
<table>
<tr><th>Number</th><th>Calls</th></tr>
{{range .TopCallers}}<tr><td>{{.Caller}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Recent Calls</h2>
<table>
<tr><th>Date</th><th>From</th><th>To</th><th>Disposition</th><th>Duration (s)</th><th>Trunk</th></tr>
{{range .RecentCalls}}<tr><td>{{.CallDatetime}}</td><td>{{.SourceNumber}}</td><td>{{.DestinationNumber}}</td><td>{{.Disposition}}</td><td>{{.Duration}}</td><td>{{.Trunk}}</td></tr>
{{end}}</table>

<h2>Registrations</h2>
<table>
<tr><th>Event</th><th>Count</th></tr>
{{range .RegistrationSummary}}<tr><td>{{.EventType}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Errors by Category</h2>
<table>
<tr><th>Category</th><th>Errors</th></tr>
{{range .ErrorSummary}}<tr><td>{{.Category}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

</body>
</html>
`))
