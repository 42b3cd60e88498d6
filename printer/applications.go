package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/blang/semver"
	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/splunkbase-bot/splunkbase-urls/models"
)

const (
	StatusOK         = "OK"
	StatusMissing    = "Missing"
	StatusPrerelease = "Prerelease"
	StatusNonSemver  = "Non-semver"
)

var rule = strings.Repeat("=", 80)

// Report writes one block per app, in the layout operators paste into
// tickets.
func Report(w io.Writer, applications []models.AppInfo) {
	fmt.Fprintf(w, "Splunkbase App Information:\n\n")
	fmt.Fprintln(w, rule)

	for _, app := range applications {
		if !app.HasName() || !app.HasDownloadURL() {
			fmt.Fprintf(w, "\nApp ID: %s - Error fetching info\n", app.AppID)
			continue
		}
		fmt.Fprintf(w, "\nApp ID: %s\n", app.AppID)
		fmt.Fprintf(w, "Name: %s\n", app.GetName())
		fmt.Fprintf(w, "Version: %s\n", app.GetVersion())
		fmt.Fprintf(w, "URL: %s\n", app.GetDownloadURL())
	}

	fmt.Fprintf(w, "\n%s\n", rule)
}

// EnvLine writes the joined URLs labelled for the SPLUNK_APPS_URL variable.
func EnvLine(w io.Writer, urls string) {
	fmt.Fprintf(w, "\nDocker Compose SPLUNK_APPS_URL format:\n%s\n", urls)
}

func Table(w io.Writer, applications []models.AppInfo) {

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("App ID", "Name", "Version", "Status", "URL")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(w)

	for _, app := range applications {
		tbl.AddRow(app.AppID, app.GetName(), app.GetVersion(), Status(app), app.GetDownloadURL())
	}

	tbl.Print()
}

// Status summarises an app for the table. Versions that do not strictly
// follow semver are accepted as long as they parse tolerantly ("8.1").
func Status(app models.AppInfo) string {
	if !app.HasDownloadURL() {
		return StatusMissing
	}
	v, err := semver.ParseTolerant(app.GetVersion())
	if err != nil {
		return StatusNonSemver
	}
	if len(v.Pre) != 0 {
		return StatusPrerelease
	}
	return StatusOK
}
