package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/gardar/porename/pkg/porename"
)

var (
	colorOK    = text.Colors{text.FgGreen}
	colorError = text.Colors{text.FgRed}
)

// consoleReporter prints one line per renamed file and per failure
type consoleReporter struct {
	w        io.Writer
	colorize bool
}

func newConsoleReporter(w io.Writer) *consoleReporter {
	return &consoleReporter{w: w, colorize: shouldColorize(w)}
}

func (c *consoleReporter) Report(r porename.Result) {
	line, colors := resultLine(r)
	if line == "" {
		return
	}
	if c.colorize {
		line = colors.Sprint(line)
	}
	fmt.Fprintln(c.w, line)
}

// resultLine formats r for the console. Successful first-pass results are
// silent, the second pass says the rest.
func resultLine(r porename.Result) (string, text.Colors) {
	switch {
	case r.Outcome == porename.OutcomeFailed:
		return fmt.Sprintf("File %s failed during %s: %v", r.Original, r.Stage, r.Err), colorError
	case r.Stage == porename.StageNormalize:
		return "", nil
	case r.Outcome == porename.OutcomeNotFound:
		return fmt.Sprintf("File %s could not be renamed -> order number not found", r.Original), colorError
	default:
		return fmt.Sprintf("File %s renamed successfully", r.Original), colorOK
	}
}

func renderSummary(s porename.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Result", "Files"})
	rows := []struct {
		label string
		count int
	}{
		{"Dated", s.Normalized},
		{"Split", s.Split},
		{"Pages written", s.Pages},
		{"Renamed", s.Renamed},
		{"Order number not found", s.NotFound},
		{"Failed", s.Failed},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, strconv.Itoa(row.count)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderTools(statuses []toolLine) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Tool", "Status", "Detail"})
	for _, s := range statuses {
		tw.AppendRow(table.Row{s.name, s.status, s.detail})
	}
	return tw.Render()
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
