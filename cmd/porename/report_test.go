package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gardar/porename/pkg/porename"
)

func TestResultLine(t *testing.T) {
	tests := []struct {
		name   string
		result porename.Result
		want   string
	}{
		{
			name:   "renamed",
			result: porename.Result{Stage: porename.StageFinalize, Original: "20240301_invoice.pdf", Outcome: porename.OutcomeRenamed},
			want:   "File 20240301_invoice.pdf renamed successfully",
		},
		{
			name:   "not found",
			result: porename.Result{Stage: porename.StageFinalize, Original: "20240302_scan_1.pdf", Outcome: porename.OutcomeNotFound},
			want:   "File 20240302_scan_1.pdf could not be renamed -> order number not found",
		},
		{
			name: "failed",
			result: porename.Result{
				Stage:    porename.StageNormalize,
				Original: "broken.pdf",
				Outcome:  porename.OutcomeFailed,
				Err:      errors.New("unreadable pdf"),
			},
			want: "File broken.pdf failed during normalize: unreadable pdf",
		},
		{
			name:   "dated",
			result: porename.Result{Stage: porename.StageNormalize, Original: "invoice.pdf", Outcome: porename.OutcomeRenamed},
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := resultLine(tt.result)
			if got != tt.want {
				t.Fatalf("resultLine mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestConsoleReporterNoColorOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	rep := newConsoleReporter(&buf)
	rep.Report(porename.Result{Stage: porename.StageFinalize, Original: "a.pdf", Outcome: porename.OutcomeRenamed})
	rep.Report(porename.Result{Stage: porename.StageNormalize, Original: "b.pdf", Outcome: porename.OutcomeSplit})

	if got := buf.String(); got != "File a.pdf renamed successfully\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestConsoleReporterColors(t *testing.T) {
	var buf bytes.Buffer
	rep := &consoleReporter{w: &buf, colorize: true}
	rep.Report(porename.Result{Stage: porename.StageFinalize, Original: "a.pdf", Outcome: porename.OutcomeNotFound})

	got := buf.String()
	if !strings.Contains(got, "\x1b[31m") {
		t.Fatalf("expected red escape code, got %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	out := renderSummary(porename.Summary{Renamed: 4, NotFound: 2, Failed: 1})
	for _, want := range []string{"Renamed", "Order number not found", "Failed", "4", "2", "1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
