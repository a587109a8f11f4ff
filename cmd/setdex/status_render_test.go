package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"setdex/internal/setdex"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("xy", statusOK, "out/setdex_xy.js", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "xy:", "[OK] out/setdex_xy.js")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("rb", statusWarn, "no analyses", true)
	if !strings.HasPrefix(got, ansiYellow) {
		t.Fatalf("expected yellow prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestSummaryTableTotals(t *testing.T) {
	results := []setdex.Result{
		{Job: setdex.Job{Code: "rb", Var: "SETDEX_RBY"}, Status: setdex.StatusSkipped},
		{
			Job:      setdex.Job{Code: "xy", Var: "SETDEX_XY"},
			Status:   setdex.StatusWritten,
			Subjects: 4,
			Sets:     7,
			Stats:    setdex.Stats{Files: 3, Discarded: 2},
			Duration: 15 * time.Millisecond,
		},
	}
	table := renderSummaryTable(results)
	for _, want := range []string{"SETDEX_RBY", "skipped", "written", "TOTAL", "15ms"} {
		if !strings.Contains(table, want) {
			t.Fatalf("table missing %q:\n%s", want, table)
		}
	}
	if resultStatusKind(setdex.StatusDryRun) != statusInfo {
		t.Fatal("dry runs render as info")
	}
}
