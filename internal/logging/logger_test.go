package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"setdex/internal/config"
	"setdex/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
	logger.Debug("debug message")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerRendersSubjectHeader(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "collector")
	logger.Info("analysis parsed",
		logging.String(logging.FieldGeneration, "xy"),
		logging.String(logging.FieldTier, "OU"),
		logging.String(logging.FieldSubject, "Garchomp"),
		logging.String(logging.FieldRunID, "run-1"),
		logging.Int("sets", 3),
		logging.String("note", "two words"),
	)

	out := buf.String()
	for _, want := range []string{"INFO [collector] XY · OU · Garchomp – analysis parsed", "    - sets: 3", `    - note: "two words"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "run-1") {
		t.Fatalf("run_id should be hidden at info level:\n%s", out)
	}
}

func TestConsoleLoggerDedupesRepeatedKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.With(logging.Int("sets", 1)).Info("done", logging.Int("sets", 2))

	if strings.Count(buf.String(), "sets:") != 1 || !strings.Contains(buf.String(), "sets: 2") {
		t.Fatalf("expected single latest sets field, got:\n%s", buf.String())
	}
}

func TestJSONLoggerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := logging.WithRunID(context.Background(), "run-42")
	logging.WithContext(ctx, logger).Warn("generation skipped",
		logging.String(logging.FieldGeneration, "rb"),
		logging.Error(errors.New("missing directory")),
	)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log: %v\n%s", err, buf.String())
	}
	checks := map[string]string{
		"level":      "warn",
		"msg":        "generation skipped",
		"run_id":     "run-42",
		"generation": "rb",
		"error":      "missing directory",
	}
	for key, want := range checks {
		if got, _ := entry[key].(string); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("expected ts field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "WARN") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestWarnWithHint(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WarnWithHint(logger, "generation skipped", "check paths.analyses_dir")
	if !strings.Contains(buf.String(), `"error_hint":"check paths.analyses_dir"`) {
		t.Fatalf("missing hint: %s", buf.String())
	}
	logging.WarnWithHint(nil, "ignored", "none")
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 12) {
		t.Fatal("nop logger should be disabled")
	}
	logging.NewComponentLogger(nil, "x").Info("discarded")
}

func TestFormatSubject(t *testing.T) {
	cases := map[string][3]string{
		"XY · OU · Garchomp": {"xy", "OU", "Garchomp"},
		"BW":                 {"bw", "", ""},
		"Uber · Mew":         {"", "Uber", "Mew"},
		"":                   {"", " ", ""},
	}
	for want, in := range cases {
		if got := logging.FormatSubject(in[0], in[1], in[2]); got != want {
			t.Errorf("FormatSubject(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("unexpected run id")
	}
	ctx := logging.WithRunID(context.Background(), "abc")
	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("RunIDFromContext = %q, %v", id, ok)
	}
}
