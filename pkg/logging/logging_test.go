package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		result := test.level.String()
		if result != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", test.level, result, test.expected)
		}
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo},
	}

	for _, test := range tests {
		result := test.level.SlogLevel()
		if result != test.expected {
			t.Errorf("LogLevel(%d).SlogLevel() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer

	InitForCLI(LevelInfo, &buf)

	if isHostMode {
		t.Error("Expected isHostMode to be false after InitForCLI")
	}
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be set after InitForCLI")
	}

	Info("test-subsystem", "test message %d", 42)

	output := buf.String()
	if !strings.Contains(output, "test message 42") {
		t.Error("Expected log message to appear in CLI output")
	}
	if !strings.Contains(output, "test-subsystem") {
		t.Error("Expected subsystem to appear in CLI output")
	}
}

func TestCLILevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitForCLI(LevelInfo, &buf)

	Debug("test", "debug message")
	Info("test", "info message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered out at INFO level")
	}
	if !strings.Contains(output, "info message") {
		t.Error("Info message should appear at INFO level")
	}
}

func TestCLIErrorAttribute(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelDebug, &buf)

	Error("Store", errors.New("disk full"), "save failed")
	WarnErr("Store", errors.New("retrying"), "first attempt failed")

	output := buf.String()
	if !strings.Contains(output, "disk full") {
		t.Errorf("expected error text in output, got %q", output)
	}
	if !strings.Contains(output, "retrying") {
		t.Errorf("expected warn error text in output, got %q", output)
	}
}

func TestInitForHost(t *testing.T) {
	entries := InitForHost(LevelInfo)
	defer InitForCLI(LevelInfo, &bytes.Buffer{})
	defer CloseHostChannel()

	testErr := errors.New("boom")
	Debug("Accessor", "filtered")
	Error("Store", testErr, "save %s", "failed")

	select {
	case entry := <-entries:
		if entry.Level != LevelError {
			t.Errorf("expected ERROR entry, got %v", entry.Level)
		}
		if entry.Subsystem != "Store" {
			t.Errorf("expected subsystem Store, got %s", entry.Subsystem)
		}
		if entry.Message != "save failed" {
			t.Errorf("unexpected message %q", entry.Message)
		}
		if entry.Err != testErr {
			t.Error("error not carried on entry")
		}
	default:
		t.Fatal("expected an entry on the host channel")
	}

	select {
	case entry := <-entries:
		t.Fatalf("unexpected extra entry %+v", entry)
	default:
	}
}

func TestCloseHostChannelTwice(t *testing.T) {
	InitForHost(LevelDebug)
	CloseHostChannel()
	CloseHostChannel()

	// Logging after close must not panic.
	Info("Bootstrap", "after close")
	InitForCLI(LevelInfo, &bytes.Buffer{})
}
