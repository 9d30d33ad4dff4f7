package log

import (
	"fmt"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	levels = [...]string{
		"debug",
		"info",
		"warning",
		"error",
		"fatal",
		"panic",
	}
)

func TestLog(t *testing.T) {
	logger, err := New("warning", "", "test")
	if err != nil {
		t.Fatalf("failed to instantiate a test logger: %v", err)
	}

	logger.Info("Copied: foo")
	logger.Warn("Copied: bar")
	logger.Error("Pruned: foo")

	hook := logger.Hooks[logrus.InfoLevel][0].(*test.Hook)
	if len(hook.Entries) != 2 {
		t.Errorf("Not the correct count of log entries")
	}

	logger.Warn("Copied: baz")
	if hook.LastEntry().Message != "Copied: baz" {
		t.Errorf("Unexpected log entry: %s", hook.LastEntry().Message)
	}

	logger, _ = New("", "", "test")
	if logger.Level != logrus.InfoLevel {
		t.Error("The default loglevel should be info")
	}

	logger, _ = New("", "", "")
	if logger.Out != os.Stderr {
		t.Error("The default output should be stderr")
	}

	logger, err = New("info", "127.0.0.1:514", "syslog")
	if err != nil {
		t.Error("Failed to instantiate a syslog logger")
	}

	logger, _ = New("info", "", "stdout")
	if fmt.Sprintf("%T", logger) != "*logrus.Logger" {
		t.Error("Failed to instantiate a stdout logger")
	}

	logger, _ = New("info", "", "stderr")
	if fmt.Sprintf("%T", logger) != "*logrus.Logger" {
		t.Error("Failed to instantiate a stderr logger")
	}

	for _, level := range levels {
		lg, err := New(level, "", "test")
		if err != nil || fmt.Sprintf("%T", lg) != "*logrus.Logger" {
			t.Errorf("Failed to instantiate at %s level", level)
		}
	}
}

func TestSyslogMissingArg(t *testing.T) {
	if _, err := New("info", "", "syslog"); err == nil {
		t.Errorf("syslog logger should fail without a server")
	}
}

func TestSyslogWrongArg(t *testing.T) {
	if _, err := New("info", "wrong server", "syslog"); err == nil {
		t.Errorf("syslog logger should fail on a wrong server address")
	}
}
