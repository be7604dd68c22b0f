package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/etnz/ladder/config"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "WARN", Encoding: "console"}, &buf)
	log.Info("hidden")
	log.Warn("shown")
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync() failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "chatty"}, &buf)
	log.Debug("hidden")
	log.Info("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.LogConfig{Level: "info", Encoding: "json"}, &buf)
	log.Info("purchase")
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log entry %q is not json: %v", buf.String(), err)
	}
	if entry["msg"] != "purchase" || entry["level"] != "info" {
		t.Errorf("entry = %v", entry)
	}
}
