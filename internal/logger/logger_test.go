package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("too quiet", nil)
	l.Info("still too quiet", nil)
	if buf.Len() != 0 {
		t.Errorf("messages below the minimum level should be dropped, got %q", buf.String())
	}

	l.Warn("loud enough", nil, nil)
	if buf.Len() == 0 {
		t.Error("warn should pass a warn-level logger")
	}
}

func TestLoggerEntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Warn("reference load failed", Fields{"collection": "categories"}, errors.New("boom"))

	var e map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("entry is not JSON: %v (%q)", err, buf.String())
	}
	if e["level"] != "WARN" {
		t.Errorf("level = %v", e["level"])
	}
	if e["message"] != "reference load failed" {
		t.Errorf("message = %v", e["message"])
	}
	if e["error"] != "boom" {
		t.Errorf("error = %v", e["error"])
	}
	fields, ok := e["fields"].(map[string]interface{})
	if !ok || fields["collection"] != "categories" {
		t.Errorf("fields = %v", e["fields"])
	}
}

func TestLoggerOmitsEmptyOptionalKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Info("plain", nil)
	out := buf.String()
	if strings.Contains(out, `"fields"`) || strings.Contains(out, `"error"`) {
		t.Errorf("optional keys should be omitted when empty: %s", out)
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()
	c.Incr("sync.create")
	c.Incr("sync.create")
	c.Incr("sync.delete")

	snap := c.Snapshot()
	if snap["sync.create"] != 2 || snap["sync.delete"] != 1 {
		t.Errorf("Snapshot() = %v", snap)
	}

	snap["sync.create"] = 99
	if c.Snapshot()["sync.create"] != 2 {
		t.Error("Snapshot() should return a copy")
	}
}
