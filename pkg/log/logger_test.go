package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(GetLevel())

	logger := New("test")

	tests := []struct {
		name     string
		level    Level
		emit     func()
		expected bool
	}{
		{"debug hidden at notice", Notice, func() { logger.Debug("marker") }, false},
		{"info hidden at notice", Notice, func() { logger.Info("marker") }, false},
		{"notice shown at notice", Notice, func() { logger.Notice("marker") }, true},
		{"info shown at info", Info, func() { logger.Infof("%s", "marker") }, true},
		{"debug shown at debug", Debug, func() { logger.Debugf("%s", "marker") }, true},
		{"warning hidden at error", Error, func() { logger.Warning("marker") }, false},
		{"error shown at error", Error, func() { logger.Errorf("%s", "marker") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)
			tt.emit()

			got := strings.Contains(buf.String(), "marker")
			if got != tt.expected {
				t.Errorf("Expected output=%v, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestLogger_FormatIncludesModule(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	New("spheretracer").Notice("hello")

	out := buf.String()
	if !strings.Contains(out, "[spheretracer]") {
		t.Errorf("Expected module name in output, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("Expected message in output, got %q", out)
	}
}

func TestSetSink_KeepsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)
	defer SetLevel(GetLevel())

	SetLevel(Debug)
	SetSink(&buf)

	if GetLevel() != Debug {
		t.Fatalf("Expected level to survive sink change, got %v", GetLevel())
	}
	New("test").Debug("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Errorf("Expected debug output after sink change, got %q", buf.String())
	}
}
