package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf, Service: "test"})

	l.Debug("invisible")
	if buf.Len() != 0 {
		t.Errorf("debug emitted at info level: %s", buf.String())
	}

	l.Info("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("info message missing from output: %s", buf.String())
	}
}

func TestInitFirstConfigWins(t *testing.T) {
	// Init is first-wins; callers must decide the level before the first
	// call. A second Init with a different sink and level is a no-op.
	var first, second bytes.Buffer
	Init(Config{Level: LevelDebug, Output: &first, Service: "test"})
	Init(Config{Level: LevelError, Output: &second, Service: "test"})

	Debug("debug line")

	if !strings.Contains(first.String(), "debug line") {
		t.Errorf("first config not in effect, output: %s", first.String())
	}
	if second.Len() != 0 {
		t.Errorf("second Init took effect, output: %s", second.String())
	}
}

func TestWithFieldsEmitsFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf, Service: "test"})

	l.WithFields(map[string]any{"categoria": "Outros"}).Info("classified")

	out := buf.String()
	if !strings.Contains(out, `"categoria":"Outros"`) {
		t.Errorf("field missing from output: %s", out)
	}
	if !strings.Contains(out, `"service":"test"`) {
		t.Errorf("service field missing from output: %s", out)
	}
}
