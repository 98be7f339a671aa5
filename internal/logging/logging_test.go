package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xgxscope "github.com/xgx-io/xgx-scope"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", "json", &buf)
	log.Debug("hidden")
	log.Info("visible", "k", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "xgx-demo", rec["service"])
	assert.EqualValues(t, 1, rec["k"])
}

func TestNew_TextFallback(t *testing.T) {
	var buf bytes.Buffer
	New("debug", "whatever", &buf).Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "service=xgx-demo")
}

func TestErr_IncludesSuppressed(t *testing.T) {
	err := xgxscope.Suppress(errors.New("A"), errors.New("B"))
	attr := Err(err)
	assert.Equal(t, "error", attr.Key)
	assert.Contains(t, attr.Value.String(), "A")
	assert.Contains(t, attr.Value.String(), "suppressed[0]: B")

	assert.Equal(t, "", Err(nil).Value.String())
}
