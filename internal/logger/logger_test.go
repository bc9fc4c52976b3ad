package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewJSON("info", buf)
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"invoice": "0001", "template": "minimal"})
	log.Info("draft saved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "draft saved", entry["message"])
	require.Equal(t, "0001", entry["invoice"])
	require.Equal(t, "minimal", entry["template"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewJSON("info", buf)
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerDefaultsToInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewJSON("", buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "shown")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := NewJSON("loud", &bytes.Buffer{})
	require.Error(t, err)
}

func TestLoggerWarnCarriesFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewJSON("debug", buf)
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"user": "demo@facturakit.dev"})
	log.Warn("plan exhausted")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "plan exhausted", entry["message"])
	require.Equal(t, "demo@facturakit.dev", entry["user"])
	require.Equal(t, "warn", entry["level"])
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	log.Info("ignored")
	log.Debug("ignored")
	log.Warn("ignored")
}
