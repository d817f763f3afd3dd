package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("blacklist", "info", &buf)
	l.WithRequestID("req-1").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "blacklist", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("blacklist", "warn", &buf)
	l.Info("dropped")
	assert.Zero(t, buf.Len())
	l.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
}
