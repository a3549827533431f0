package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "debug", "json")

	ExternalServiceResult("rental-api", "GET /reservas/", errors.New("boom"), "status", 502)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "rental-api", entry["service"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "info", "text")

	EnterMethod("Confirm")
	assert.Empty(t, buf.String())

	HTTPRequest("GET", "/api/v1/quote", 200, 3*time.Millisecond)
	assert.Contains(t, buf.String(), "path=/api/v1/quote")
	assert.Contains(t, buf.String(), "status=200")
}
