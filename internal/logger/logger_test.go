package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", &buf)

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf)

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	caller, ok := decodeEntry(t, &buf)["func"].(string)
	require.True(t, ok)
	assert.Contains(t, caller, "TestNewLogger_CallerFieldName")
}

func TestNewLogger_GlobalLevelIsDebug(t *testing.T) {
	NewLogger("level-role", &bytes.Buffer{})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", path)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"client"`)
	assert.Contains(t, string(data), "to file")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestNamed_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("client", &buf).Named("paging")

	l.Debug().Msg("named")

	assert.Equal(t, "paging", decodeEntry(t, &buf)["component"])
}

func TestGetChildLogger_DoesNotLeakFieldsToParent(t *testing.T) {
	var parentBuf bytes.Buffer
	parent := NewLogger("parent", &parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("extra", "child-only").Logger()

	parent.Info().Msg("parent")

	_, hasExtra := decodeEntry(t, &parentBuf)["extra"]
	assert.False(t, hasExtra)
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role", &buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}
