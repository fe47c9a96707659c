package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects a logger's output into a buffer for inspection.
func capture(l *Logger) *bytes.Buffer {
	buf := &bytes.Buffer{}
	l.Logger = l.Output(buf)
	return buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EmitsRoleAndTimestamp(t *testing.T) {
	l := NewLogger("personahub-server")
	require.NotNil(t, l)
	buf := capture(l)

	l.Info().Msg("listening")

	entry := lastEntry(t, buf)
	assert.Equal(t, "personahub-server", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "every entry carries a timestamp")
}

func TestNewLogger_CallerFieldIsFunc(t *testing.T) {
	NewLogger("personahub-server") // configures the global caller field name
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_DebugLevelEnabled(t *testing.T) {
	l := NewLogger("personahub-server")
	buf := capture(l)

	l.Debug().Msg("filter input snapshot")

	assert.NotEmpty(t, buf.String(), "debug entries must not be filtered out")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	buf := capture(l)

	l.Info().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	parent := NewLogger("personahub-server")
	buf := capture(parent)

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.Output(buf)
	child.Info().Msg("from child")

	entry := lastEntry(t, buf)
	assert.Equal(t, "personahub-server", entry["role"])
}

func TestFromContext_FallsBackToNonNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).With().Str("trace_id", "0192f0c1").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("traced")

	entry := lastEntry(t, buf)
	assert.Equal(t, "0192f0c1", entry["trace_id"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	zl := zerolog.New(buf).With().Str("trace_id", "0192f0c2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("traced request")

	entry := lastEntry(t, buf)
	assert.Equal(t, "0192f0c2", entry["trace_id"])
}

func TestFromRequest_FallsBackToNonNil(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	require.NotNil(t, FromRequest(req))
}
