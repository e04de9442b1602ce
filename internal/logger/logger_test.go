package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captured redirects l into a buffer and returns a func decoding the last entry.
func captured(t *testing.T, l *Logger) func() map[string]any {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return func() map[string]any {
		t.Helper()
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}
}

func TestNewLogger_EntryShape(t *testing.T) {
	l := NewLogger("go-plant-server")
	last := captured(t, l)

	l.Info().Str("plant_id", "p1").Msg("plant created")

	entry := last()
	assert.Equal(t, "go-plant-server", entry["role"])
	assert.Equal(t, "plant created", entry["message"])
	assert.Equal(t, "p1", entry["plant_id"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_AddsFieldsWithoutTouchingParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("server")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var fromChild, fromParent map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &fromChild))
	require.NoError(t, json.Unmarshal(lines[1], &fromParent))

	assert.Equal(t, "server", fromChild["role"])
	assert.Equal(t, "abc", fromChild["trace_id"])
	assert.NotContains(t, fromParent, "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
		ctx := zl.WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "t-1", entry["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()

	req := httptest.NewRequest(http.MethodGet, "/api/plants", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "t-2", entry["trace_id"])
}

func TestNew_Level(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		name    string
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "default", level: "", want: zerolog.DebugLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "unknown", level: "shouting", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New("server", config.Log{Level: tt.level})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
			assert.NoError(t, l.Close())
		})
	}
}

func TestNew_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.log")
	l, err := New("file-role", config.Log{Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	l.Info().Msg("written to file")
	l.Debug().Msg("below level")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "file-role", entry["role"])
	assert.Equal(t, "written to file", entry["message"])

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
