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

// TestNewCLILogger_NotNil verifies that NewCLILogger returns a non-nil *Logger.
func TestNewCLILogger_NotNil(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	l := NewCLILogger("test")
	require.NotNil(t, l)
}

// TestNewCLILogger_RoleField verifies that every log entry produced by the
// CLI logger contains the expected "role" field.
func TestNewCLILogger_RoleField(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	l := NewCLILogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewCLILogger_WritesToStateDir verifies that log output lands in the
// kookie state directory rather than on stdout.
func TestNewCLILogger_WritesToStateDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	l := NewCLILogger("file-check")
	l.Info().Msg("persisted entry")

	content, err := os.ReadFile(filepath.Join(home, ".kookie", "kookie.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "persisted entry")
}

// TestNewCLILogger_CallerFieldName verifies that the caller field is named "func".
func TestNewCLILogger_CallerFieldName(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	NewCLILogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the no-op logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestGetChildLogger_InheritsFields verifies that a child logger carries the
// fields of its parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "parent").Logger()}

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that a logger attached to a
// context is recovered by FromContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("role", "ctx").Logger()
	ctx := attached.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx", entry["role"])
}
