package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel(" DEBUG "))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestInit_AttachesServiceFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l := Init(Options{Level: "info", Service: "birthday-api", Env: "test", Output: &buf})
	cl := Component(l, "scheduler")
	cl.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "birthday-api", entry["service"])
	assert.Equal(t, "test", entry["env"])
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, "hello", entry["message"])

	// A second Init keeps the first logger.
	var other bytes.Buffer
	Init(Options{Output: &other})
	g := Get()
	g.Info().Msg("again")
	assert.Zero(t, other.Len())
}

func TestGet_BeforeInit(t *testing.T) {
	Reset()
	assert.NotPanics(t, func() {
		g := Get()
		g.Info().Msg("dropped")
	})
}
