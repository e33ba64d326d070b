package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, zerolog.DebugLevel, New(&buf, "debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New(&buf, "warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "loud").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "").GetLevel())
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "info"), "store")

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "store")
}
