package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestLoggerCapturesOutput(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Info().Str("team", "platform").Msg("generated")

	assert.True(t, tl.Contains("generated"))
	assert.True(t, tl.Contains("platform"))
	assert.Equal(t, 1, len(tl.Lines()))

	tl.Clear()
	assert.Empty(t, tl.Output())
}

func TestNewLoggerFromConfigDefaults(t *testing.T) {
	logger := NewLoggerFromConfig(nil)
	assert.NotNil(t, logger)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
}
