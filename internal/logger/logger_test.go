package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_ConsoleAndJSON(t *testing.T) {
	for _, json := range []bool{false, true} {
		log, err := New(json, false)
		require.NoError(t, err)
		require.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	}
}

func TestNew_DebugLevel(t *testing.T) {
	log, err := New(false, true)
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
