package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, production := range []bool{false, true} {
		l, err := New(production)
		require.NoError(t, err)
		require.NotNil(t, l)

		assert.Equal(t, !production, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	}
}

func TestGormWriter_Printf(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := NewGormWriter(zap.New(core))

	w.Printf("%s [%.3fms] %s", "slow sql", 250.5, "SELECT 1")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "gorm", entries[0].LoggerName)
	assert.Equal(t, "slow sql [250.500ms] SELECT 1", entries[0].Message)
}
