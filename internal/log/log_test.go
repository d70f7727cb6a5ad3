package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	require.NoError(t, Init(true))
	assert.NotNil(t, GetZapLogger())
	assert.NotNil(t, GetSugaredLogger())

	require.NoError(t, Init(false))
	assert.NotNil(t, GetSugaredLogger())
}

func TestSetLoggerRoutesHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Debugw("debug", "k", 1)
	Infow("info", "k", 2)
	Warnw("warn", "k", 3)
	Errorw("error", "k", 4)
	Sync()

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "info", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(4), entries[3].ContextMap()["k"])
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	mu.Lock()
	log, baseLogger = nil, nil
	mu.Unlock()

	assert.NotNil(t, GetSugaredLogger())
	assert.NotNil(t, GetZapLogger())
}
