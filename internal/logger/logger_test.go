package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

func TestWriterLogsTrimmedLines(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	n, err := l.Named("api").Writer().Write([]byte("GET /healthz 200\n"))
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "GET /healthz 200", entries[0].Message)
	assert.Equal(t, "api", entries[0].LoggerName)
}

func TestWithAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("cmd", "seed").Info("done", "orders", 2)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "seed", fields["cmd"])
	assert.EqualValues(t, 2, fields["orders"])
}
