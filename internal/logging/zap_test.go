package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))
	ctx := context.Background()

	l.Debug(ctx, "dbg", "a", 1)
	l.Info(ctx, "inf", "b", "two")
	l.Warn(ctx, "wrn")
	l.Error(ctx, "err")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, int64(1), entries[0].ContextMap()["a"])
	assert.Equal(t, "two", entries[1].ContextMap()["b"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLogger_With(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core)).With("component", "images")

	l.Info(context.Background(), "request sent", "request_id", "r-1")

	entries := logs.FilterMessage("request sent").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "images", fields["component"])
	assert.Equal(t, "r-1", fields["request_id"])
}
