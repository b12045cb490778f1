package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DEBUG,
		"DEBUG":   DEBUG,
		" info ":  INFO,
		"warning": WARN,
		"error":   ERROR,
		"fatal":   FATAL,
		"":        INFO,
		"verbose": INFO,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestToZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, toZapLevel(DEBUG))
	assert.Equal(t, zapcore.InfoLevel, toZapLevel(INFO))
	assert.Equal(t, zapcore.WarnLevel, toZapLevel(WARN))
	assert.Equal(t, zapcore.ErrorLevel, toZapLevel(ERROR))
	assert.Equal(t, zapcore.FatalLevel, toZapLevel(FATAL))
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	log := NewNop().With("component", "test")

	assert.NotPanics(t, func() {
		log.Debug("value %d", 1)
		log.Info("value %s", "x")
		log.Warnw("warn", "key", "value")
		log.Errorw("error", "key", 2)
	})
}
