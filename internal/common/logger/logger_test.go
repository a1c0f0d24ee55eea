// internal/common/logger/logger_test.go

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(" WARN "))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("fatal"))
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"taskType": "prioritize-skills"})

	log.WithError(errors.New("boom")).Error("scoring failed", map[string]interface{}{"career": "Data Scientist"})
	log.Debug("candidate excluded", map[string]interface{}{"skill": "Fortran"})

	entries := logs.All()
	assert.Len(t, entries, 2)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "prioritize-skills", ctx["taskType"])
	assert.Equal(t, "Data Scientist", ctx["career"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestNew_Formats(t *testing.T) {
	assert.NotNil(t, New("info", "json"))
	assert.NotNil(t, New("debug", "console"))
	assert.NotNil(t, New("info", "json", "stderr"))
	NewNoOpLogger().Info("discarded", nil)
}

func TestZapAdapter_ErrorValues(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewZapAdapter(zap.New(core)).Warn("cache read failed", map[string]interface{}{"cause": errors.New("timeout")})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "timeout", entries[0].ContextMap()["cause"])
}
