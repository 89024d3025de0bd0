package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sangkips/insights-api/internal/config"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "chatty"}, &buf)

	logger.Debug().Msg("debug")
	logger.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestGormLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	base := New(config.LogConfig{Level: "debug"}, &buf)
	l := NewGormLogger(base, time.Second)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, errors.New("boom"))

	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
}

func TestGormLogger_PrefersContextLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := NewGormLogger(New(config.LogConfig{Level: "debug"}, &base), time.Second).LogMode(gormlogger.Info)

	reqLogger := New(config.LogConfig{Level: "debug"}, &scoped).With().Str("request_id", "abc").Logger()
	ctx := reqLogger.WithContext(context.Background())

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 2", 1 }, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"request_id":"abc"`)
}

func TestGormLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := NewGormLogger(New(config.LogConfig{Level: "debug"}, &buf), time.Second).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 3", 0 }, errors.New("ignored"))
	l.Error(context.Background(), "ignored too")

	assert.Empty(t, buf.String())
}
