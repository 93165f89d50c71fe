package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, SetLevel("debug"))
		assert.Equal(t, zapcore.DebugLevel, level.Level())
	})

	t.Run("Failed - Unknown level", func(t *testing.T) {
		assert.Error(t, SetLevel("loud"))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Success - request logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := ContextWithLogger(context.Background(), zap.New(core).With(zap.String("request_id", "abc")))

		FromContext(ctx, "service").Info("hello")

		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "abc", fields["request_id"])
		assert.Equal(t, "service", fields["component"])
	})

	t.Run("Success - fallback to global", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background(), "service"))
		assert.Equal(t, context.Background(), ContextWithLogger(context.Background(), nil))
	})
}

func TestWithFields(t *testing.T) {
	countKey := func(fields []zapcore.Field, key string) int {
		n := 0
		for _, f := range fields {
			if f.Key == key {
				n++
			}
		}
		return n
	}

	t.Run("Success - component added once", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := ContextWithLogger(context.Background(), zap.New(core).With(zap.String("request_id", "abc")))
		ctx = WithFields(ctx, zap.Int("principal_id", 7))

		FromContext(ctx, "handler").Info("first")
		FromContext(ctx, "service").Info("second")

		entries := logs.All()
		assert.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, 1, countKey(e.Context, "component"))
			assert.Equal(t, 1, countKey(e.Context, "principal_id"))
			assert.Equal(t, 1, countKey(e.Context, "request_id"))
		}
		assert.Equal(t, "service", entries[1].ContextMap()["component"])
	})

	t.Run("Success - without request logger", func(t *testing.T) {
		ctx := WithFields(context.Background(), zap.String("role", "admin"))
		assert.NotNil(t, FromContext(ctx, "auth"))
	})
}
