package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

type ctxKey struct{}

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// SetLevel 動態調整全域 log level，無法解析時維持原設定
func SetLevel(text string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// WithComponent 回傳帶有 component 欄位的 logger，供 MQ、handler、service 等使用
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// ContextWithLogger 將 request 範圍的 logger 放進 context
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// WithFields 在 request 範圍的 logger 加上欄位；component 只由 FromContext 加入
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	base, ok := ctx.Value(ctxKey{}).(*zap.Logger)
	if !ok || base == nil {
		base = L
	}
	return ContextWithLogger(ctx, base.With(fields...))
}

// FromContext 取出 request 範圍的 logger 並加上 component；沒有時退回全域 logger
func FromContext(ctx context.Context, component string) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
			return l.With(zap.String("component", component))
		}
	}
	return WithComponent(component)
}
