package logger

import (
	"context"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"go.uber.org/zap"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	loggerWrap := newZapLogger(logger, isProd)
	cleanup := func() error { return loggerWrap.base.Sync() }
	return loggerWrap, cleanup, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (тесты, zaptest/observer).
func NewFromZap(base *zap.Logger) *ZapLogger { return newZapLogger(base, false) }

func newZapLogger(base *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
}

func (z *ZapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Debugf(format, args...)
}
func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет request_id и session_id из контекста, если они есть.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	s := z.sugar
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		s = s.With("request_id", rid)
	}
	if sid, ok := ctxmeta.SessionIDFromContext(ctx); ok {
		s = s.With("session_id", sid)
	}
	return s
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
