package logging

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Mirror receives every emitted log entry, used to forward logs to an
// external sink such as an OTLP exporter.
type Mirror interface {
	Emit(ctx context.Context, level Level, msg string, fields []zap.Field)
}

// MirrorFunc adapts a plain function to the Mirror interface.
type MirrorFunc func(ctx context.Context, level Level, msg string, fields []zap.Field)

func (f MirrorFunc) Emit(ctx context.Context, level Level, msg string, fields []zap.Field) {
	f(ctx, level, msg, fields)
}

var mirror atomic.Pointer[mirrorHolder]

type mirrorHolder struct {
	m Mirror
}

func SetMirror(m Mirror) {
	if m == nil {
		mirror.Store(nil)
		return
	}
	mirror.Store(&mirrorHolder{m: m})
}

func mirrorEntry(ctx context.Context, level zapcore.Level, msg string, fields []zap.Field) {
	holder := mirror.Load()
	if holder == nil || holder.m == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	holder.m.Emit(ctx, level, msg, fields)
}
