// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the relay. Every component receives a
// *Logger at construction time; request-scoped code pulls the logger that the
// trace middleware stored in the context.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// RoleField names the field carrying the process role.
	RoleField = "role"
	// TraceField names the field carrying the request trace id.
	TraceField = "trace_id"
	// CallerField replaces zerolog's default "caller" field.
	CallerField = "func"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger writing to stdout. Each entry carries the
// role, a timestamp and the calling function name. The optional level is
// parsed with zerolog.ParseLevel; empty or unknown values mean debug.
func NewLogger(role string, level ...string) *Logger {
	lvl := zerolog.DebugLevel
	if len(level) > 0 {
		lvl = ParseLevel(level[0])
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.CallerFieldName = CallerField
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(os.Stdout).With().
			Str(RoleField, role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// ParseLevel maps a LOG_LEVEL value to a zerolog level.
func ParseLevel(s string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(s)
	if s == "" || err != nil || parsed == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return parsed
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTrace returns a child logger tagged with traceID and a context that
// carries it, so FromContext(ctx) yields the tagged logger.
func (l *Logger) WithTrace(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str(TraceField, traceID).Logger()}
	return child.WithContext(ctx), child
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// context logger when none was attached.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
