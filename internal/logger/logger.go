// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers shared by the messagely server and its command-line client.
//
// *Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info, Err,
// Fatal, ...) is available directly. Request-scoped loggers are attached to a
// context by the HTTP middleware and recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the server *Logger for the given role label
// (e.g. "messagely-server").
//
// Entries are JSON lines on os.Stdout carrying the "role" field, a timestamp
// and a "func" field holding the fully-qualified caller name. The global
// level is Debug.
func NewLogger(role string) *Logger {
	setGlobals(zerolog.DebugLevel)

	return &Logger{newZerolog(os.Stdout, role).Caller().Logger()}
}

// NewClientLogger constructs a *Logger for the command-line client.
//
// It writes human-readable lines to os.Stderr, so command output on os.Stdout
// stays machine-readable. Only Info and above are emitted.
func NewClientLogger(role string) *Logger {
	setGlobals(zerolog.InfoLevel)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &Logger{newZerolog(output, role).Logger()}
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting every field of l.
// Fields added to the child do not leak into the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// When none is attached, zerolog's disabled logger is returned, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func setGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

func newZerolog(w io.Writer, role string) zerolog.Context {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp()
}
