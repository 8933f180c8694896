// Package logging defines the structured-logging surface used across
// the console. Call sites depend on the Logger interface so tests can
// swap in a no-op or capturing implementation.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// key-value pairs, e.g. log.Info(ctx, "fetching page", "page", 2).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
