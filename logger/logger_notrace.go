//go:build !debug_trace
// +build !debug_trace

package logger

import "context"

// Tracef is a no-op; build with the debug_trace tag to enable it.
func Tracef(ctx context.Context, format string, args ...any) {}

// TraceDump is a no-op; build with the debug_trace tag to enable it.
func TraceDump(ctx context.Context, msg string, values ...any) {}
