//go:build debug_trace
// +build debug_trace

package logger

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt/tool/logger"
)

// Tracef logs at trace level.
func Tracef(ctx context.Context, format string, args ...any) {
	logger.Tracef(ctx, format, args...)
}

// TraceDump logs msg followed by a deep dump of values at trace level.
func TraceDump(ctx context.Context, msg string, values ...any) {
	logger.Tracef(ctx, "%s: %s", msg, spew.Sdump(values...))
}
