package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

var (
	G = GetLogger

	// L is an alias for the standard logger.
	L = logrus.NewEntry(logrus.StandardLogger())
)

type (
	loggerKey struct{}
)

// WithLogger returns a new context with the provided logger. Use in
// combination with logger.WithField(s) for great effect.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithApp returns a context whose logger tags every line with the app id.
func WithApp(ctx context.Context, appID string) context.Context {
	return WithLogger(ctx, GetLogger(ctx).WithField("app", appID))
}

// SetVerbose switches the standard logger to debug level.
func SetVerbose(verbose bool) {
	if verbose {
		L.Logger.SetLevel(logrus.DebugLevel)
	}
}

// GetLogger retrieves the current logger from the context. If no logger is
// available, the default logger is returned.
func GetLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(loggerKey{})

	if logger == nil {
		return L
	}

	return logger.(*logrus.Entry)
}
