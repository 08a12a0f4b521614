// Package logctx threads a *slog.Logger through a cobra command's context
// so subcommands in a separate package can retrieve the logger the root
// command's PersistentPreRunE configured, without an import cycle back to
// the root cli package.
package logctx

import (
	"context"
	"log/slog"
	"os"
)

type key struct{}

// With attaches logger to ctx.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// From retrieves the logger attached by With, or a default stderr logger
// if none was attached (e.g. a subcommand invoked directly in a test).
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(key{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}
