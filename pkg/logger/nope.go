package logger

import "log/slog"

// NewNope returns a logger that discards everything. Components that treat
// logging as optional use it as their default.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
