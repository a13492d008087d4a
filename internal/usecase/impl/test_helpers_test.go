package impl

import (
	"io"
	"log/slog"
)

// newTestLogger returns a logger that swallows output, keeping test runs quiet.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
