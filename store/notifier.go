// Package store holds the cart and wishlist state containers. Each container
// mirrors the backend's authoritative collection for the current session and
// resynchronizes after every mutation; the mirror is a cache, never the truth.
package store

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Notifier receives the user-facing outcome of container operations. It is
// the seam where a UI hangs its toast layer; container methods never return
// errors, every failure ends up here instead.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. It is the default
// for headless use.
type LogNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier() LogNotifier {
	return LogNotifier{logger: log.With().Str("component", "notifier").Logger()}
}

func (n LogNotifier) Success(msg string) {
	n.logger.Info().Msg(msg)
}

func (n LogNotifier) Error(msg string) {
	n.logger.Warn().Msg(msg)
}
