// Package memory holds the per-user conversation log and user state.
//
// The store is volatile by contract: a restart loses every conversation.
// Backends that happen to persist (Redis with TTL, Postgres) are drop-in
// replacements behind the same interface, keyed by user identifier.
package memory

import (
	"context"

	"automaxbot/internal/model"
)

// DefaultHistoryLimit bounds the retained window per user. After an append
// pushes the log past the limit, only the most recent limit-1 entries are
// kept so one more context message always fits.
const DefaultHistoryLimit = 20

// Store is the keyed conversation log. Append and History never fail for an
// unseen user: the log starts empty and is created lazily.
type Store interface {
	Append(ctx context.Context, userID string, msg model.ChatMessage) error
	History(ctx context.Context, userID string) ([]model.ChatMessage, error)
	Reset(ctx context.Context, userID string) error
}

// trimWindow drops the oldest entries once the log exceeds limit, retaining
// the newest limit-1. Order is never changed.
func trimWindow(msgs []model.ChatMessage, limit int) []model.ChatMessage {
	if limit <= 0 || len(msgs) <= limit {
		return msgs
	}
	return msgs[len(msgs)-(limit-1):]
}
