package port

import (
	"context"

	"github.com/puffplace74/warehouse-bot/internal/core/domain"
)

type SessionRepository interface {
	// Get returns the session for an identity; ok is false when none exists.
	Get(ctx context.Context, identity string) (s domain.Session, ok bool, err error)

	// Put stores the session, restarting its idle-eviction clock.
	Put(ctx context.Context, identity string, s domain.Session) error

	// Clear discards the session unconditionally.
	Clear(ctx context.Context, identity string) error
}
