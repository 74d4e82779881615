package helper

import (
	"context"
	"time"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Blacklist stores revoked token ids until their natural expiry.
type Blacklist interface {
	Add(ctx context.Context, jti, tokenType string, expiresAt time.Time) error
	Contains(ctx context.Context, jti string) (bool, error)
	// PurgeExpired drops entries whose expiry has passed and reports how many.
	PurgeExpired(ctx context.Context) (int64, error)
}
