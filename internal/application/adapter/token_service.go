// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations. The
// session model is a single long-lived bearer token; logout revokes
// the presented token for its remaining lifetime.
type TokenService interface {
	// GenerateToken issues a new session token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateToken validates a session token, rejecting revoked
	// tokens, and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)

	// RevokeToken revokes a session token until it would have expired.
	RevokeToken(ctx context.Context, token string) error
}
