// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expense-chat/backend/internal/application/adapter"
	domainerror "github.com/expense-chat/backend/internal/domain/error"
)

// DefaultTokenDuration is the lifetime of a session token.
const DefaultTokenDuration = 30 * 24 * time.Hour

const revokedTokenKeyPrefix = "revoked_token:"

// SessionClaims represents the claims carried by a session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements adapter.TokenService with HS256 JWTs and a
// Redis denylist for revocation. Revoked entries expire together with
// the token itself, so the denylist never needs sweeping.
type tokenService struct {
	secret   []byte
	duration time.Duration
	redis    *redis.Client
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration, redisClient *redis.Client) adapter.TokenService {
	if duration <= 0 {
		duration = DefaultTokenDuration
	}
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
		redis:    redisClient,
	}
}

// GenerateToken issues a new session token for the user.
func (s *tokenService) GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "expense-chat",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken validates a session token, rejecting revoked tokens.
func (s *tokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.redis.Exists(ctx, revokedTokenKeyPrefix+claims.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked > 0 {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeRevokedToken,
			"token has been revoked",
			domainerror.ErrRevokedToken,
		)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// RevokeToken denylists the token for its remaining lifetime.
func (s *tokenService) RevokeToken(ctx context.Context, token string) error {
	claims, err := s.parseJWT(token)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := s.redis.Set(ctx, revokedTokenKeyPrefix+claims.ID, "1", remaining).Err(); err != nil {
		return fmt.Errorf("failed to denylist token: %w", err)
	}

	return nil
}

// parseJWT parses and validates a session token.
func (s *tokenService) parseJWT(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			fmt.Errorf("failed to parse token: %w", err),
		)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	return claims, nil
}
