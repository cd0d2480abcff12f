package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"tridivya/internal/config"
)

const (
	revokedPrefix     = "revoked:"
	userRevokedPrefix = "revoked_user:"
)

// TokenStore remembers revoked access tokens until they would have expired
// anyway. Single tokens are revoked by id; all of a user's tokens are revoked
// by recording a cutoff that tokens issued earlier fall behind.
type TokenStore struct {
	client *redis.Client
}

func NewClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func New(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	return nil
}

func (s *TokenStore) Close() error {
	return s.client.Close()
}

// Revoke marks token id as unusable for ttl. A non-positive ttl is a no-op,
// the token is already expired.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	const op = "storage.redis.Revoke"

	if ttl <= 0 {
		return nil
	}

	if err := s.client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RevokeUser invalidates every token issued to userID up to now. ttl is the
// longest a token lives, after which the cutoff is no longer needed.
func (s *TokenStore) RevokeUser(ctx context.Context, userID uuid.UUID, ttl time.Duration) error {
	const op = "storage.redis.RevokeUser"

	if err := s.client.Set(ctx, userRevokedPrefix+userID.String(), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsRevoked reports whether the token is revoked, either by id or because
// it was issued to userID before the user's cutoff.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string, userID uuid.UUID, issuedAt time.Time) (bool, error) {
	const op = "storage.redis.IsRevoked"

	pipe := s.client.Pipeline()
	byID := pipe.Exists(ctx, revokedPrefix+tokenID)
	cutoff := pipe.Get(ctx, userRevokedPrefix+userID.String())

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if byID.Val() > 0 {
		return true, nil
	}

	at, err := cutoff.Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return issuedAt.Unix() < at, nil
}
