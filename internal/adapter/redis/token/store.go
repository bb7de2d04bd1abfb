// Package token stores the live refresh-token hash of each user in Redis.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/unwind-backend/internal/domain"
)

const keyPrefix = "refresh_token:"

// Store keeps one refresh-token hash per user with a TTL.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a token store whose entries expire after ttl.
func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

// Save replaces the user's stored hash and resets its TTL.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	if err := s.rdb.Set(ctx, key(userID), tokenHash, s.ttl).Err(); err != nil {
		return fmt.Errorf("refresh token %s: save: %w", userID, err)
	}
	return nil
}

// Get returns the stored hash, or domain.ErrNotFound when absent or expired.
func (s *Store) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	val, err := s.rdb.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("refresh token %s: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("refresh token %s: get: %w", userID, err)
	}
	return val, nil
}

// Delete removes the user's stored hash. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("refresh token %s: delete: %w", userID, err)
	}
	return nil
}

// Ping checks the connection. Used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
