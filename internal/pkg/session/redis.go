package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/putrawicaksana/travelreg/internal/pkg/hash"
)

const keyPrefix = "session:"

// RedisStore is a Store backed by Redis. Tokens are hashed with a keyed MAC
// before being used as keys.
type RedisStore struct {
	client *redis.Client
	hasher hash.Hash
}

// NewRedisStore creates a RedisStore using the given client and token hasher.
func NewRedisStore(client *redis.Client, hasher hash.Hash) *RedisStore {
	return &RedisStore{client: client, hasher: hasher}
}

func (rs *RedisStore) key(token string) (string, error) {
	hashed, err := rs.hasher.Hash(token)
	if err != nil {
		return "", err
	}
	return keyPrefix + hashed, nil
}

// Load returns the state for token, or ErrNotFound.
func (rs *RedisStore) Load(ctx context.Context, token string) (*State, error) {
	key, err := rs.key(token)
	if err != nil {
		return nil, err
	}

	raw, err := rs.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Save writes the state for token with the given lifetime.
func (rs *RedisStore) Save(ctx context.Context, token string, state *State, ttl time.Duration) error {
	key, err := rs.key(token)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return rs.client.Set(ctx, key, raw, ttl).Err()
}

// Delete removes the state for token.
func (rs *RedisStore) Delete(ctx context.Context, token string) error {
	key, err := rs.key(token)
	if err != nil {
		return err
	}

	return rs.client.Del(ctx, key).Err()
}
