// Package storage persists rooms in Redis as whole JSON records with a
// sliding TTL. Reads and writes are whole-record: concurrent actions on
// the same room are last-writer-wins, with no version/CAS guard. That
// matches the game's consistency model; do not add optimistic locking
// here without revisiting the engine's assumptions.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fqlipe/football-imposter/internal/apperrors"
	"github.com/fqlipe/football-imposter/internal/game/room"
)

const roomKeyPrefix = "room:"

// RedisStore is the room registry.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a registry with the given idle-room expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// SaveRoom writes the full room record and refreshes its TTL.
func (rs *RedisStore) SaveRoom(ctx context.Context, r *room.Room) error {
	if r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal room %s: %w", r.Code, err)
	}

	return rs.client.Set(ctx, roomKeyPrefix+r.Code, data, rs.ttl).Err()
}

// LoadRoom reads a room record. A missing room returns (nil, nil); a
// record that does not decode into a valid room fails loudly rather
// than leaking malformed state into the engine.
func (rs *RedisStore) LoadRoom(ctx context.Context, code string) (*room.Room, error) {
	data, err := rs.client.Get(ctx, roomKeyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var r room.Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, apperrors.ErrBadRoomRecord
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// DeleteRoom removes a room record.
func (rs *RedisStore) DeleteRoom(ctx context.Context, code string) error {
	return rs.client.Del(ctx, roomKeyPrefix+code).Err()
}

// RoomExists reports whether a code is taken, for collision retries
// during creation.
func (rs *RedisStore) RoomExists(ctx context.Context, code string) (bool, error) {
	n, err := rs.client.Exists(ctx, roomKeyPrefix+code).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
