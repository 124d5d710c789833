package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "superadventure:save:"

// RedisStore keeps save slots as Redis string keys.
type RedisStore struct {
	rdb *redis.Client
}

// OpenRedis connects to the server named by a redis:// URL.
func OpenRedis(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("storage: failed to connect to redis: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func redisKey(slot string) string {
	return redisKeyPrefix + slot
}

// Save writes a slot's document without expiry.
func (s *RedisStore) Save(ctx context.Context, slot string, data []byte) error {
	if err := ValidSlot(slot); err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, redisKey(slot), data, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set failed: %w", err)
	}
	return nil
}

// Load returns a slot's document.
func (s *RedisStore) Load(ctx context.Context, slot string) ([]byte, error) {
	if err := ValidSlot(slot); err != nil {
		return nil, err
	}
	data, err := s.rdb.Get(ctx, redisKey(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: redis get failed: %w", err)
	}
	return data, nil
}

// List scans for save keys and returns slot names in sorted order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var slots []string
	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		slots = append(slots, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("storage: redis scan failed: %w", err)
	}
	sort.Strings(slots)
	return slots, nil
}

// Delete removes a slot. Deleting a missing slot returns ErrNotFound.
func (s *RedisStore) Delete(ctx context.Context, slot string) error {
	if err := ValidSlot(slot); err != nil {
		return err
	}
	n, err := s.rdb.Del(ctx, redisKey(slot)).Result()
	if err != nil {
		return fmt.Errorf("storage: redis del failed: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
