// Package repository provides persistence for analytics configs and counters.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/allisson/identity/internal/errors"
)

// RedisCounterRepository stores counters in Redis. Keys are project-scoped so
// a counter name never collides across projects.
type RedisCounterRepository struct {
	client *redis.Client
}

// NewRedisCounterRepository creates a new RedisCounterRepository.
func NewRedisCounterRepository(client *redis.Client) *RedisCounterRepository {
	return &RedisCounterRepository{client: client}
}

// Increment adds one to the counter and returns the new value.
func (r *RedisCounterRepository) Increment(ctx context.Context, projectID int64, name string) (int64, error) {
	value, err := r.client.Incr(ctx, counterKey(projectID, name)).Result()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to increment counter")
	}
	return value, nil
}

// Get returns the current counter value. A missing key reads as zero.
func (r *RedisCounterRepository) Get(ctx context.Context, projectID int64, name string) (int64, error) {
	value, err := r.client.Get(ctx, counterKey(projectID, name)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, "failed to get counter")
	}
	return value, nil
}

// Reset sets the counter back to zero by removing its key.
func (r *RedisCounterRepository) Reset(ctx context.Context, projectID int64, name string) error {
	if err := r.client.Del(ctx, counterKey(projectID, name)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to reset counter")
	}
	return nil
}

func counterKey(projectID int64, name string) string {
	return fmt.Sprintf("counter:%d:%s", projectID, name)
}
