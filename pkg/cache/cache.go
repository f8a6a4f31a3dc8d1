package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines cache operations. Values are stored as JSON strings so
// memory and Redis backends behave identically.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// GetTyped retrieves key and unmarshals the stored JSON into T.
func GetTyped[T any](ctx context.Context, c Service, key string) (T, error) {
	var obj T
	var raw string
	if err := c.Get(ctx, key, &raw); err != nil {
		return obj, err
	}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return obj, err
	}
	return obj, nil
}

// SetTyped marshals value as JSON and stores it under key.
func SetTyped(ctx context.Context, c Service, key string, value interface{}, expiration time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(b), expiration)
}
