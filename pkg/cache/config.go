package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// MemoryConfig holds in-memory cache settings.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// MemoryOption configures MemoryCache.
type MemoryOption func(*MemoryConfig)

// WithMemoryMaxSize sets max entry count before LRU eviction.
func WithMemoryMaxSize(size int) MemoryOption {
	return func(c *MemoryConfig) {
		if size > 0 {
			c.MaxSize = size
		}
	}
}

// WithCleanupInterval sets the expired-entry sweep interval.
func WithCleanupInterval(interval time.Duration) MemoryOption {
	return func(c *MemoryConfig) {
		if interval > 0 {
			c.CleanupInterval = interval
		}
	}
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	Prefix   string
}

// RedisOption configures RedisCache.
type RedisOption func(*RedisConfig)

// WithRedisAddr sets host and port.
func WithRedisAddr(host string, port int) RedisOption {
	return func(c *RedisConfig) {
		c.Host = host
		c.Port = port
	}
}

// WithRedisAuth sets password and database index.
func WithRedisAuth(password string, db int) RedisOption {
	return func(c *RedisConfig) {
		c.Password = password
		c.DB = db
	}
}

// WithRedisPrefix sets the key namespace prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(c *RedisConfig) {
		c.Prefix = prefix
	}
}

func marshalValue(value interface{}) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("cache marshal: %w", err)
	}
	return string(b), nil
}

func unmarshalValue(raw string, dest interface{}) error {
	if strPtr, ok := dest.(*string); ok {
		*strPtr = raw
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("cache unmarshal: %w", err)
	}
	return nil
}
