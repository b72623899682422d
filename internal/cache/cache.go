// Package cache provides a small msgpack-encoded cache used for dashboard
// metrics. A redis backend is used when configured; otherwise an in-process
// map keeps the same semantics for single-instance deployments.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache stores msgpack-encoded values with a per-entry lifetime.
type Cache interface {
	// Get decodes the cached value for key into target; the bool reports
	// whether the key was present.
	Get(key string, target any) (bool, error)
	// Set stores value under key for the passed lifetime.
	Set(key string, value any, lifetime time.Duration) error
}

// NewRedis returns a Cache backed by the passed redis options.
func NewRedis(opts *redis.Options) (Cache, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisCache{client: client}, nil
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Get(key string, target any) (bool, error) {
	data, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return true, msgpack.Unmarshal(data, target)
}

func (c *redisCache) Set(key string, value any, lifetime time.Duration) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(context.Background(), key, data, lifetime).Err()
}

// NewMemory returns an in-process Cache. Entries are evicted lazily on read.
func NewMemory() Cache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memoryCache struct {
	mutex   sync.Mutex
	entries map[string]memoryEntry
}

func (c *memoryCache) Get(key string, target any) (bool, error) {
	c.mutex.Lock()
	entry, ok := c.entries[key]
	if ok && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mutex.Unlock()
	if !ok {
		return false, nil
	}
	return true, msgpack.Unmarshal(entry.data, target)
}

func (c *memoryCache) Set(key string, value any, lifetime time.Duration) error {
	data, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}
	c.mutex.Lock()
	c.entries[key] = memoryEntry{data: data, expiresAt: time.Now().Add(lifetime)}
	c.mutex.Unlock()
	return nil
}
