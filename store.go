package tfsblame

import (
	"github.com/redis/go-redis/v9"

	"github.com/wagiedev/tfsblame-go/internal/store"
)

// Store is an Output whose results can be read back.
type Store = store.Store

// ErrResultNotFound indicates no result is stored for a path.
var ErrResultNotFound = store.ErrResultNotFound

// NewMemoryStore returns a Store keeping results in memory. It is safe for
// concurrent sessions.
func NewMemoryStore() *MemoryStore {
	return store.NewMemory()
}

// NewRedisStore returns a Store keeping results in Redis under keyPrefix.
func NewRedisStore(rdb redis.UniversalClient, keyPrefix string) *RedisStore {
	return store.NewRedis(rdb, keyPrefix)
}

// MemoryStore keeps results in process memory.
type MemoryStore = store.Memory

// RedisStore keeps results in Redis.
type RedisStore = store.Redis
