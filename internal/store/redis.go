package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wagiedev/tfsblame-go/internal/blame"
)

// Redis stores every result as a JSON document under <prefix>:result:<path>
// and keeps the paths, ordered by first insertion, in the sorted set
// <prefix>:paths.
type Redis struct {
	rdb       redis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// Compile-time verification that Redis implements Store.
var _ Store = (*Redis)(nil)

// NewRedis creates a Redis-backed store. An empty prefix defaults to "tfsblame".
func NewRedis(rdb redis.UniversalClient, keyPrefix string) *Redis {
	if keyPrefix == "" {
		keyPrefix = "tfsblame"
	}

	return &Redis{
		rdb:       rdb,
		keyPrefix: strings.TrimSuffix(keyPrefix, ":"),
	}
}

// WithTTL returns a copy of the store whose result documents expire after ttl.
func (r *Redis) WithTTL(ttl time.Duration) *Redis {
	clone := *r
	clone.ttl = ttl

	return &clone
}

func (r *Redis) resultKey(path string) string {
	return r.keyPrefix + ":result:" + path
}

func (r *Redis) pathsKey() string {
	return r.keyPrefix + ":paths"
}

// BlameResult implements blame.Output.
func (r *Redis) BlameResult(ctx context.Context, file blame.InputFile, result *blame.Result) error {
	path := file.AbsolutePath()

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result for %s: %w", path, err)
	}

	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.resultKey(path), payload, r.ttl)
		pipe.ZAddNX(ctx, r.pathsKey(), redis.Z{
			Score:  float64(time.Now().UnixNano()),
			Member: path,
		})

		return nil
	})
	if err != nil {
		return fmt.Errorf("store result for %s: %w", path, err)
	}

	return nil
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, path string) (*blame.Result, error) {
	payload, err := r.rdb.Get(ctx, r.resultKey(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("load result for %s: %w", path, err)
	}

	var result blame.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode result for %s: %w", path, err)
	}

	return &result, nil
}

// Paths implements Store.
func (r *Redis) Paths(ctx context.Context) ([]string, error) {
	paths, err := r.rdb.ZRange(ctx, r.pathsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}

	return paths, nil
}
