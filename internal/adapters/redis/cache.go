package redisad

import (
	"context"

	"github.com/redis/go-redis/v9"

	"wedding_site/internal/adapters/observability"
)

const blobKey = "geocoding_cache"

// BlobStore keeps the location-cache blob under a single redis key,
// mirroring the file store's one-blob layout.
type BlobStore struct{ c *redis.Client }

func New(addr, pass string, db int) *BlobStore {
	return &BlobStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *BlobStore) Load(ctx context.Context) ([]byte, error) {
	v, err := r.c.Get(ctx, blobKey).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	observability.ObserveCache("redis", "hit")
	return v, nil
}

func (r *BlobStore) Save(ctx context.Context, b []byte) error {
	observability.ObserveCache("redis", "set")
	return r.c.Set(ctx, blobKey, b, 0).Err()
}

func (r *BlobStore) Delete(ctx context.Context) error {
	observability.ObserveCache("redis", "del")
	return r.c.Del(ctx, blobKey).Err()
}
