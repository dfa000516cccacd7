package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"transfers.app/billing/model"
)

const entryTTL = 24 * time.Hour

// IdempotencyCluster backs the bill creation idempotency keys.
var IdempotencyCluster = cache.NewCluster("idempotency-cluster", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(entryTTL),
	},
)

// Store persists idempotency entries. Get returns cache.Miss for unknown keys.
type Store interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, key model.IdempotencyKey) error
}

type keyspaceStore struct {
	ks *cache.StructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry]
}

func (s keyspaceStore) Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	return s.ks.Get(ctx, key)
}

func (s keyspaceStore) Set(ctx context.Context, key model.IdempotencyKey, entry model.IdempotencyCacheEntry) error {
	return s.ks.Set(ctx, key, entry)
}

func (s keyspaceStore) Delete(ctx context.Context, key model.IdempotencyKey) error {
	_, err := s.ks.Delete(ctx, key)
	return err
}
