package domain

import (
	"context"
	"time"
)

// CatalogClient defines read access to the recipe catalog service.
// The matching engine never writes to the catalog.
type CatalogClient interface {
	GetRecipes(ctx context.Context) ([]Recipe, error)
	GetIngredientNames(ctx context.Context) ([]string, error)
}

// SearchClient defines the remote search/scoring capability that the
// orchestrator tries before falling back to the local pipeline.
type SearchClient interface {
	Search(ctx context.Context, req MatchRequest) (*SearchResponse, error)
}

// CacheStore defines the interface for cache backends (memory or redis).
// Get returns ErrCacheMiss for absent or expired keys.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
