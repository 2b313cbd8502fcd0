package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dishcovery/backend/internal/domain"
	"github.com/dishcovery/backend/internal/usecase"
)

// Cache keys shared by the memory and redis backends.
const (
	recipesKey     = "catalog:recipes"
	ingredientsKey = "catalog:ingredients"
)

// CatalogCache is the read-through cache of the recipe catalog. It is the
// only cross-request state in the engine: populated lazily on first use,
// shared by every local-path query, and reset through Invalidate after the
// catalog is bulk-reloaded upstream. Concurrent cold reads share a single
// in-flight load via singleflight instead of stampeding the catalog
// service. The retrieval index is built once per snapshot, at warm time.
type CatalogCache struct {
	store  domain.CacheStore
	client domain.CatalogClient
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger

	mu             sync.RWMutex
	retriever      *usecase.Retriever
	retrieverUntil time.Time
	names          []string
	namesUntil     time.Time
}

// NewCatalogCache creates a catalog cache over the given backend store and
// catalog client.
func NewCatalogCache(store domain.CacheStore, client domain.CatalogClient, ttl time.Duration, logger *zap.Logger) *CatalogCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CatalogCache{
		store:  store,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Retriever returns the warm retrieval index over the current catalog
// snapshot, loading the snapshot if needed.
func (c *CatalogCache) Retriever(ctx context.Context) (*usecase.Retriever, error) {
	c.mu.RLock()
	if c.retriever != nil && time.Now().Before(c.retrieverUntil) {
		defer c.mu.RUnlock()
		return c.retriever, nil
	}
	c.mu.RUnlock()

	result, err, shared := c.group.Do(recipesKey, func() (interface{}, error) {
		recipes, err := c.loadRecipes(ctx)
		if err != nil {
			return nil, err
		}
		retriever := usecase.NewRetriever(recipes)
		c.mu.Lock()
		c.retriever = retriever
		c.retrieverUntil = time.Now().Add(c.ttl)
		c.mu.Unlock()
		return retriever, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("catalog warm-up shared across concurrent queries")
	}
	return result.(*usecase.Retriever), nil
}

// IngredientNames returns every ingredient name the catalog knows,
// read through the same cache lifecycle as the recipe snapshot.
func (c *CatalogCache) IngredientNames(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	if c.names != nil && time.Now().Before(c.namesUntil) {
		defer c.mu.RUnlock()
		return c.names, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do(ingredientsKey, func() (interface{}, error) {
		names, err := c.loadIngredientNames(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.names = names
		c.namesUntil = time.Now().Add(c.ttl)
		c.mu.Unlock()
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]string), nil
}

// Invalidate drops the warm snapshot and the backing store entries so the
// next query reloads from the catalog service.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.retriever = nil
	c.names = nil
	c.mu.Unlock()

	if err := c.store.Delete(ctx, recipesKey); err != nil {
		return err
	}
	if err := c.store.Delete(ctx, ingredientsKey); err != nil {
		return err
	}
	c.logger.Info("catalog cache invalidated")
	return nil
}

// loadRecipes reads the snapshot from the backend store, falling back to
// the catalog service on a miss and writing the result through.
func (c *CatalogCache) loadRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if cached, err := c.store.Get(ctx, recipesKey); err == nil {
		var recipes []domain.Recipe
		if err := json.Unmarshal(cached, &recipes); err == nil {
			c.logger.Debug("catalog snapshot from cache store", zap.Int("recipes", len(recipes)))
			return recipes, nil
		}
		// Corrupt entry; drop it and refetch.
		_ = c.store.Delete(ctx, recipesKey)
	}

	recipes, err := c.client.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipes); err == nil {
		if err := c.store.Set(ctx, recipesKey, data, c.ttl); err != nil {
			c.logger.Warn("failed to write catalog snapshot to cache store", zap.Error(err))
		}
	}
	return recipes, nil
}

// loadIngredientNames mirrors loadRecipes for the ingredient-name dump.
func (c *CatalogCache) loadIngredientNames(ctx context.Context) ([]string, error) {
	if cached, err := c.store.Get(ctx, ingredientsKey); err == nil {
		var names []string
		if err := json.Unmarshal(cached, &names); err == nil {
			return names, nil
		}
		_ = c.store.Delete(ctx, ingredientsKey)
	}

	names, err := c.client.GetIngredientNames(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(names); err == nil {
		if err := c.store.Set(ctx, ingredientsKey, data, c.ttl); err != nil {
			c.logger.Warn("failed to write ingredient names to cache store", zap.Error(err))
		}
	}
	return names, nil
}
