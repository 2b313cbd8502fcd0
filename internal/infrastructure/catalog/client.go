package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dishcovery/backend/internal/domain"
)

// Client reads the recipe catalog service. Full-catalog dumps are heavy on
// the upstream store, so calls are rate limited and retried with backoff;
// the snapshot cache in front of this client keeps call volume low.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// recipesResponse is the catalog service envelope for recipe dumps.
type recipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// ingredientsResponse is the envelope for the known-ingredient-name dump.
type ingredientsResponse struct {
	Ingredients []string `json:"ingredients"`
}

// NewClient creates a catalog client. One full dump per second with a
// small burst is plenty: the cache absorbs nearly all reads.
func NewClient(apiKey, baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
		logger:      logger,
	}
}

// GetRecipes fetches the full recipe collection.
func (c *Client) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var resp recipesResponse
	if err := c.getJSON(ctx, "/v1/recipes", &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("fetched catalog", zap.Int("recipes", len(resp.Recipes)))
	return resp.Recipes, nil
}

// GetIngredientNames fetches every ingredient name known to the catalog.
func (c *Client) GetIngredientNames(ctx context.Context) ([]string, error) {
	var resp ingredientsResponse
	if err := c.getJSON(ctx, "/v1/ingredients", &resp); err != nil {
		return nil, err
	}
	return resp.Ingredients, nil
}

// getJSON executes a GET with rate limiting and up to three attempts,
// backing off between transient failures.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	reqURL := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.logger.Debug("catalog request failed",
				zap.String("path", path),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			lastErr = err
			if sleepErr := sleepCtx(ctx, exponentialBackoff(attempt)); sleepErr != nil {
				return sleepErr
			}
			continue
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode catalog response: %w", err)
		}
		return nil
	}
	return lastErr
}

// doRequest performs one attempt and returns the response body.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "dishcovery-backend/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}
	return body, nil
}

// exponentialBackoff returns the wait before the next retry attempt.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

// sleepCtx sleeps for d unless the context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
