package search

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/dishcovery/backend/internal/domain"
)

// Client talks to the remote recipe search service, which performs
// retrieval and scoring on its own index. Any failure here is recoverable:
// the orchestrator falls back to the local pipeline.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// searchRequest is the wire shape of a remote search call.
type searchRequest struct {
	Ingredients []string `json:"ingredients"`
	Limit       int      `json:"limit"`
	Offset      int      `json:"offset"`
}

// NewClient creates a search client. The timeout bounds each attempt; the
// caller's context can shorten it further.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", "dishcovery-backend/1.0")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}

	return &Client{http: client, logger: logger}
}

// Search posts the query to the remote service. The service rejects empty
// ingredient lists with 400, so that case is refused up front.
func (c *Client) Search(ctx context.Context, req domain.MatchRequest) (*domain.SearchResponse, error) {
	if len(req.Ingredients) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	var result domain.SearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(searchRequest{
			Ingredients: req.Ingredients,
			Limit:       req.Limit,
			Offset:      req.Offset,
		}).
		SetResult(&result).
		Post("/v1/search")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: remote search", domain.ErrRateLimited)
	}
	if resp.IsError() {
		c.logger.Debug("search service error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode())
	}

	return &result, nil
}
