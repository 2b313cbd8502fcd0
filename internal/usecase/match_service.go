package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dishcovery/backend/internal/domain"
	"github.com/dishcovery/backend/internal/infrastructure/search"
)

// defaultSearchTimeout bounds the remote search attempt before the
// orchestrator commits to the local path.
const defaultSearchTimeout = 3 * time.Second

// errEmptySearchResult makes a successful-but-empty remote response take
// the same fallback route as a failed one.
var errEmptySearchResult = errors.New("remote search returned no results")

// CatalogSource provides the cached catalog snapshot, already indexed for
// retrieval. Implemented by the catalog cache.
type CatalogSource interface {
	Retriever(ctx context.Context) (*Retriever, error)
}

// MatchServiceConfig holds configuration for the match service.
type MatchServiceConfig struct {
	SearchTimeout time.Duration
	Denominator   ScoreDenominator
}

// MatchService is the single public entry point for recipe matching. Per
// query it attempts the remote search service under a bounded wait and
// falls back to the in-process pipeline against the cached catalog on any
// failure, timeout, or empty result. Both paths are read-only with
// respect to the catalog, so every query is independently retryable.
type MatchService struct {
	searchClient  domain.SearchClient
	catalog       CatalogSource
	resolver      *SynonymResolver
	scorer        *Scorer
	searchTimeout time.Duration
	logger        *zap.Logger
}

// NewMatchService creates a match service with its dependencies.
func NewMatchService(
	searchClient domain.SearchClient,
	catalog CatalogSource,
	resolver *SynonymResolver,
	cfg MatchServiceConfig,
	logger *zap.Logger,
) *MatchService {
	timeout := cfg.SearchTimeout
	if timeout <= 0 {
		timeout = defaultSearchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchService{
		searchClient:  searchClient,
		catalog:       catalog,
		resolver:      resolver,
		scorer:        NewScorer(resolver, cfg.Denominator),
		searchTimeout: timeout,
		logger:        logger,
	}
}

// MatchRecipes ranks catalog recipes by how well their ingredients are
// covered by the query. An empty query is a defined state, not an error:
// it returns the full catalog sorted by rating with zero scores.
func (s *MatchService) MatchRecipes(ctx context.Context, req domain.MatchRequest) (*domain.ResultPage, error) {
	if len(req.Ingredients) == 0 {
		retriever, err := s.catalog.Retriever(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		page := AssembleCatalog(retriever.Recipes(), req.Limit, req.Offset)
		return &page, nil
	}

	page, err := s.tryRemote(ctx, req)
	if err == nil {
		return page, nil
	}
	// Remote failures are recovered silently; the caller never sees them.
	s.logger.Debug("remote search unavailable, using local path",
		zap.Error(err),
		zap.Int("ingredients", len(req.Ingredients)),
	)

	return s.matchLocally(ctx, req)
}

// tryRemote runs the single bounded-wait remote attempt. The call is
// synchronous under its own timeout context, so by the time the local path
// starts no late remote response can still reach the caller.
func (s *MatchService) tryRemote(ctx context.Context, req domain.MatchRequest) (*domain.ResultPage, error) {
	sctx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()

	remoteReq := domain.MatchRequest{
		Ingredients: nonEmptyKeys(NormalizeQuery(req.Ingredients)),
		Limit:       ClampLimit(req.Limit),
		Offset:      ClampOffset(req.Offset),
	}

	resp, err := s.searchClient.Search(sctx, remoteReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, errEmptySearchResult
	}
	return search.MapResponse(resp), nil
}

// matchLocally runs retrieval, scoring, and assembly in-process against
// the cached catalog snapshot.
func (s *MatchService) matchLocally(ctx context.Context, req domain.MatchRequest) (*domain.ResultPage, error) {
	retriever, err := s.catalog.Retriever(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	expanded := s.resolver.ExpandAll(NormalizeQuery(req.Ingredients))
	candidates := retriever.Retrieve(expanded)

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, recipe := range candidates {
		breakdown := s.scorer.Score(recipe, req.Ingredients)
		scored = append(scored, domain.ScoredCandidate{
			Recipe:           recipe,
			Score:            breakdown.Score,
			MatchedCount:     breakdown.MatchedCount,
			PartialCount:     breakdown.PartialCount,
			MatchedNames:     breakdown.MatchedNames,
			TotalIngredients: len(recipe.Ingredients),
		})
	}

	s.logger.Debug("local match complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("expanded_keys", len(expanded)),
	)

	page := Assemble(scored, req.Limit, req.Offset)
	return &page, nil
}

// nonEmptyKeys drops keys that normalized to nothing.
func nonEmptyKeys(keys []string) []string {
	kept := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			kept = append(kept, k)
		}
	}
	return kept
}
