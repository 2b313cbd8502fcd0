package search

import (
	"math"

	"github.com/dishcovery/backend/internal/domain"
)

// MapResponse converts a remote search response into the caller-facing
// result page shape.
func MapResponse(resp *domain.SearchResponse) *domain.ResultPage {
	page := &domain.ResultPage{
		Results: make([]domain.RankedRecipe, 0, len(resp.Results)),
		Total:   resp.Total,
		Limit:   resp.Limit,
		Offset:  resp.Offset,
	}
	for _, r := range resp.Results {
		page.Results = append(page.Results, MapResult(r))
	}
	return page
}

// MapResult converts a single remote result row. Remote scores are clamped
// to [0,1] before the percentage is derived, so a misbehaving upstream
// cannot push percentages past 100.
func MapResult(r domain.SearchResult) domain.RankedRecipe {
	score := r.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return domain.RankedRecipe{
		Recipe: domain.Recipe{
			ID:          r.RecipeID,
			Title:       r.Title,
			ImageURL:    r.ImageURL,
			Rating:      r.Rating,
			Cuisine:     r.Cuisine,
			Difficulty:  r.Difficulty,
			TimeMinutes: r.TimeMin,
		},
		MatchScore:      score,
		MatchPercentage: int(math.Round(score * 100)),
		MatchedNames:    r.Matched,
	}
}
