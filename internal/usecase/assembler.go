package usecase

import (
	"math"
	"sort"

	"github.com/dishcovery/backend/internal/domain"
)

// Pagination bounds. The limit cap applies regardless of what the caller
// asks for.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Assemble sorts, tie-breaks, and paginates scored candidates into a
// result page. Candidates with no matched and no partial ingredients are
// dropped. Order: score descending, then rating descending, then original
// retrieval order. Total reports the pre-pagination candidate count.
func Assemble(candidates []domain.ScoredCandidate, limit, offset int) domain.ResultPage {
	kept := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.MatchedCount == 0 && c.PartialCount == 0 {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Recipe.Rating > kept[j].Recipe.Rating
	})

	limit = ClampLimit(limit)
	offset = ClampOffset(offset)

	page := domain.ResultPage{
		Results: []domain.RankedRecipe{},
		Total:   len(kept),
		Limit:   limit,
		Offset:  offset,
	}

	for i := offset; i < len(kept) && i < offset+limit; i++ {
		page.Results = append(page.Results, rankCandidate(kept[i]))
	}
	return page
}

// AssembleCatalog builds the empty-query page: the full catalog sorted by
// rating descending, every score zero, no candidate filtering. When limit
// is zero the whole catalog is returned in one page.
func AssembleCatalog(recipes []domain.Recipe, limit, offset int) domain.ResultPage {
	ordered := make([]domain.Recipe, len(recipes))
	copy(ordered, recipes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rating > ordered[j].Rating
	})

	offset = ClampOffset(offset)
	if limit <= 0 {
		limit = len(ordered)
	} else {
		limit = ClampLimit(limit)
	}

	page := domain.ResultPage{
		Results: []domain.RankedRecipe{},
		Total:   len(ordered),
		Limit:   limit,
		Offset:  offset,
	}

	for i := offset; i < len(ordered) && i < offset+limit; i++ {
		page.Results = append(page.Results, domain.RankedRecipe{Recipe: ordered[i]})
	}
	return page
}

// ClampLimit applies the default and the hard cap.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	if limit > MaxPageSize {
		return MaxPageSize
	}
	return limit
}

// ClampOffset floors negative offsets at zero.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// rankCandidate converts a scored candidate into the caller-facing shape.
func rankCandidate(c domain.ScoredCandidate) domain.RankedRecipe {
	return domain.RankedRecipe{
		Recipe:          c.Recipe,
		MatchScore:      c.Score,
		MatchPercentage: MatchPercentage(c.Score),
		MatchedNames:    c.MatchedNames,
	}
}

// MatchPercentage converts a [0,1] score to a rounded whole percentage.
func MatchPercentage(score float64) int {
	return int(math.Round(score * 100))
}
