package usecase

import (
	"fmt"
	"testing"

	"github.com/dishcovery/backend/internal/domain"
)

func candidate(id string, score, rating float64, matched int) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		Recipe:       domain.Recipe{ID: id, Rating: rating},
		Score:        score,
		MatchedCount: matched,
	}
}

func TestAssemble(t *testing.T) {
	t.Run("drops candidates with nothing matched", func(t *testing.T) {
		page := Assemble([]domain.ScoredCandidate{
			candidate("a", 0.5, 4, 1),
			candidate("b", 0, 5, 0),
		}, 20, 0)

		if page.Total != 1 {
			t.Errorf("Total = %d, want 1", page.Total)
		}
		if len(page.Results) != 1 || page.Results[0].ID != "a" {
			t.Errorf("Results = %v, want only recipe a", page.Results)
		}
	})

	t.Run("keeps partial-only candidates", func(t *testing.T) {
		page := Assemble([]domain.ScoredCandidate{
			{Recipe: domain.Recipe{ID: "p"}, Score: 0.1, PartialCount: 1},
		}, 20, 0)
		if page.Total != 1 {
			t.Errorf("Total = %d, want 1", page.Total)
		}
	})

	t.Run("sorts by score then rating then retrieval order", func(t *testing.T) {
		page := Assemble([]domain.ScoredCandidate{
			candidate("low", 0.2, 5, 1),
			candidate("tie-low-rating", 0.8, 3.5, 1),
			candidate("tie-high-rating", 0.8, 4.5, 1),
			candidate("tie-equal-first", 0.5, 4, 1),
			candidate("tie-equal-second", 0.5, 4, 1),
		}, 20, 0)

		wantOrder := []string{"tie-high-rating", "tie-low-rating", "tie-equal-first", "tie-equal-second", "low"}
		if len(page.Results) != len(wantOrder) {
			t.Fatalf("len = %d, want %d", len(page.Results), len(wantOrder))
		}
		for i, want := range wantOrder {
			if page.Results[i].ID != want {
				t.Errorf("Results[%d] = %s, want %s", i, page.Results[i].ID, want)
			}
		}
	})

	t.Run("annotates score and percentage", func(t *testing.T) {
		page := Assemble([]domain.ScoredCandidate{
			{Recipe: domain.Recipe{ID: "a"}, Score: 0.456, MatchedCount: 1, MatchedNames: []string{"tomato"}},
		}, 20, 0)

		got := page.Results[0]
		if got.MatchScore != 0.456 {
			t.Errorf("MatchScore = %v, want 0.456", got.MatchScore)
		}
		if got.MatchPercentage != 46 {
			t.Errorf("MatchPercentage = %d, want 46", got.MatchPercentage)
		}
		if len(got.MatchedNames) != 1 || got.MatchedNames[0] != "tomato" {
			t.Errorf("MatchedNames = %v, want [tomato]", got.MatchedNames)
		}
	})
}

func TestAssemblePagination(t *testing.T) {
	// 150 candidates with strictly decreasing scores so rank i is candidate i.
	candidates := make([]domain.ScoredCandidate, 150)
	for i := range candidates {
		candidates[i] = candidate(fmt.Sprintf("r%03d", i+1), float64(150-i)/150.0, 0, 1)
	}

	page := Assemble(candidates, 20, 40)

	if page.Total != 150 {
		t.Errorf("Total = %d, want 150", page.Total)
	}
	if len(page.Results) != 20 {
		t.Fatalf("len(Results) = %d, want 20", len(page.Results))
	}
	// Ranks 41-60.
	if page.Results[0].ID != "r041" {
		t.Errorf("first = %s, want r041", page.Results[0].ID)
	}
	if page.Results[19].ID != "r060" {
		t.Errorf("last = %s, want r060", page.Results[19].ID)
	}
	if page.Limit != 20 || page.Offset != 40 {
		t.Errorf("Limit/Offset = %d/%d, want 20/40", page.Limit, page.Offset)
	}
}

func TestAssembleLimits(t *testing.T) {
	candidates := []domain.ScoredCandidate{candidate("a", 0.5, 4, 1)}

	t.Run("limit capped at maximum", func(t *testing.T) {
		page := Assemble(candidates, 500, 0)
		if page.Limit != MaxPageSize {
			t.Errorf("Limit = %d, want %d", page.Limit, MaxPageSize)
		}
	})

	t.Run("zero limit gets default", func(t *testing.T) {
		page := Assemble(candidates, 0, 0)
		if page.Limit != DefaultPageSize {
			t.Errorf("Limit = %d, want %d", page.Limit, DefaultPageSize)
		}
	})

	t.Run("negative offset floored at zero", func(t *testing.T) {
		page := Assemble(candidates, 20, -5)
		if page.Offset != 0 {
			t.Errorf("Offset = %d, want 0", page.Offset)
		}
		if len(page.Results) != 1 {
			t.Errorf("len = %d, want 1", len(page.Results))
		}
	})

	t.Run("offset past the end yields empty page", func(t *testing.T) {
		page := Assemble(candidates, 20, 100)
		if len(page.Results) != 0 {
			t.Errorf("len = %d, want 0", len(page.Results))
		}
		if page.Total != 1 {
			t.Errorf("Total = %d, want 1", page.Total)
		}
	})
}

func TestAssembleCatalog(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: "mid", Rating: 4.0},
		{ID: "top", Rating: 4.8},
		{ID: "unrated"},
	}

	t.Run("full catalog by rating with zero scores", func(t *testing.T) {
		page := AssembleCatalog(recipes, 0, 0)

		if page.Total != 3 || len(page.Results) != 3 {
			t.Fatalf("Total/len = %d/%d, want 3/3", page.Total, len(page.Results))
		}
		wantOrder := []string{"top", "mid", "unrated"}
		for i, want := range wantOrder {
			if page.Results[i].ID != want {
				t.Errorf("Results[%d] = %s, want %s", i, page.Results[i].ID, want)
			}
			if page.Results[i].MatchScore != 0 || page.Results[i].MatchPercentage != 0 {
				t.Errorf("Results[%d] has nonzero score", i)
			}
		}
	})

	t.Run("explicit limit paginates the catalog", func(t *testing.T) {
		page := AssembleCatalog(recipes, 2, 1)
		if len(page.Results) != 2 || page.Results[0].ID != "mid" {
			t.Errorf("Results = %v, want mid,unrated", page.Results)
		}
	})

	t.Run("does not mutate the input order", func(t *testing.T) {
		AssembleCatalog(recipes, 0, 0)
		if recipes[0].ID != "mid" {
			t.Error("input slice was reordered")
		}
	})
}
