package usecase

import (
	"testing"

	"github.com/dishcovery/backend/internal/domain"
)

func TestScoreExactMatch(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorRecipeIngredients)

	recipe := domain.Recipe{
		Title:       "Tomato Soup",
		Ingredients: []string{"tomato", "onion", "garlic", "cream"},
		Rating:      4.5,
	}

	got := scorer.Score(recipe, []string{"tomato", "onion"})

	if got.MatchedCount != 2 {
		t.Errorf("MatchedCount = %d, want 2", got.MatchedCount)
	}
	if got.PartialCount != 0 {
		t.Errorf("PartialCount = %d, want 0", got.PartialCount)
	}
	// (2*2 + 0) / (4*2) = 0.5
	if got.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", got.Score)
	}
	if MatchPercentage(got.Score) != 50 {
		t.Errorf("MatchPercentage = %d, want 50", MatchPercentage(got.Score))
	}
}

func TestScoreQueryDenominator(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorQueryIngredients)

	recipe := domain.Recipe{
		Ingredients: []string{"tomato", "onion", "garlic", "cream"},
	}

	// Same query as above, but the local formula divides by the query
	// ingredient count: (2*2 + 0) / (2*2) = 1.0.
	got := scorer.Score(recipe, []string{"tomato", "onion"})
	if got.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0 with query denominator", got.Score)
	}
}

func TestScoreSynonymMatch(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorQueryIngredients)

	recipe := domain.Recipe{
		Ingredients: []string{"scallion", "rice"},
	}

	got := scorer.Score(recipe, []string{"spring onion"})
	if got.MatchedCount != 1 {
		t.Errorf("MatchedCount = %d, want 1 (synonym)", got.MatchedCount)
	}
	if len(got.MatchedNames) != 1 || got.MatchedNames[0] != "scallion" {
		t.Errorf("MatchedNames = %v, want [scallion]", got.MatchedNames)
	}
}

func TestScorePartialMatch(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorQueryIngredients)

	recipe := domain.Recipe{
		Ingredients: []string{"tomato"},
	}

	t.Run("truncated query ingredient counts as partial", func(t *testing.T) {
		got := scorer.Score(recipe, []string{"tomat"})
		if got.MatchedCount != 0 {
			t.Errorf("MatchedCount = %d, want 0", got.MatchedCount)
		}
		if got.PartialCount != 1 {
			t.Errorf("PartialCount = %d, want 1", got.PartialCount)
		}
		// Partial weight is 1, not 2: (0*2 + 1) / (1*2) = 0.5.
		if got.Score != 0.5 {
			t.Errorf("Score = %v, want 0.5", got.Score)
		}
		if len(got.MatchedNames) != 0 {
			t.Errorf("MatchedNames = %v, want empty for partial-only match", got.MatchedNames)
		}
	})

	t.Run("containment works in both directions", func(t *testing.T) {
		got := scorer.Score(domain.Recipe{Ingredients: []string{"tomato"}}, []string{"tomato paste"})
		if got.PartialCount != 1 {
			t.Errorf("PartialCount = %d, want 1 for query containing recipe key", got.PartialCount)
		}
	})
}

func TestScoreMatchedNamesFirstWin(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorQueryIngredients)

	recipe := domain.Recipe{
		Ingredients: []string{"Tomato", "roma tomato"},
	}

	got := scorer.Score(recipe, []string{"tomato"})
	if len(got.MatchedNames) != 1 || got.MatchedNames[0] != "Tomato" {
		t.Errorf("MatchedNames = %v, want the first satisfying recipe ingredient", got.MatchedNames)
	}
}

func TestScoreEdgeCases(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorQueryIngredients)

	t.Run("malformed query ingredients contribute nothing", func(t *testing.T) {
		recipe := domain.Recipe{Ingredients: []string{"tomato"}}
		got := scorer.Score(recipe, []string{"", "  !!  ", "tomato"})
		if got.MatchedCount != 1 {
			t.Errorf("MatchedCount = %d, want 1", got.MatchedCount)
		}
		// Only the one usable query ingredient counts toward the
		// denominator: (1*2) / (1*2) = 1.
		if got.Score != 1.0 {
			t.Errorf("Score = %v, want 1.0", got.Score)
		}
	})

	t.Run("all-empty query scores zero", func(t *testing.T) {
		got := scorer.Score(domain.Recipe{Ingredients: []string{"tomato"}}, []string{"", ""})
		if got.Score != 0 {
			t.Errorf("Score = %v, want 0", got.Score)
		}
	})

	t.Run("empty recipe scores zero under recipe denominator", func(t *testing.T) {
		recipeScorer := NewScorer(NewSynonymResolver(), DenominatorRecipeIngredients)
		got := recipeScorer.Score(domain.Recipe{}, []string{"tomato"})
		if got.Score != 0 {
			t.Errorf("Score = %v, want 0", got.Score)
		}
	})

	t.Run("unknown denominator falls back to query formula", func(t *testing.T) {
		s := NewScorer(NewSynonymResolver(), ScoreDenominator("bogus"))
		if s.denominator != DenominatorQueryIngredients {
			t.Errorf("denominator = %v, want query fallback", s.denominator)
		}
	})
}

// TestScoreBounds exercises lopsided inputs and checks scores stay in [0,1].
func TestScoreBounds(t *testing.T) {
	resolver := NewSynonymResolver()

	recipes := []domain.Recipe{
		{Ingredients: []string{"tomato"}},
		{Ingredients: []string{"tomato", "onion", "garlic", "cream", "basil", "salt"}},
		{Ingredients: nil},
	}
	queries := [][]string{
		{"tomato"},
		{"tomato", "onion", "garlic", "cream", "basil", "salt", "pepper", "oil"},
		{},
		{"", "!!"},
	}

	for _, denom := range []ScoreDenominator{DenominatorRecipeIngredients, DenominatorQueryIngredients} {
		scorer := NewScorer(resolver, denom)
		for _, recipe := range recipes {
			for _, query := range queries {
				got := scorer.Score(recipe, query)
				if got.Score < 0 || got.Score > 1 {
					t.Errorf("Score = %v out of bounds (denom=%s recipe=%v query=%v)",
						got.Score, denom, recipe.Ingredients, query)
				}
			}
		}
	}
}

// A one-ingredient recipe fully covered by a longer query would exceed 1.0
// under the recipe denominator without clamping.
func TestScoreClamped(t *testing.T) {
	scorer := NewScorer(NewSynonymResolver(), DenominatorRecipeIngredients)
	recipe := domain.Recipe{Ingredients: []string{"tomato"}}

	got := scorer.Score(recipe, []string{"tomato", "tomato soup"})
	if got.Score != 1.0 {
		t.Errorf("Score = %v, want clamped to 1.0", got.Score)
	}
}
