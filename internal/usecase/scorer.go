package usecase

import (
	"strings"

	"github.com/dishcovery/backend/internal/domain"
)

// Match weights: full (exact or synonym) matches count double, partial
// substring matches count single.
const (
	fullMatchWeight    = 2
	partialMatchWeight = 1
)

// ScoreDenominator selects which of the two historical score formulas is
// applied. The two formulas produce different rankings for the same input
// and are deliberately kept separate rather than unified.
type ScoreDenominator string

const (
	// DenominatorRecipeIngredients divides by the recipe's ingredient
	// count; this is the formula the remote search service applies.
	DenominatorRecipeIngredients ScoreDenominator = "recipe"

	// DenominatorQueryIngredients divides by the query's ingredient
	// count; this is the local fallback path's formula.
	DenominatorQueryIngredients ScoreDenominator = "query"
)

// Valid reports whether d names a known formula.
func (d ScoreDenominator) Valid() bool {
	return d == DenominatorRecipeIngredients || d == DenominatorQueryIngredients
}

// ScoreBreakdown is the scoring outcome for one recipe against one query.
type ScoreBreakdown struct {
	MatchedCount int
	PartialCount int
	Score        float64
	MatchedNames []string
}

// Scorer computes normalized match scores for candidate recipes.
type Scorer struct {
	resolver    *SynonymResolver
	denominator ScoreDenominator
}

// NewScorer creates a scorer using the given synonym resolver and formula.
// An unrecognized formula falls back to the query-ingredient denominator.
func NewScorer(resolver *SynonymResolver, denominator ScoreDenominator) *Scorer {
	if !denominator.Valid() {
		denominator = DenominatorQueryIngredients
	}
	return &Scorer{resolver: resolver, denominator: denominator}
}

// Score evaluates one recipe against the query ingredients. Iteration runs
// over the query, not the recipe: each query ingredient is classified as an
// exact match, a synonym match, a partial (substring) match, or nothing,
// and stops at the first recipe ingredient that satisfies it. MatchedNames
// records, for each fully matched query ingredient, the first recipe
// ingredient string that matched it.
func (s *Scorer) Score(recipe domain.Recipe, queryIngredients []string) ScoreBreakdown {
	recipeKeys := make([]string, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		recipeKeys[i] = NormalizeIngredient(ing)
	}

	// Expansions computed lazily; most queries resolve on the exact pass.
	var recipeExpansions [][]string

	var breakdown ScoreBreakdown
	queryCount := 0

	for _, raw := range queryIngredients {
		qKey := NormalizeIngredient(raw)
		if qKey == "" {
			continue
		}
		queryCount++

		if i := indexOfExact(qKey, recipeKeys); i >= 0 {
			breakdown.MatchedCount++
			breakdown.MatchedNames = append(breakdown.MatchedNames, recipe.Ingredients[i])
			continue
		}

		if recipeExpansions == nil {
			recipeExpansions = make([][]string, len(recipeKeys))
			for i, rKey := range recipeKeys {
				if rKey != "" {
					recipeExpansions[i] = s.resolver.Expand(rKey)
				}
			}
		}
		if i := indexOfSynonym(s.resolver.Expand(qKey), recipeExpansions); i >= 0 {
			breakdown.MatchedCount++
			breakdown.MatchedNames = append(breakdown.MatchedNames, recipe.Ingredients[i])
			continue
		}

		if hasPartial(qKey, recipeKeys) {
			breakdown.PartialCount++
		}
	}

	breakdown.Score = s.computeScore(breakdown.MatchedCount, breakdown.PartialCount, len(recipe.Ingredients), queryCount)
	return breakdown
}

// computeScore applies the configured formula and clamps to [0,1].
func (s *Scorer) computeScore(matched, partial, recipeCount, queryCount int) float64 {
	denominator := queryCount
	if s.denominator == DenominatorRecipeIngredients {
		denominator = recipeCount
	}
	if denominator <= 0 {
		return 0
	}

	score := float64(matched*fullMatchWeight+partial*partialMatchWeight) /
		float64(denominator*fullMatchWeight)
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// indexOfExact returns the position of the first recipe key equal to qKey.
func indexOfExact(qKey string, recipeKeys []string) int {
	for i, rKey := range recipeKeys {
		if rKey != "" && rKey == qKey {
			return i
		}
	}
	return -1
}

// indexOfSynonym returns the position of the first recipe ingredient whose
// expansion overlaps the query expansion.
func indexOfSynonym(qExpansion []string, recipeExpansions [][]string) int {
	for i, rExpansion := range recipeExpansions {
		if len(rExpansion) > 0 && intersects(qExpansion, rExpansion) {
			return i
		}
	}
	return -1
}

// hasPartial reports whether qKey is a substring of, or contains, any
// recipe key.
func hasPartial(qKey string, recipeKeys []string) bool {
	for _, rKey := range recipeKeys {
		if rKey == "" {
			continue
		}
		if strings.Contains(rKey, qKey) || strings.Contains(qKey, rKey) {
			return true
		}
	}
	return false
}
