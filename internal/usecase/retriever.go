package usecase

import (
	"sort"

	"github.com/dishcovery/backend/internal/domain"
)

// Retriever narrows the candidate set before scoring using an inverted
// index from normalized ingredient key to recipe position. This is a
// coarse overlap filter, not a ranking step: one shared ingredient is
// enough to pass, and the scorer decides how good the match really is.
// Build once per catalog snapshot and reuse across queries.
type Retriever struct {
	recipes []domain.Recipe
	index   map[string][]int
}

// NewRetriever indexes a catalog snapshot. Recipes with an empty
// ingredient list are never candidates and are left out of the index.
func NewRetriever(recipes []domain.Recipe) *Retriever {
	index := make(map[string][]int)
	for i, recipe := range recipes {
		seen := make(map[string]bool, len(recipe.Ingredients))
		for _, ing := range recipe.Ingredients {
			key := NormalizeIngredient(ing)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			index[key] = append(index[key], i)
		}
	}
	return &Retriever{recipes: recipes, index: index}
}

// Retrieve returns every recipe whose normalized ingredient set overlaps
// the expanded query keys, in catalog order.
func (r *Retriever) Retrieve(expandedKeys []string) []domain.Recipe {
	hit := make(map[int]bool)
	for _, key := range expandedKeys {
		for _, pos := range r.index[key] {
			hit[pos] = true
		}
	}

	positions := make([]int, 0, len(hit))
	for pos := range hit {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	candidates := make([]domain.Recipe, 0, len(positions))
	for _, pos := range positions {
		candidates = append(candidates, r.recipes[pos])
	}
	return candidates
}

// Recipes returns the snapshot this retriever was built over.
func (r *Retriever) Recipes() []domain.Recipe {
	return r.recipes
}
