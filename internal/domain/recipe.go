package domain

// Recipe is one entry in the recipe catalog. The ingredient list is the
// canonical source of truth for matching and is never mutated here; the
// catalog service owns writes.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Ingredients []string `json:"ingredients"`
	Rating      float64  `json:"rating,omitempty"` // 0-5, one decimal, 0 = unrated
	Cuisine     string   `json:"cuisine,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	TimeMinutes int      `json:"timeMinutes,omitempty"`
}

// ScoredCandidate is a per-query scoring result for one recipe.
// Transient: created during scoring, discarded once the page is built.
type ScoredCandidate struct {
	Recipe           Recipe   `json:"recipe"`
	Score            float64  `json:"score"` // normalized to [0,1]
	MatchedCount     int      `json:"matchedCount"`
	PartialCount     int      `json:"partialCount"`
	MatchedNames     []string `json:"matchedNames,omitempty"`
	TotalIngredients int      `json:"totalIngredients"`
}

// RankedRecipe is a Recipe annotated with its match score for callers.
type RankedRecipe struct {
	Recipe
	MatchScore      float64  `json:"matchScore"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchedNames    []string `json:"matchedIngredients,omitempty"`
}

// ResultPage is one page of ranked results plus the pre-pagination total.
type ResultPage struct {
	Results []RankedRecipe `json:"results"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

// MatchRequest is a single matching query. An empty ingredient list is a
// defined state (full catalog by rating), not an error.
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
	Limit       int      `json:"limit,omitempty"`
	Offset      int      `json:"offset,omitempty"`
}

// SearchResult is one row returned by the remote search service.
type SearchResult struct {
	RecipeID         string   `json:"recipe_id"`
	Title            string   `json:"title"`
	ImageURL         string   `json:"image_url,omitempty"`
	Score            float64  `json:"score"`
	Matched          []string `json:"matched,omitempty"`
	TotalIngredients int      `json:"total_ingredients"`
	Cuisine          string   `json:"cuisine,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	TimeMin          int      `json:"time_min,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
}

// SearchResponse is the remote search service response envelope.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}
