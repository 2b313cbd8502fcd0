package usecase

import "sort"

// SynonymResolver expands a normalized ingredient key into its equivalence
// class using the static substitution table. The walk is exactly one hop
// deep in each direction: the key's own entry, plus every entry that lists
// the key as a synonym. Multi-hop chains are not followed.
type SynonymResolver struct {
	table   map[string][]string
	reverse map[string][]string // synonym key -> entry keys that list it
}

// NewSynonymResolver builds a resolver over the built-in substitution table.
func NewSynonymResolver() *SynonymResolver {
	return NewSynonymResolverWithTable(substitutionTable)
}

// NewSynonymResolverWithTable builds a resolver over a caller-supplied
// table, mainly for tests. The reverse index is precomputed here so Expand
// never has to scan the whole table per query.
func NewSynonymResolverWithTable(table map[string][]string) *SynonymResolver {
	reverse := make(map[string][]string)
	for key, syns := range table {
		for _, syn := range syns {
			reverse[syn] = append(reverse[syn], key)
		}
	}
	for _, owners := range reverse {
		sort.Strings(owners)
	}
	return &SynonymResolver{table: table, reverse: reverse}
}

// Expand returns the one-hop equivalence class of key, always including the
// key itself. Results are sorted for deterministic output.
func (r *SynonymResolver) Expand(key string) []string {
	set := map[string]bool{key: true}

	// Forward: the key's own entry.
	for _, syn := range r.table[key] {
		set[syn] = true
	}

	// Reverse: entries elsewhere that list this key. Each contributes its
	// own key and its full synonym set, so asymmetric authoring of the
	// table still matches in both directions.
	for _, owner := range r.reverse[key] {
		set[owner] = true
		for _, syn := range r.table[owner] {
			set[syn] = true
		}
	}

	expanded := make([]string, 0, len(set))
	for k := range set {
		expanded = append(expanded, k)
	}
	sort.Strings(expanded)
	return expanded
}

// IngredientsMatch reports whether two raw ingredient names refer to the
// same ingredient: equal after normalization, or overlapping expansions.
func (r *SynonymResolver) IngredientsMatch(a, b string) bool {
	keyA := NormalizeIngredient(a)
	keyB := NormalizeIngredient(b)
	if keyA == "" || keyB == "" {
		return false
	}
	if keyA == keyB {
		return true
	}
	return intersects(r.Expand(keyA), r.Expand(keyB))
}

// ExpandAll unions the expansions of every query key, skipping empties.
func (r *SynonymResolver) ExpandAll(keys []string) []string {
	set := make(map[string]bool)
	for _, key := range keys {
		if key == "" {
			continue
		}
		for _, k := range r.Expand(key) {
			set[k] = true
		}
	}
	expanded := make([]string, 0, len(set))
	for k := range set {
		expanded = append(expanded, k)
	}
	sort.Strings(expanded)
	return expanded
}

// intersects reports whether two sorted string slices share an element.
func intersects(a, b []string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return false
}
