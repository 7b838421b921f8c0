package filter

import "strings"

// SuggestIngredients returns up to limit entries of all containing term
// (case-insensitive) that are neither included nor excluded in st yet. An
// empty term matches every ingredient, so it yields the first limit entries.
func SuggestIngredients(all []string, term string, st *State, limit int) []string {
	out := []string{}
	term = strings.ToLower(strings.TrimSpace(term))
	if limit <= 0 {
		return out
	}
	for _, ing := range all {
		if !strings.Contains(strings.ToLower(ing), term) {
			continue
		}
		if st != nil && (containsFold(st.IncludedIngredients, ing) || containsFold(st.ExcludedIngredients, ing)) {
			continue
		}
		out = append(out, ing)
		if len(out) == limit {
			break
		}
	}
	return out
}

// SuggestCategories filters categories by a case-insensitive term. An empty
// term returns every category.
func SuggestCategories(categories []string, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(strings.ToLower(c), term) {
			out = append(out, c)
		}
	}
	return out
}
