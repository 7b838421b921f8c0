package filter

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pageza/recipe-rover/backend/internal/model"
)

// ErrUnknownMacro is returned by the range setters for a macro that has no bounds.
var ErrUnknownMacro = errors.New("unknown nutrient")

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Bounds holds the absolute per-macro span observed across a recipe collection.
type Bounds map[model.Macro]Range

// ComputeBounds returns the min/max of every macro across recipes. An empty
// collection yields zero ranges.
func ComputeBounds(recipes []model.Recipe) Bounds {
	b := make(Bounds, len(model.AllMacros))
	for _, m := range model.AllMacros {
		b[m] = Range{}
	}
	for i, r := range recipes {
		for _, m := range model.AllMacros {
			v := r.Nutrients.Value(m)
			cur := b[m]
			if i == 0 {
				cur = Range{Min: v, Max: v}
			} else {
				cur.Min = math.Min(cur.Min, v)
				cur.Max = math.Max(cur.Max, v)
			}
			b[m] = cur
		}
	}
	return b
}

func (b Bounds) clone() Bounds {
	out := make(Bounds, len(b))
	for m, r := range b {
		if r.Min > r.Max {
			r.Min, r.Max = r.Max, r.Min
		}
		out[m] = r
	}
	return out
}

// State is the composite filter applied to the catalog. The zero value
// constrains nothing; use NewState to seed nutrient ranges from the catalog
// bounds so that the range setters can clamp.
type State struct {
	Search              string                `json:"search"`
	Tags                []string              `json:"tags"`
	Categories          []string              `json:"categories"`
	Nutrients           map[model.Macro]Range `json:"nutrients"`
	IncludedIngredients []string              `json:"included_ingredients"`
	ExcludedIngredients []string              `json:"excluded_ingredients"`

	bounds Bounds
}

// NewState returns the initial snapshot for bounds: every facet empty and
// every nutrient range spanning the full observed interval.
func NewState(bounds Bounds) *State {
	s := &State{bounds: bounds.clone()}
	s.Reset()
	return s
}

// Bounds returns a copy of the absolute bounds the state clamps against.
func (s *State) Bounds() Bounds {
	return s.bounds.clone()
}

// Reset restores the initial snapshot.
func (s *State) Reset() {
	s.Search = ""
	s.Tags = []string{}
	s.Categories = []string{}
	s.IncludedIngredients = []string{}
	s.ExcludedIngredients = []string{}
	s.Nutrients = make(map[model.Macro]Range, len(s.bounds))
	for m, r := range s.bounds {
		s.Nutrients[m] = r
	}
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := &State{
		Search:              s.Search,
		Tags:                slices.Clone(s.Tags),
		Categories:          slices.Clone(s.Categories),
		IncludedIngredients: slices.Clone(s.IncludedIngredients),
		ExcludedIngredients: slices.Clone(s.ExcludedIngredients),
		bounds:              s.bounds.clone(),
	}
	if s.Nutrients != nil {
		c.Nutrients = make(map[model.Macro]Range, len(s.Nutrients))
		for m, r := range s.Nutrients {
			c.Nutrients[m] = r
		}
	}
	return c
}

// Active reports whether any facet narrows the collection.
func (s *State) Active() bool {
	if s.Search != "" || len(s.Tags) > 0 || len(s.Categories) > 0 ||
		len(s.IncludedIngredients) > 0 || len(s.ExcludedIngredients) > 0 {
		return true
	}
	for m, r := range s.Nutrients {
		if abs, ok := s.bounds[m]; !ok || abs != r {
			return true
		}
	}
	return false
}

// SetSearch replaces the free-text name query.
func (s *State) SetSearch(term string) {
	s.Search = term
}

// SetTags replaces the selected tags.
func (s *State) SetTags(tags []string) {
	s.Tags = uniqueExact(tags)
}

// ToggleTag selects tag if absent and deselects it otherwise.
func (s *State) ToggleTag(tag string) {
	s.Tags = toggle(s.Tags, tag)
}

// SetCategories replaces the selected categories.
func (s *State) SetCategories(categories []string) {
	s.Categories = uniqueExact(categories)
}

// ToggleCategory selects category if absent and deselects it otherwise.
func (s *State) ToggleCategory(category string) {
	s.Categories = toggle(s.Categories, category)
}

// SetIncludedIngredients replaces the terms every result must contain.
func (s *State) SetIncludedIngredients(terms []string) {
	s.IncludedIngredients = uniqueFold(terms)
}

// AddIncludedIngredient appends term to the included set.
func (s *State) AddIncludedIngredient(term string) {
	s.IncludedIngredients = uniqueFold(append(slices.Clone(s.IncludedIngredients), term))
}

// RemoveIncludedIngredient drops term from the included set.
func (s *State) RemoveIncludedIngredient(term string) {
	s.IncludedIngredients = removeFold(s.IncludedIngredients, term)
}

// SetExcludedIngredients replaces the terms no result may contain.
func (s *State) SetExcludedIngredients(terms []string) {
	s.ExcludedIngredients = uniqueFold(terms)
}

// AddExcludedIngredient appends term to the excluded set.
func (s *State) AddExcludedIngredient(term string) {
	s.ExcludedIngredients = uniqueFold(append(slices.Clone(s.ExcludedIngredients), term))
}

// RemoveExcludedIngredient drops term from the excluded set.
func (s *State) RemoveExcludedIngredient(term string) {
	s.ExcludedIngredients = removeFold(s.ExcludedIngredients, term)
}

// SetNutrientMin moves the lower bound of m. The value is clamped to the
// absolute bounds; a min above the current max pulls the max up with it.
func (s *State) SetNutrientMin(m model.Macro, v float64) error {
	abs, cur, err := s.rangeFor(m)
	if err != nil || math.IsNaN(v) {
		return err
	}
	cur.Min = abs.clamp(v)
	if cur.Max < cur.Min {
		cur.Max = cur.Min
	}
	s.Nutrients[m] = cur
	return nil
}

// SetNutrientMax moves the upper bound of m. The value is clamped to the
// absolute bounds; a max below the current min pulls the min down with it.
func (s *State) SetNutrientMax(m model.Macro, v float64) error {
	abs, cur, err := s.rangeFor(m)
	if err != nil || math.IsNaN(v) {
		return err
	}
	cur.Max = abs.clamp(v)
	if cur.Min > cur.Max {
		cur.Min = cur.Max
	}
	s.Nutrients[m] = cur
	return nil
}

// SetNutrientRange sets both bounds of m at once. An inverted pair is
// reordered before clamping.
func (s *State) SetNutrientRange(m model.Macro, lo, hi float64) error {
	abs, _, err := s.rangeFor(m)
	if err != nil {
		return err
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	s.Nutrients[m] = Range{Min: abs.clamp(lo), Max: abs.clamp(hi)}
	return nil
}

func (s *State) rangeFor(m model.Macro) (Range, Range, error) {
	abs, ok := s.bounds[m]
	if !ok {
		return Range{}, Range{}, fmt.Errorf("%w: %q", ErrUnknownMacro, m)
	}
	if s.Nutrients == nil {
		s.Nutrients = make(map[model.Macro]Range, len(s.bounds))
	}
	cur, ok := s.Nutrients[m]
	if !ok {
		cur = abs
	}
	return abs, cur, nil
}

func uniqueExact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func uniqueFold(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || containsFold(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func toggle(values []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return uniqueExact(values)
	}
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return uniqueExact(append(slices.Clone(values), v))
}

func removeFold(values []string, v string) []string {
	v = strings.TrimSpace(v)
	out := make([]string, 0, len(values))
	for _, x := range values {
		if !strings.EqualFold(x, v) {
			out = append(out, x)
		}
	}
	return out
}

func containsFold(values []string, v string) bool {
	for _, x := range values {
		if strings.EqualFold(x, v) {
			return true
		}
	}
	return false
}
