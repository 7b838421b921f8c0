// Package filter narrows a recipe collection against a composite filter
// state.
//
// The engine is a pure function: Apply never mutates its inputs, keeps the
// input order, and returns the same result for the same recipes and state.
// Facets are independent and combine with logical AND. State owns the
// per-facet setters, including the nutrient range setters that keep
// min <= max within the bounds observed across the catalog.
package filter
