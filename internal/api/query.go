package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/scale"
)

// listParam collects a comma-separated or repeated query parameter.
func listParam(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intParam(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, key)
	}
	return n, nil
}

func floatParam(c *gin.Context, key string) (float64, bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be a number", errBadRequest, key)
	}
	return v, true, nil
}

// pageParams reads page and page_size. The size is capped at maxPageSize.
func (h *Handler) pageParams(c *gin.Context) (int, int, error) {
	page, err := intParam(c, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	size, err := intParam(c, "page_size", h.opts.PageSize)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be at least 1", errBadRequest)
	}
	if size < 1 {
		return 0, 0, fmt.Errorf("%w: page_size must be at least 1", errBadRequest)
	}
	return page, min(size, maxPageSize), nil
}

// servingsParam reads servings, defaulting to the base count. An optional
// step applies a stepper delta on top, as the +/- buttons do.
func servingsParam(c *gin.Context) (int, error) {
	n, err := intParam(c, "servings", scale.BaseServings)
	if err != nil {
		return 0, err
	}
	step, err := intParam(c, "step", 0)
	if err != nil {
		return 0, err
	}
	return scale.AdjustServings(scale.ClampServings(n), step), nil
}

// stateFromQuery builds a one-off filter state from the request query.
func (h *Handler) stateFromQuery(c *gin.Context) (*filter.State, error) {
	st := h.catalog.NewState()
	st.SetSearch(c.Query("q"))
	if v := listParam(c, "tags"); len(v) > 0 {
		st.SetTags(v)
	}
	if v := listParam(c, "categories"); len(v) > 0 {
		st.SetCategories(v)
	}
	if v := listParam(c, "include"); len(v) > 0 {
		st.SetIncludedIngredients(v)
	}
	if v := listParam(c, "exclude"); len(v) > 0 {
		st.SetExcludedIngredients(v)
	}

	for _, m := range model.AllMacros {
		lo, hasLo, err := floatParam(c, string(m)+"_min")
		if err != nil {
			return nil, err
		}
		hi, hasHi, err := floatParam(c, string(m)+"_max")
		if err != nil {
			return nil, err
		}
		if err := applyRange(st, m, lo, hasLo, hi, hasHi); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func applyRange(st *filter.State, m model.Macro, lo float64, hasLo bool, hi float64, hasHi bool) error {
	switch {
	case hasLo && hasHi:
		return st.SetNutrientRange(m, lo, hi)
	case hasLo:
		return st.SetNutrientMin(m, lo)
	case hasHi:
		return st.SetNutrientMax(m, hi)
	}
	return nil
}
