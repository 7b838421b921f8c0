package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/session"
)

func (h *Handler) view(c *gin.Context, sess *session.Session, snap session.Snapshot, page, size int) SessionView {
	return SessionView{
		ID:            sess.ID,
		State:         snap.State,
		Active:        snap.State.Active(),
		SearchPending: sess.SearchPending(),
		Page:          h.page(c.Request.Context(), snap.Results, middleware.IsPremium(c), page, size),
	}
}

func (h *Handler) lookup(c *gin.Context) (*session.Session, bool) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return sess, true
}

// mutate runs fn against the session named in the path and responds with
// the first page of the recomputed results.
func (h *Handler) mutate(c *gin.Context, fn func(*filter.State) error) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	snap, err := sess.Update(fn)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, sess, snap, 1, h.opts.PageSize))
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// CreateSession starts a filter session over the whole catalog.
func (h *Handler) CreateSession(c *gin.Context) {
	sess := h.sessions.Create()
	c.JSON(http.StatusCreated, h.view(c, sess, sess.Snapshot(), 1, h.opts.PageSize))
}

// GetSession returns the session state and the requested page of results.
func (h *Handler) GetSession(c *gin.Context) {
	page, size, err := h.pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.view(c, sess, sess.Snapshot(), page, size))
}

func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ResetSession(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	snap, err := sess.Reset()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, sess, snap, 1, h.opts.PageSize))
}

// SetSearch applies the search term immediately.
func (h *Handler) SetSearch(c *gin.Context) {
	var req SearchRequest
	if !bind(c, &req) {
		return
	}
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	snap, err := sess.SetSearch(req.Term)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.view(c, sess, snap, 1, h.opts.PageSize))
}

func (h *Handler) SetTags(c *gin.Context) {
	var req ValuesRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.SetTags(req.Values)
		return nil
	})
}

func (h *Handler) ToggleTag(c *gin.Context) {
	var req ValueRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.ToggleTag(req.Value)
		return nil
	})
}

func (h *Handler) SetCategories(c *gin.Context) {
	var req ValuesRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.SetCategories(req.Values)
		return nil
	})
}

func (h *Handler) ToggleCategory(c *gin.Context) {
	var req ValueRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.ToggleCategory(req.Value)
		return nil
	})
}

// SetNutrientRange moves one or both bounds of a macro range. The values are
// clamped to the catalog bounds.
func (h *Handler) SetNutrientRange(c *gin.Context) {
	m, err := model.ParseMacro(c.Param("macro"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	var req RangeRequest
	if !bind(c, &req) {
		return
	}
	if req.Min == nil && req.Max == nil {
		respondError(c, fmt.Errorf("%w: min or max is required", errBadRequest))
		return
	}
	var lo, hi float64
	if req.Min != nil {
		lo = *req.Min
	}
	if req.Max != nil {
		hi = *req.Max
	}
	h.mutate(c, func(st *filter.State) error {
		return applyRange(st, m, lo, req.Min != nil, hi, req.Max != nil)
	})
}

func (h *Handler) SetIncluded(c *gin.Context) {
	var req ValuesRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.SetIncludedIngredients(req.Values)
		return nil
	})
}

func (h *Handler) AddIncluded(c *gin.Context) {
	var req ValueRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.AddIncludedIngredient(req.Value)
		return nil
	})
}

func (h *Handler) RemoveIncluded(c *gin.Context) {
	value := c.Param("value")
	h.mutate(c, func(st *filter.State) error {
		st.RemoveIncludedIngredient(value)
		return nil
	})
}

func (h *Handler) SetExcluded(c *gin.Context) {
	var req ValuesRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.SetExcludedIngredients(req.Values)
		return nil
	})
}

func (h *Handler) AddExcluded(c *gin.Context) {
	var req ValueRequest
	if !bind(c, &req) {
		return
	}
	h.mutate(c, func(st *filter.State) error {
		st.AddExcludedIngredient(req.Value)
		return nil
	})
}

func (h *Handler) RemoveExcluded(c *gin.Context) {
	value := c.Param("value")
	h.mutate(c, func(st *filter.State) error {
		st.RemoveExcludedIngredient(value)
		return nil
	})
}

// SuggestIngredients offers catalog ingredients matching q that the session
// has not included or excluded yet.
func (h *Handler) SuggestIngredients(c *gin.Context) {
	sess, ok := h.lookup(c)
	if !ok {
		return
	}
	snap := sess.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"suggestions": filter.SuggestIngredients(h.catalog.Ingredients(), c.Query("q"), snap.State, suggestLimit),
	})
}
