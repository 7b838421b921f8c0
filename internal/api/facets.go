package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/filter"
)

// GetFacets lists the values every filter facet can take.
func (h *Handler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, Facets{
		Tags:           h.catalog.Tags(),
		Categories:     h.catalog.Categories(),
		FoodCategories: catalog.FoodCategories,
		Ingredients:    h.catalog.Ingredients(),
		Bounds:         h.catalog.Bounds(),
	})
}

// SuggestCategories filters the food category list by q.
func (h *Handler) SuggestCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": filter.SuggestCategories(catalog.FoodCategories, c.Query("q")),
	})
}
