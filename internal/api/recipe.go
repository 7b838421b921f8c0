package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-rover/backend/internal/export"
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/scale"
)

// ListRecipes filters the catalog with the query parameters.
func (h *Handler) ListRecipes(c *gin.Context) {
	st, err := h.stateFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	page, size, err := h.pageParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	results := filter.Apply(h.catalog.Recipes(), st)
	c.JSON(http.StatusOK, h.page(c.Request.Context(), results, middleware.IsPremium(c), page, size))
}

// GetRecipe returns a recipe scaled to the servings query parameter.
func (h *Handler) GetRecipe(c *gin.Context) {
	r, err := h.recipeParam(c)
	if err != nil {
		respondError(c, err)
		return
	}
	servings, err := servingsParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	ratio := scale.Ratio(servings)
	ingredients := scale.ScaleIngredients(r.Ingredients, ratio, nil)
	if failed := scale.Failed(ingredients); len(failed) > 0 {
		h.log.Debug().Uint("recipe_id", r.ID).Int("failed", len(failed)).Msg("ingredient quantities could not be scaled")
	}

	resolved := h.resolveImages(c.Request.Context(), []model.Recipe{*r})[0]
	c.JSON(http.StatusOK, RecipeDetail{
		Recipe:      resolved,
		Servings:    servings,
		Ratio:       ratio,
		TotalTime:   r.TotalTime(),
		Ingredients: ingredientLines(ingredients),
		Nutrition:   scale.ScaleNutrition(r.Nutrients, ratio),
	})
}

// ExportRecipe downloads one recipe as Markdown.
func (h *Handler) ExportRecipe(c *gin.Context) {
	r, err := h.recipeParam(c)
	if err != nil {
		respondError(c, err)
		return
	}
	servings, err := servingsParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	doc := export.Render(r, servings, h.opts.Now())
	attachment(c, export.Filename(r.Name), doc)
}

// ExportAll downloads every recipe as one Markdown document. Premium only.
func (h *Handler) ExportAll(c *gin.Context) {
	if !middleware.IsPremium(c) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "downloading all recipes requires a premium account"})
		return
	}
	servings, err := servingsParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	doc := export.Bundle(h.catalog.Recipes(), servings, h.opts.Now())
	attachment(c, export.BundleFilename, doc)
}

func (h *Handler) recipeParam(c *gin.Context) (*model.Recipe, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid recipe id", errBadRequest)
	}
	return h.catalog.Get(uint(id))
}

func attachment(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, []byte(body))
}
