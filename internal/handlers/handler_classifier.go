package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/gin-gonic/gin"
)

type classifierHandler struct {
	classifierService portssvc.ClassifierSvcFacade
}

// RegisterClassifierRoutes registers the item name detection routes.
func RegisterClassifierRoutes(rg *gin.RouterGroup, classifierService portssvc.ClassifierSvcFacade) {
	h := &classifierHandler{classifierService: classifierService}

	classify := rg.Group("/classify")
	{
		classify.GET("", h.classify)
		classify.GET("/categories", h.listCategories)
		classify.GET("/brands", h.listBrands)
	}
}

// classify godoc
// @Summary Detect brand and category
// @Description Detects brand and category from a free-text item name. Names shorter than 3 characters return an empty result.
// @Tags classifier
// @Produce json
// @Param name query string false "Item name"
// @Success 200 {object} dto.ClassifyResponse
// @Security BearerAuth
// @Router /api/v1/classify [get]
func (h *classifierHandler) classify(c *gin.Context) {
	var q dto.ClassifyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithBindingError(c, err)
		return
	}
	result := h.classifierService.Classify(c.Request.Context(), q.Name)
	c.JSON(http.StatusOK, dto.ClassifyResponse{
		DetectedBrand:    result.DetectedBrand,
		DetectedCategory: result.DetectedCategory,
	})
}

// listCategories godoc
// @Summary List categories
// @Tags classifier
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Security BearerAuth
// @Router /api/v1/classify/categories [get]
func (h *classifierHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: h.classifierService.ListCategories(c.Request.Context())})
}

// listBrands godoc
// @Summary List known brands
// @Tags classifier
// @Produce json
// @Success 200 {object} dto.BrandsResponse
// @Security BearerAuth
// @Router /api/v1/classify/brands [get]
func (h *classifierHandler) listBrands(c *gin.Context) {
	c.JSON(http.StatusOK, dto.BrandsResponse{Brands: h.classifierService.ListBrands(c.Request.Context())})
}
