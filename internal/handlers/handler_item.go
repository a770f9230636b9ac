package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/gin-gonic/gin"
)

type itemHandler struct {
	itemService portssvc.ItemSvcFacade
}

// RegisterItemRoutes registers inventory routes.
func RegisterItemRoutes(rg *gin.RouterGroup, itemService portssvc.ItemSvcFacade) {
	h := &itemHandler{itemService: itemService}

	items := rg.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.listItems)
		items.GET("/:itemID", h.getItem)
	}
}

// createItem godoc
// @Summary Add an inventory item
// @Description Brand and category are detected from the name when omitted; currency defaults to the display currency.
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.CreateItemRequest true "Item details"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/items [post]
func (h *itemHandler) createItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// listItems godoc
// @Summary List inventory items
// @Description Newest first, cursor paginated.
// @Tags items
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListItemsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/items [get]
func (h *itemHandler) listItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindingError(c, err)
		return
	}

	res, err := h.itemService.ListItems(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list items")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getItem godoc
// @Summary Get an inventory item
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/items/{itemID} [get]
func (h *itemHandler) getItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	item, err := h.itemService.GetItemByID(c.Request.Context(), userID, c.Param("itemID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve item")
		return
	}
	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}
