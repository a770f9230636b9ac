package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/resale_hub/internal/core/domain"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/SscSPs/resale_hub/internal/middleware"
	"github.com/gin-gonic/gin"
)

type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// RegisterSettingsRoutes registers the user preference routes.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settingsService: settingsService}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("/theme", h.updateTheme)
		settings.PUT("/currency", h.updateCurrency)
	}
}

// getSettings godoc
// @Summary Get user settings
// @Description Returns stored settings, or the defaults (dark theme, EUR) when none were saved.
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Security BearerAuth
// @Router /api/v1/settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	settings, err := h.settingsService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateTheme godoc
// @Summary Change the UI theme
// @Tags settings
// @Accept json
// @Produce json
// @Param theme body dto.UpdateThemeRequest true "Theme"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/settings/theme [put]
func (h *settingsHandler) updateTheme(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}

	settings, err := h.settingsService.SetTheme(c.Request.Context(), userID, domain.Theme(req.Theme))
	if err != nil {
		respondWithError(c, err, "Failed to update theme")
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateCurrency godoc
// @Summary Change the display currency
// @Description Records the previous currency and converts every stored item price to the new one.
// @Tags settings
// @Accept json
// @Produce json
// @Param currency body dto.UpdateCurrencyRequest true "Currency"
// @Success 200 {object} dto.UpdateCurrencyResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/settings/currency [put]
func (h *settingsHandler) updateCurrency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindingError(c, err)
		return
	}
	code, err := domain.ParseCurrencyCode(req.Currency)
	if err != nil {
		respondWithError(c, err, "Failed to update currency")
		return
	}

	settings, converted, err := h.settingsService.SetCurrency(c.Request.Context(), userID, code)
	if err != nil {
		respondWithError(c, err, "Failed to update currency")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency updated",
		slog.String("currency", string(code)), slog.Int("converted_items", converted))
	c.JSON(http.StatusOK, dto.UpdateCurrencyResponse{
		Settings:       dto.ToSettingsResponse(settings),
		ConvertedItems: converted,
	})
}
