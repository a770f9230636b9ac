package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// RegisterCurrencyRoutes registers the rate table and conversion routes.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := &currencyHandler{currencyService: currencyService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/convert", h.convert)
	}
	rg.GET("/exchange-rates/:from/:to", h.getExchangeRate)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns every supported currency with its rate against EUR, in table order
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /api/v1/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, h.currencyService.ListCurrencies(c.Request.Context()))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts amount between two supported currencies, rounded to 2 decimals
// @Tags currencies
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} ErrorResponse "Missing amount or unsupported currency"
// @Security BearerAuth
// @Router /api/v1/currencies/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	var q dto.ConvertCurrencyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithBindingError(c, err)
		return
	}

	res, err := h.currencyService.Convert(c.Request.Context(), *q.Amount, q.From, q.To)
	if err != nil {
		respondWithError(c, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Returns how many units of the target currency equal one unit of the source
// @Tags currencies
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Target currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Security BearerAuth
// @Router /api/v1/exchange-rates/{from}/{to} [get]
func (h *currencyHandler) getExchangeRate(c *gin.Context) {
	res, err := h.currencyService.GetExchangeRate(c.Request.Context(), c.Param("from"), c.Param("to"))
	if err != nil {
		respondWithError(c, err, "Failed to get exchange rate")
		return
	}
	c.JSON(http.StatusOK, res)
}
