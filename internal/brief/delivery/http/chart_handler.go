package http

import (
	"net/http"
	"strconv"
	"strings"

	"stock-news-brief/internal/brief/service"
	"stock-news-brief/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ChartHandler handles HTTP requests for price charts.
type ChartHandler struct {
	chartService service.ChartService
	logger       *logger.Logger
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartService service.ChartService, logger *logger.Logger) *ChartHandler {
	return &ChartHandler{chartService: chartService, logger: logger}
}

// RegisterRoutes registers the chart routes to the Echo group.
func (h *ChartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:ticker", h.GetChart)
}

// GetChart godoc
// @Summary Get a price chart
// @Description Get price history and derived figures for a ticker over a period
// @Tags charts
// @Produce  json
// @Param   ticker   path    string  true   "Ticker symbol"
// @Param   period   query   string  false  "Chart period (5d,1mo,3mo,6mo,1y,2y,5y,max)"
// @Param   refresh  query   bool    false  "Drop the session cache first"
// @Success 200 {object} entity.PriceChart
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /charts/{ticker} [get]
func (h *ChartHandler) GetChart(c echo.Context) error {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Ticker is required"})
	}

	period := c.QueryParam("period")
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	chart, err := h.chartService.GetChart(c.Request().Context(), ticker, period, refresh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch chart"})
	}
	if chart == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No price history for ticker"})
	}

	return c.JSON(http.StatusOK, chart)
}
