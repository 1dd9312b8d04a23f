package http

import (
	"net/http"
	"strconv"
	"strings"

	"stock-news-brief/internal/brief/dto"
	"stock-news-brief/internal/brief/service"
	"stock-news-brief/pkg/logger"

	"github.com/labstack/echo/v4"
)

// NewsHandler handles HTTP requests for news collection.
type NewsHandler struct {
	newsService service.NewsService
	logger      *logger.Logger
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(newsService service.NewsService, logger *logger.Logger) *NewsHandler {
	return &NewsHandler{newsService: newsService, logger: logger}
}

// RegisterRoutes registers the news routes to the Echo group.
func (h *NewsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetNews)
}

// GetNews godoc
// @Summary Collect news for tickers
// @Description Collect deduplicated news for a comma-separated list of tickers
// @Tags news
// @Produce  json
// @Param   tickers  query   string  true   "Comma-separated ticker symbols"
// @Param   count    query   int     false  "News per ticker (1-10)"
// @Param   refresh  query   bool    false  "Drop the session cache first"
// @Success 200 {object} dto.NewsListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /news [get]
func (h *NewsHandler) GetNews(c echo.Context) error {
	tickers := parseTickers(c.QueryParam("tickers"))
	if len(tickers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "At least one ticker is required"})
	}

	count, _ := strconv.Atoi(c.QueryParam("count"))
	refresh, _ := strconv.ParseBool(c.QueryParam("refresh"))

	articles, err := h.newsService.CollectNews(c.Request().Context(), tickers, count, refresh)
	if err != nil {
		h.logger.Error("Failed to collect news", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to collect news"})
	}

	return c.JSON(http.StatusOK, dto.NewsListResponse{Total: len(articles), Articles: articles})
}

// parseTickers splits and upper-cases the comma-separated ticker list,
// dropping empty entries.
func parseTickers(raw string) []string {
	var tickers []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
