package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"stock-news-brief/internal/brief/service"
	"stock-news-brief/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BriefHandler handles HTTP requests for AI briefs.
type BriefHandler struct {
	briefService service.BriefService
	logger       *logger.Logger
}

// NewBriefHandler creates a new BriefHandler.
func NewBriefHandler(briefService service.BriefService, logger *logger.Logger) *BriefHandler {
	return &BriefHandler{briefService: briefService, logger: logger}
}

// RegisterRoutes registers the brief routes to the Echo group.
func (h *BriefHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/:ticker/:index", h.GenerateBrief)
	g.GET("/:ticker/:index", h.GetBrief)
}

// GenerateBrief godoc
// @Summary Generate an AI brief for an article
// @Description Generate (or return the cached) AI brief for the article at the given ticker and position
// @Tags briefs
// @Produce  json
// @Param   ticker  path    string  true   "Ticker symbol"
// @Param   index   path    int     true   "Article position within the ticker's collection"
// @Param   force   query   bool    false  "Replace an existing brief"
// @Success 200 {object} dto.BriefResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /briefs/{ticker}/{index} [post]
func (h *BriefHandler) GenerateBrief(c echo.Context) error {
	ticker, index, err := briefParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	force, _ := strconv.ParseBool(c.QueryParam("force"))

	brief, err := h.briefService.GenerateBrief(c.Request().Context(), ticker, index, force)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No article at that position"})
		}
		h.logger.Error("Failed to generate brief", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate brief"})
	}

	return c.JSON(http.StatusOK, brief)
}

// GetBrief godoc
// @Summary Get a cached AI brief
// @Description Get the previously generated brief for the article at the given ticker and position
// @Tags briefs
// @Produce  json
// @Param   ticker  path    string  true   "Ticker symbol"
// @Param   index   path    int     true   "Article position within the ticker's collection"
// @Success 200 {object} dto.BriefResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /briefs/{ticker}/{index} [get]
func (h *BriefHandler) GetBrief(c echo.Context) error {
	ticker, index, err := briefParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	brief := h.briefService.GetBrief(c.Request().Context(), ticker, index)
	if brief == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No brief generated for that article"})
	}

	return c.JSON(http.StatusOK, brief)
}

func briefParams(c echo.Context) (string, int, error) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		return "", 0, errors.New("ticker is required")
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return "", 0, errors.New("invalid article index")
	}
	return ticker, index, nil
}
