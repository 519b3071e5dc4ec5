package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/stats"
)

const INVALID_REQUEST = "invalid request"

type StatsHandler struct {
	service *stats.StatsService
}

func NewStatsHandler(service *stats.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.SubmitRoundResult)
	g.POST("/reset", h.ResetStats)
}

func (h *StatsHandler) SubmitRoundResult(c echo.Context) error {
	var req stats.RoundResultRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}

	result, err := h.service.SubmitRoundResult(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "stats updated successfully",
		"stats":   result,
	})
}

func (h *StatsHandler) ResetStats(c echo.Context) error {
	var req stats.ResetRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}

	result, err := h.service.ResetStats(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "stats reset successfully",
		"stats":   result,
	})
}
