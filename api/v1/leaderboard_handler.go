package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/internal/leaderboard"
)

type LeaderboardHandler struct {
	service *leaderboard.LeaderboardService
}

func NewLeaderboardHandler(service *leaderboard.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetLeaderboard)
}

// GetLeaderboard never rejects its query: a bad limit silently becomes the default.
func (h *LeaderboardHandler) GetLeaderboard(c echo.Context) error {
	gameMode := leaderboard.ParseGameMode(c.QueryParam("gameMode"))
	limit := leaderboard.ParseLimit(c.QueryParam("limit"))

	entries, err := h.service.GetLeaderboard(c.Request().Context(), gameMode, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"gameMode":    gameMode,
		"leaderboard": entries,
	})
}
