package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/api/middleware"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/stats"
	"github.com/thesrcielos/WordSlide/internal/user"
)

type UserHandler struct {
	users *user.UserService
	stats *stats.StatsService
}

func NewUserHandler(users *user.UserService, stats *stats.StatsService) *UserHandler {
	return &UserHandler{users: users, stats: stats}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.GET("/profile", h.Profile, auth)
	g.GET("/stats/:id", h.GetUserStats)
}

func (h *UserHandler) Signup(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	token, err := h.users.Signup(c.Request().Context(), creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func (h *UserHandler) Login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	token, err := h.users.Login(c.Request().Context(), creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (h *UserHandler) Profile(c echo.Context) error {
	id, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	u, err := h.users.GetUser(ctx, id)
	if err != nil {
		return err
	}
	userStats, err := h.stats.UserStats(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"user":           u,
		"stats":          userStats.Modes,
		"recentSessions": userStats.RecentSessions,
	})
}

func (h *UserHandler) GetUserStats(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return apperrors.Validation("invalid user ID")
	}
	ctx := c.Request().Context()

	u, err := h.users.GetUser(ctx, uint(id))
	if err != nil {
		return err
	}
	userStats, err := h.stats.UserStats(ctx, u.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"username": u.Username,
		"stats":    userStats.Modes,
	})
}
