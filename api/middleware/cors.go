package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	allowedMethods = "GET, POST, OPTIONS"
	allowedHeaders = "Content-Type, Authorization"
)

// OriginPolicy matches origins exactly against an allow-list.
type OriginPolicy struct {
	allowed  map[string]struct{}
	fallback string
}

func NewOriginPolicy(allowed []string, fallback string) *OriginPolicy {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			set[origin] = struct{}{}
		}
	}
	return &OriginPolicy{allowed: set, fallback: fallback}
}

func (p *OriginPolicy) Allows(origin string) bool {
	_, ok := p.allowed[origin]
	return ok
}

// Resolve returns the caller's origin when it is allowed, otherwise the fallback.
func (p *OriginPolicy) Resolve(origin string) string {
	if p.Allows(origin) {
		return origin
	}
	return p.fallback
}

func CORS(policy *OriginPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, policy.Resolve(c.Request().Header.Get(echo.HeaderOrigin)))
			h.Add(echo.HeaderVary, echo.HeaderOrigin)
			h.Set(echo.HeaderAccessControlAllowMethods, allowedMethods)
			h.Set(echo.HeaderAccessControlAllowHeaders, allowedHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
