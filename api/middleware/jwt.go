package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/user"
)

const userContextKey = "user"

func SetupJWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: secret,
		ContextKey: userContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthorized("invalid or missing token", err)
		},
	})
}

// UserID reads the caller id placed in the context by SetupJWTMiddleware.
func UserID(c echo.Context) (uint, error) {
	token, ok := c.Get(userContextKey).(*jwt.Token)
	if !ok {
		return 0, apperrors.Unauthorized("invalid or missing token", errors.New("no token in context"))
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok || claims.Id == 0 {
		return 0, apperrors.Unauthorized("invalid or missing token", errors.New("unexpected claims"))
	}
	return claims.Id, nil
}
