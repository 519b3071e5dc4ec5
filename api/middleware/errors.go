package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"go.uber.org/zap"
)

// ErrorHandler renders every error as {"error": message}. Causes of server
// errors are logged and never sent to the client.
func ErrorHandler(log *zap.SugaredLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if appErr, ok := apperrors.As(err); ok {
			code = appErr.Code
			msg = appErr.Message
			if code >= http.StatusInternalServerError {
				log.Errorw(msg, "method", c.Request().Method, "path", c.Path(), "cause", appErr.Err)
			}
		} else if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
		} else {
			log.Errorw("unhandled error", "method", c.Request().Method, "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, echo.Map{"error": msg})
		}
		if err != nil {
			log.Warnw("error writing error response", "error", err)
		}
	}
}
