package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/thesrcielos/WordSlide/internal/apperrors"
)

func TestErrorHandler_Rendering(t *testing.T) {
	e := newTestEcho()
	e.GET("/app", func(c echo.Context) error { return apperrors.Validation("gameMode is required") })
	e.GET("/storage", func(c echo.Context) error { return apperrors.Storage("error updating stats", errors.New("pq: secret detail")) })
	e.GET("/plain", func(c echo.Context) error { return errors.New("boom") })

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/app", http.StatusBadRequest, `{"error":"gameMode is required"}`},
		{"/storage", http.StatusInternalServerError, `{"error":"error updating stats"}`},
		{"/plain", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
		{"/missing", http.StatusNotFound, `{"error":"Not Found"}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.code, rec.Code, tc.path)
		assert.JSONEq(t, tc.body, rec.Body.String(), tc.path)
	}
}
