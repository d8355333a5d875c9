package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performFramingRequest(t *testing.T, path string) http.Header {
	e := echo.New()
	framing := NewFramingMiddleware()
	e.Use(framing.Handle)
	e.GET("/embed/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "embed")
	})
	e.GET("/api/company", func(c echo.Context) error {
		return c.String(http.StatusOK, "api")
	})

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Header()
}

func TestFramingMiddleware_EmbedAllowsAnyAncestor(t *testing.T) {
	header := performFramingRequest(t, "/embed/3f1c1e58-0000-0000-0000-000000000000")

	assert.Equal(t, "frame-ancestors *", header.Get("Content-Security-Policy"))
	assert.Empty(t, header.Get("X-Frame-Options"))
}

func TestFramingMiddleware_OtherRoutesDenyFraming(t *testing.T) {
	header := performFramingRequest(t, "/api/company")

	assert.Equal(t, "DENY", header.Get("X-Frame-Options"))
	assert.Equal(t, "frame-ancestors 'none'", header.Get("Content-Security-Policy"))
}
