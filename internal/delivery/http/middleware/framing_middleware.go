package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// FramingMiddleware controls clickjacking headers. The whole application
// denies framing except the embed surface, which exists to be iframed by
// arbitrary customer sites.
type FramingMiddleware struct{}

// NewFramingMiddleware is the constructor for FramingMiddleware.
func NewFramingMiddleware() *FramingMiddleware {
	return &FramingMiddleware{}
}

// Handle sets the framing policy per path prefix.
func (m *FramingMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Response().Header()
		if strings.HasPrefix(c.Request().URL.Path, "/embed/") {
			// Embeddable anywhere: no X-Frame-Options at all.
			header.Set("Content-Security-Policy", "frame-ancestors *")
		} else {
			header.Set("X-Frame-Options", "DENY")
			header.Set("Content-Security-Policy", "frame-ancestors 'none'")
		}

		return next(c)
	}
}
