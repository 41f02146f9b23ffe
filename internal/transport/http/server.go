package http

import (
	"github.com/labstack/echo/v4"
)

// NewServer builds the echo instance serving the JSON API.
func NewServer(h *Handler, limit echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler
	h.Register(e, limit)
	return e
}
