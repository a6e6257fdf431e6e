package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaugelab/gaugechat/internal/version"
)

// PingHandler serves the liveness probes used by deploy checks.
type PingHandler struct{}

func NewPingHandler() *PingHandler {
	return &PingHandler{}
}

func (h *PingHandler) Register(e *echo.Echo) {
	e.GET("/ping", h.Ping)
	e.HEAD("/health", h.Health)
}

func (h *PingHandler) Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "gaugechat",
		"version": version.GetInfo(),
	})
}

func (h *PingHandler) Health(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
