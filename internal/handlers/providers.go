package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaugelab/gaugechat/internal/config"
	"github.com/gaugelab/gaugechat/internal/providers"
)

type ProvidersHandler struct {
	store config.Store
}

func NewProvidersHandler(store config.Store) *ProvidersHandler {
	return &ProvidersHandler{store: store}
}

func (h *ProvidersHandler) Register(e *echo.Echo) {
	e.GET("/api/providers", h.List)
}

type providersResponse struct {
	Providers []providers.Availability `json:"providers"`
}

// List godoc
// @Summary List providers
// @Description List every provider in the catalogue with its current availability
// @Tags providers
// @Produce json
// @Success 200 {object} providersResponse
// @Router /api/providers [get]
func (h *ProvidersHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, providersResponse{
		Providers: providers.ResolveAvailability(h.store),
	})
}
