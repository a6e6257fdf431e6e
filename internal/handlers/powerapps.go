package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gaugelab/gaugechat/internal/powerapps"
)

type PowerAppsHandler struct {
	logger *slog.Logger
}

func NewPowerAppsHandler(log *slog.Logger) *PowerAppsHandler {
	return &PowerAppsHandler{logger: log.With(slog.String("handler", "powerapps"))}
}

func (h *PowerAppsHandler) Register(e *echo.Echo) {
	group := e.Group("/api/powerapps")
	group.GET("", h.List)
	group.POST("/:id/render", h.Render)
}

type appsResponse struct {
	Apps []powerapps.App `json:"apps"`
}

type renderRequest struct {
	Values map[string]string `json:"values" validate:"required"`
}

type renderResponse struct {
	Prompt                string `json:"prompt"`
	SuggestedSystemPrompt string `json:"suggestedSystemPrompt,omitempty"`
}

// List godoc
// @Summary List power apps
// @Description List the built-in prompt app catalogue
// @Tags powerapps
// @Produce json
// @Success 200 {object} appsResponse
// @Router /api/powerapps [get]
func (h *PowerAppsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, appsResponse{Apps: powerapps.Catalog()})
}

// Render godoc
// @Summary Render a power app prompt
// @Description Fill an app's prompt template with the submitted field values
// @Tags powerapps
// @Accept json
// @Produce json
// @Param id path string true "App id"
// @Param request body renderRequest true "Field values keyed by field id"
// @Success 200 {object} renderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/powerapps/{id}/render [post]
func (h *PowerAppsHandler) Render(c echo.Context) error {
	id := c.Param("id")

	var req renderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	prompt, err := powerapps.Render(id, req.Values)
	if err != nil {
		switch {
		case errors.Is(err, powerapps.ErrUnknownApp):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, powerapps.ErrMissingField):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("render failed", slog.String("app", id), slog.Any("error", err))
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
	}

	app, _ := powerapps.Lookup(id)
	return c.JSON(http.StatusOK, renderResponse{
		Prompt:                prompt,
		SuggestedSystemPrompt: app.SuggestedSystemPrompt,
	})
}
