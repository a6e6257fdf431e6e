package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gaugelab/gaugechat/internal/chat"
)

// Dispatcher routes a normalized chat request to the matching provider
// adapter.
type Dispatcher interface {
	Dispatch(ctx context.Context, req chat.Request) (*chat.Result, error)
}

type ChatHandler struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewChatHandler(log *slog.Logger, dispatcher Dispatcher) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
		logger:     log.With(slog.String("handler", "chat")),
	}
}

func (h *ChatHandler) Register(e *echo.Echo) {
	e.POST("/api/chat", h.Complete)
}

type chatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type chatResponse struct {
	Message chatMessage     `json:"message"`
	Usage   *chat.Usage     `json:"usage,omitempty"`
	Raw     json.RawMessage `json:"raw,omitempty"`
}

// Complete godoc
// @Summary Run a chat completion
// @Description Normalize the conversation and forward it to the selected provider
// @Tags chat
// @Accept json
// @Produce json
// @Param request body chat.Request true "Conversation and generation settings"
// @Success 200 {object} chatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Complete(c echo.Context) error {
	var req chat.Request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	normalized, err := chat.Normalize(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	result, err := h.dispatcher.Dispatch(c.Request().Context(), normalized)
	if err != nil {
		if errors.Is(err, chat.ErrInvalidRequest) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("chat completion failed",
			slog.String("provider", req.Settings.ProviderID),
			slog.String("model", req.Settings.ModelID),
			slog.Any("error", err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, chatResponse{
		Message: chatMessage{
			ID:        uuid.NewString(),
			Role:      result.Message.Role,
			Content:   result.Message.Content,
			CreatedAt: time.Now().UTC(),
		},
		Usage: result.Usage,
		Raw:   result.Raw,
	})
}
