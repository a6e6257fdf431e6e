package chat

import (
	"fmt"
	"strings"
)

// Normalize validates and sanitizes an inbound request before dispatch.
// Rules applied in order:
//
//  1. the message list must be non-empty;
//  2. settings.providerId must be set;
//  3. message content is truncated to MaxMessageChars code points;
//  4. every message must keep a non-empty role and content;
//  5. a non-empty trimmed system prompt is prepended as a synthetic system
//     message, ahead of any caller-supplied system messages.
//
// Message order is otherwise preserved and settings pass through unchanged.
func Normalize(req Request) (Request, error) {
	if len(req.Messages) == 0 {
		return Request{}, fmt.Errorf("%w: at least one message is required", ErrInvalidRequest)
	}

	if strings.TrimSpace(req.Settings.ProviderID) == "" {
		return Request{}, fmt.Errorf("%w: provider is required", ErrInvalidRequest)
	}

	sanitized := make([]Message, 0, len(req.Messages)+1)
	for _, msg := range req.Messages {
		sanitized = append(sanitized, Message{
			Role:    msg.Role,
			Content: truncate(msg.Content, MaxMessageChars),
		})
	}

	for _, msg := range sanitized {
		if msg.Role == "" || msg.Content == "" {
			return Request{}, fmt.Errorf("%w: each message must include a role and content", ErrInvalidRequest)
		}
	}

	if prompt := strings.TrimSpace(req.Settings.SystemPrompt); prompt != "" {
		sanitized = append([]Message{{Role: RoleSystem, Content: prompt}}, sanitized...)
	}

	return Request{Messages: sanitized, Settings: req.Settings}, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
