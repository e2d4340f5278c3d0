package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
)

const chatMessageMaxLen = 500

// Chat answers a public visitor question through the site assistant. The
// knowledge base is baked into the assistant's system prompt.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message", entity.ErrMissingRequiredField)
	}

	if utf8.RuneCountInString(message) > chatMessageMaxLen {
		return "", fmt.Errorf("%w: message exceeds %d characters", entity.ErrIncorrectRequestBody, chatMessageMaxLen)
	}

	reply, err := s.assistantClient.Reply(ctx, message)
	if err != nil {
		return "", fmt.Errorf("assistant reply: %w", err)
	}

	return reply, nil
}
