package port

import (
	"context"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends a reply to the given message with the given text and returns the sent message ID and
	// an error if any.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error)
}

type ReportSender interface {
	// SendMessage sends a standalone message to the given chat, without replying to anything.
	SendMessage(ctx context.Context, chatID int64, text string) error
}
