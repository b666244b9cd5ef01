package sender

import (
	"context"
	"strings"

	"github.com/918apps/indiwtfcheck/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

const TelegramMessageLimit = 4096

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

// SendMessageReply replies to the given message, chunking text over the
// Telegram message limit. Returns the ID of the last sent message.
func (s *Telegram) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	var lastID int

	for _, chunk := range splitMessage(text) {
		m, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    message.ChatID,
			Text:      chunk,
			ParseMode: models.ParseModeMarkdownV1,
			ReplyParameters: &models.ReplyParameters{
				MessageID: message.ID,
				ChatID:    message.ChatID,
			},
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", message.ChatID).Msg("failed to send reply")
			return 0, err
		}
		lastID = m.ID
	}

	return lastID, nil
}

// SendMessage sends a standalone message to a chat, chunked the same way.
func (s *Telegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, chunk := range splitMessage(text) {
		_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    chatID,
			Text:      chunk,
			ParseMode: models.ParseModeMarkdownV1,
		})
		if err != nil {
			log.Error().Err(err).Int64("chatId", chatID).Msg("failed to send message")
			return err
		}
	}

	return nil
}

// splitMessage chunks text at the Telegram limit, preferring line breaks.
func splitMessage(text string) []string {
	if len(text) <= TelegramMessageLimit {
		return []string{text}
	}

	var chunks []string
	for len(text) > TelegramMessageLimit {
		cut := TelegramMessageLimit
		if i := strings.LastIndexByte(text[:cut], '\n'); i > 0 {
			cut = i
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}

	if len(text) > 0 {
		chunks = append(chunks, text)
	}

	return chunks
}
