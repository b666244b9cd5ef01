package commands

import (
	"context"
	"fmt"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const checkUsage = "Usage: `/check domain.com`"

type CheckHandler struct {
	checker    port.StatusChecker
	textSender port.TextSender
	command    string
}

func NewCheckHandler(checker port.StatusChecker, textSender port.TextSender, command string) *CheckHandler {
	return &CheckHandler{checker: checker, textSender: textSender, command: command}
}

func (h *CheckHandler) GetCommand() string {
	return h.command
}

func (h *CheckHandler) Respond(ctx context.Context, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	names := domain.ParseDomainArgs(message.Text)
	if len(names) == 0 {
		_, err := h.textSender.SendMessageReply(ctx, message, checkUsage)
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return err
		}
		return nil
	}

	// Only the first token is checked; the rest is ignored.
	name := domain.NormalizeDomain(names[0])

	_, err := h.textSender.SendMessageReply(ctx, message, fmt.Sprintf("🔍 Checking `%s`...", name))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	result := h.checker.Check(ctx, name)

	_, err = h.textSender.SendMessageReply(ctx, message, domain.FormatStatus(result, name))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
