package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const emptyListText = "The watchlist is empty. Use `/add domain.com`."

type ListHandler struct {
	store      port.WatchlistStore
	textSender port.TextSender
	command    string
}

func NewListHandler(store port.WatchlistStore, textSender port.TextSender, command string) *ListHandler {
	return &ListHandler{store: store, textSender: textSender, command: command}
}

func (h *ListHandler) GetCommand() string {
	return h.command
}

func (h *ListHandler) Respond(ctx context.Context, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	names := h.store.List()
	if len(names) == 0 {
		_, err := h.textSender.SendMessageReply(ctx, message, emptyListText)
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return err
		}
		return nil
	}

	sb := &strings.Builder{}
	sb.WriteString("📋 *Current Watchlist:*\n```\n")
	for _, name := range names {
		fmt.Fprintf(sb, "- %s\n", name)
	}
	sb.WriteString("```")

	_, err := h.textSender.SendMessageReply(ctx, message, sb.String())
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
