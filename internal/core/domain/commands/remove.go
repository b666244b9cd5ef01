package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const removeUsage = "Usage: `/remove domain1.com domain2.com ...`\n" +
	"You can also paste a list of domains on new lines after the command."

type RemoveHandler struct {
	store      port.WatchlistStore
	textSender port.TextSender
	command    string
}

func NewRemoveHandler(store port.WatchlistStore, textSender port.TextSender, command string) *RemoveHandler {
	return &RemoveHandler{store: store, textSender: textSender, command: command}
}

func (h *RemoveHandler) GetCommand() string {
	return h.command
}

func (h *RemoveHandler) Respond(ctx context.Context, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	names := domain.ParseDomainArgs(message.Text)
	if len(names) == 0 {
		_, err := h.textSender.SendMessageReply(ctx, message, removeUsage)
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return err
		}
		return nil
	}

	removed, notFound := h.store.RemoveDomains(names)
	l.Info().Int("removed", len(removed)).Int("notFound", len(notFound)).Msg("watchlist updated")

	sb := &strings.Builder{}
	sb.WriteString("🗑️ *Bulk Remove Report*\n")
	if len(removed) > 0 {
		fmt.Fprintf(sb, "\n✅ Removed *%d* domains.", len(removed))
	}
	if len(notFound) > 0 {
		fmt.Fprintf(sb, "\n❓ Could not remove *%d* domains (not on list).", len(notFound))
	}

	_, err := h.textSender.SendMessageReply(ctx, message, sb.String())
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
