package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const addUsage = "Usage: `/add domain1.com domain2.com ...`\n" +
	"You can also paste a list of domains on new lines after the command."

type AddHandler struct {
	store      port.WatchlistStore
	textSender port.TextSender
	command    string
}

func NewAddHandler(store port.WatchlistStore, textSender port.TextSender, command string) *AddHandler {
	return &AddHandler{store: store, textSender: textSender, command: command}
}

func (h *AddHandler) GetCommand() string {
	return h.command
}

func (h *AddHandler) Respond(ctx context.Context, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	names := domain.ParseDomainArgs(message.Text)
	if len(names) == 0 {
		_, err := h.textSender.SendMessageReply(ctx, message, addUsage)
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
			return err
		}
		return nil
	}

	added, existing := h.store.AddDomains(names)
	l.Info().Int("added", len(added)).Int("skipped", len(existing)).Msg("watchlist updated")

	sb := &strings.Builder{}
	sb.WriteString("📝 *Bulk Add Report*\n")
	if len(added) > 0 {
		fmt.Fprintf(sb, "\n✅ Added *%d* new domains.", len(added))
	}
	if len(existing) > 0 {
		fmt.Fprintf(sb, "\n☑️ Skipped *%d* domains (already on list).", len(existing))
	}

	_, err := h.textSender.SendMessageReply(ctx, message, sb.String())
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed)
		return err
	}

	return nil
}
