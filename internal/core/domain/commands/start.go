package commands

import (
	"context"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const welcomeText = "👋 *Hello, everyone! The Indiwtf Domain Checker is now active in this group.*\n\n" +
	"I will send periodic domain reports to this chat. Any member can manage the watchlist.\n\n" +
	"*Commands:*\n" +
	"`/add domain1.com domain2.net ...`\n" +
	"Adds domains. You can also paste a list of domains on new lines after the command.\n\n" +
	"`/remove domain1.com domain2.net ...`\n" +
	"Removes one or more domains.\n\n" +
	"`/list`\n" +
	"Shows all watched domains.\n\n" +
	"`/check domain.com`\n" +
	"Performs a single, one-time check."

type StartHandler struct {
	store      port.WatchlistStore
	textSender port.TextSender
	command    string
}

func NewStartHandler(store port.WatchlistStore, textSender port.TextSender, command string) *StartHandler {
	return &StartHandler{store: store, textSender: textSender, command: command}
}

func (h *StartHandler) GetCommand() string {
	return h.command
}

func (h *StartHandler) Respond(ctx context.Context, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	// A second /start from a different chat replaces the report destination.
	h.store.SetChat(message.ChatID)

	_, err := h.textSender.SendMessageReply(ctx, message, welcomeText)
	if err != nil {
		l.Error().Err(err).Msg("failed to send welcome message")
		return err
	}

	return nil
}
