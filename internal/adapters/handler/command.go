package handler

import (
	"context"
	"time"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type CommandHandler struct {
	commandRegistry port.CommandRegistry
	timeout         time.Duration
}

func NewCommandHandler(commandRegistry port.CommandRegistry, timeout time.Duration) *CommandHandler {
	return &CommandHandler{commandRegistry: commandRegistry, timeout: timeout}
}

// Handle dispatches one inbound update to its command handler. Commands run
// synchronously so store mutations never interleave between two commands.
func (c *CommandHandler) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	log.Debug().Str("message", update.Message.Text).Msg("received command")

	cmd := domain.ParseCommand(update.Message.Text)
	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err = commandHandler.Respond(ctx, &domain.Message{
		ID:     update.Message.ID,
		ChatID: update.Message.Chat.ID,
		Text:   update.Message.Text,
	})
	if err != nil {
		log.Err(err).Str("command", cmd).Msg("failed to respond to command")
	}
}
