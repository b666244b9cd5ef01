package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

type CommandResponder interface {
	Respond(ctx context.Context, message *Message) error
	GetCommand() string
}

type CommandRegistry struct {
	commands map[string]CommandResponder
}

func (c *CommandRegistry) Register(handler CommandResponder) {
	if c.commands == nil {
		c.commands = make(map[string]CommandResponder)
	}

	log.Info().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")
	c.commands[handler.GetCommand()] = handler
}

func (c *CommandRegistry) Get(command string) (CommandResponder, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if c.commands == nil {
		return nil, errors.New("can't fetch commands, registry not initialized")
	}

	handler, ok := c.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (c *CommandRegistry) ListCommands() []string {
	keys := make([]string, len(c.commands))

	i := 0
	for k := range c.commands {
		keys[i] = k
		i++
	}

	return keys
}

// ParseCommand returns the command token of a message: the first
// whitespace-delimited field, with any @botname suffix stripped.
func ParseCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	command := fields[0]
	if at := strings.IndexByte(command, '@'); at != -1 {
		command = command[:at]
	}

	return command
}

// ParseDomainArgs returns every whitespace-delimited token after the command.
// Spaces and line breaks both act as separators, so a command followed by a
// pasted block of domains on separate lines parses the same as one line.
func ParseDomainArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil
	}

	return fields[1:]
}
