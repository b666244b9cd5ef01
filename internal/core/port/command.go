package port

import "github.com/918apps/indiwtfcheck/internal/core/domain"

type CommandRegistry interface {
	// Register adds a new command handler to the command registry.
	Register(handler domain.CommandResponder)
	// Get retrieves a registered handler based on its command string or returns an error if not found.
	Get(command string) (domain.CommandResponder, error)
	// ListCommands returns a list of all command identifiers currently registered.
	ListCommands() []string
}
