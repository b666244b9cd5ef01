package port

import "github.com/918apps/indiwtfcheck/internal/core/domain"

type WatchlistStore interface {
	// Load reads the persisted watchlist. It never fails the caller; an
	// unreadable or corrupt file degrades to the empty state.
	Load() domain.Watchlist
	// SetChat records the chat that receives periodic reports, replacing any previous one.
	SetChat(chatID int64)
	// AddDomains normalizes and persists the given domains, returning the ones newly
	// added and the ones already on the list, each sorted ascending.
	AddDomains(names []string) (added, existing []string)
	// RemoveDomains removes the given domains, returning the ones removed and the
	// ones that were not on the list, each sorted ascending.
	RemoveDomains(names []string) (removed, notFound []string)
	// List returns the watched domains in ascending order.
	List() []string
}
