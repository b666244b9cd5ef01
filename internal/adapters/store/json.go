package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/918apps/indiwtfcheck/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// JSONFile persists the watchlist as one flat JSON document. All
// load-modify-save sequences run under a single mutex so a mutating command
// and a concurrent reporter pass can never lose a write.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (s *JSONFile) Load() domain.Watchlist {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *JSONFile) SetChat(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()
	state.ChatID = &chatID
	s.save(state)
}

func (s *JSONFile) AddDomains(names []string) (added, existing []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()

	current := make(map[string]struct{}, len(state.Domains))
	for _, name := range state.Domains {
		current[name] = struct{}{}
	}

	for _, name := range canonical(names) {
		if _, ok := current[name]; ok {
			existing = append(existing, name)
			continue
		}
		added = append(added, name)
		state.Domains = append(state.Domains, name)
	}

	if len(added) > 0 {
		s.save(state)
	}

	return added, existing
}

func (s *JSONFile) RemoveDomains(names []string) (removed, notFound []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.load()

	current := make(map[string]struct{}, len(state.Domains))
	for _, name := range state.Domains {
		current[name] = struct{}{}
	}

	drop := make(map[string]struct{})
	for _, name := range canonical(names) {
		if _, ok := current[name]; ok {
			removed = append(removed, name)
			drop[name] = struct{}{}
			continue
		}
		notFound = append(notFound, name)
	}

	if len(removed) > 0 {
		kept := state.Domains[:0]
		for _, name := range state.Domains {
			if _, ok := drop[name]; !ok {
				kept = append(kept, name)
			}
		}
		state.Domains = kept
		s.save(state)
	}

	return removed, notFound
}

func (s *JSONFile) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load().Domains
}

// load never fails the caller; a missing, unreadable or corrupt file
// degrades to the empty state.
func (s *JSONFile) load() domain.Watchlist {
	empty := domain.Watchlist{Domains: []string{}}

	buf, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Str("path", s.path).Msg("error loading watchlist, starting empty")
		}
		return empty
	}

	var state domain.Watchlist
	if err := json.Unmarshal(buf, &state); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("error parsing watchlist, starting empty")
		return empty
	}

	state.Domains = canonical(state.Domains)
	return state
}

// save writes the whole state, deduplicated and sorted, via a uuid-named
// temp file and an atomic rename. Write failures are logged and swallowed.
func (s *JSONFile) save(state domain.Watchlist) {
	state.Domains = canonical(state.Domains)

	buf, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("error encoding watchlist")
		return
	}

	id, err := uuid.NewV4()
	if err != nil {
		log.Error().Err(err).Msg("error generating temp file name")
		return
	}

	tmp := fmt.Sprintf("%s.%s.tmp", s.path, id)
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		log.Error().Err(err).Str("path", tmp).Msg("error writing watchlist")
		return
	}

	if err := os.Rename(tmp, s.path); err != nil {
		log.Error().Err(err).Str("path", s.path).Msg("error replacing watchlist")
		_ = os.Remove(tmp)
	}
}

// canonical normalizes, deduplicates and sorts a domain list.
func canonical(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))

	for _, raw := range names {
		name := domain.NormalizeDomain(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	sort.Strings(out)
	return out
}
