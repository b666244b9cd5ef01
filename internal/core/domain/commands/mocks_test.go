package commands

import (
	"context"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
)

type MockTextSender struct {
	Messages []string
	err      error
}

func (m *MockTextSender) SendMessageReply(_ context.Context, _ *domain.Message, text string) (int, error) {
	m.Messages = append(m.Messages, text)
	return 1, m.err
}

func (m *MockTextSender) LastMessage() string {
	if len(m.Messages) == 0 {
		return ""
	}
	return m.Messages[len(m.Messages)-1]
}

type MockWatchlistStore struct {
	state      domain.Watchlist
	added      []string
	existing   []string
	removed    []string
	notFound   []string
	LastAdd    []string
	LastRemove []string
	ChatID     *int64
}

func (m *MockWatchlistStore) Load() domain.Watchlist { return m.state }

func (m *MockWatchlistStore) SetChat(chatID int64) { m.ChatID = &chatID }

func (m *MockWatchlistStore) AddDomains(names []string) (added, existing []string) {
	m.LastAdd = names
	return m.added, m.existing
}

func (m *MockWatchlistStore) RemoveDomains(names []string) (removed, notFound []string) {
	m.LastRemove = names
	return m.removed, m.notFound
}

func (m *MockWatchlistStore) List() []string { return m.state.Domains }

type MockStatusChecker struct {
	result  domain.StatusResult
	Checked []string
}

func (m *MockStatusChecker) Check(_ context.Context, name string) domain.StatusResult {
	m.Checked = append(m.Checked, name)
	return m.result
}
