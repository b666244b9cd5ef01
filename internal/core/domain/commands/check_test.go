package commands

import (
	"errors"
	"testing"

	"github.com/918apps/indiwtfcheck/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckHandler(t *testing.T) {
	mc := &MockStatusChecker{}
	ts := &MockTextSender{}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	assert.NotNil(t, checkHandler)
	assert.Equal(t, "/check", checkHandler.GetCommand())
}

func TestCheckRespondBlocked(t *testing.T) {
	mc := &MockStatusChecker{result: domain.StatusResult{
		Status: "BLOCKED", IP: "1.2.3.4", Domain: "blocked-example.com"}}
	ts := &MockTextSender{}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	err := checkHandler.Respond(t.Context(), &domain.Message{Text: "/check blocked-example.com"})
	require.NoError(t, err)

	require.Len(t, ts.Messages, 2)
	assert.Equal(t, "🔍 Checking `blocked-example.com`...", ts.Messages[0])
	assert.Contains(t, ts.Messages[1], "🚫")
	assert.Contains(t, ts.Messages[1], "1.2.3.4")
	assert.Equal(t, []string{"blocked-example.com"}, mc.Checked)
}

func TestCheckRespondLookupError(t *testing.T) {
	mc := &MockStatusChecker{result: domain.StatusResult{Err: "connection timed out"}}
	ts := &MockTextSender{}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	err := checkHandler.Respond(t.Context(), &domain.Message{Text: "/check down-example.com"})
	require.NoError(t, err)

	require.Len(t, ts.Messages, 2)
	assert.Contains(t, ts.Messages[1], "❌")
	assert.Contains(t, ts.Messages[1], "down-example.com")
}

func TestCheckRespondOnlyFirstToken(t *testing.T) {
	mc := &MockStatusChecker{result: domain.StatusResult{Status: "ALLOWED"}}
	ts := &MockTextSender{}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	err := checkHandler.Respond(t.Context(), &domain.Message{Text: "/check A.com b.com c.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.com"}, mc.Checked)
}

func TestCheckRespondNoArgs(t *testing.T) {
	mc := &MockStatusChecker{}
	ts := &MockTextSender{}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	err := checkHandler.Respond(t.Context(), &domain.Message{Text: "/check"})
	require.NoError(t, err)

	assert.Empty(t, mc.Checked)
	assert.Equal(t, "Usage: `/check domain.com`", ts.LastMessage())
}

func TestCheckRespondSendError(t *testing.T) {
	mc := &MockStatusChecker{}
	ts := &MockTextSender{err: errors.New("mock error")}

	checkHandler := NewCheckHandler(mc, ts, "/check")

	err := checkHandler.Respond(t.Context(), &domain.Message{Text: "/check a.com"})
	assert.Error(t, err)

	// The acknowledgment failed, so no lookup happened.
	assert.Empty(t, mc.Checked)
}
