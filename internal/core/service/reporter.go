package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
	"github.com/918apps/indiwtfcheck/internal/core/port"

	"github.com/rs/zerolog/log"
)

const reportHeader = "🔔 *Periodic Domain Status Report*\n"

// Reporter periodically checks every watched domain and sends one aggregated
// report to the recorded chat. Lookups run sequentially with a fixed pause
// after each one to keep load on the status API down.
type Reporter struct {
	store        port.WatchlistStore
	checker      port.StatusChecker
	sender       port.ReportSender
	interval     time.Duration
	initialDelay time.Duration
	lookupDelay  time.Duration
	running      atomic.Bool
}

func NewReporter(store port.WatchlistStore, checker port.StatusChecker, sender port.ReportSender,
	interval, initialDelay, lookupDelay time.Duration) *Reporter {
	return &Reporter{
		store:        store,
		checker:      checker,
		sender:       sender,
		interval:     interval,
		initialDelay: initialDelay,
		lookupDelay:  lookupDelay,
	}
}

// Run blocks until the context stops. The first pass fires after the initial
// delay, every following pass after the configured interval.
func (r *Reporter) Run(ctx context.Context) {
	first := time.NewTimer(r.initialDelay)
	defer first.Stop()

	select {
	case <-ctx.Done():
		log.Info().Msg("reporter stopped before first pass")
		return
	case <-first.C:
	}

	r.runPass(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reporter stopped")
			return
		case <-ticker.C:
			r.runPass(ctx)
		}
	}
}

func (r *Reporter) runPass(ctx context.Context) {
	if !r.running.CompareAndSwap(false, true) {
		log.Warn().Msg("previous report pass still running, skipping this one")
		return
	}
	defer r.running.Store(false)

	log.Info().Msg("running periodic check")

	state := r.store.Load()
	if state.ChatID == nil || len(state.Domains) == 0 {
		log.Info().Msg("skipping periodic check: no chat or no domains configured")
		return
	}

	sb := &strings.Builder{}
	sb.WriteString(reportHeader)

	for _, name := range state.Domains {
		result := r.checker.Check(ctx, name)
		sb.WriteString("\n")
		sb.WriteString(domain.FormatStatus(result, name))

		select {
		case <-ctx.Done():
			log.Info().Msg("report pass aborted")
			return
		case <-time.After(r.lookupDelay):
		}
	}

	if err := r.sender.SendMessage(ctx, *state.ChatID, sb.String()); err != nil {
		log.Error().Err(err).Int64("chatId", *state.ChatID).Msg("failed to send periodic report")
		return
	}

	log.Info().Int("domains", len(state.Domains)).Msg("periodic report sent")
}
