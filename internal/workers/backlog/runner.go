package backlog

import (
	"context"
	"time"

	"blacklist/internal/domain"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
	"blacklist/internal/ports"
)

// Label values of the backlog gauge.
const (
	KindCases = "cases"
	KindUsers = "users"
)

// Refresh reads the current queue sizes once and publishes them.
func Refresh(ctx context.Context, counter ports.BacklogCounter, m *metrics.Metrics) error {
	cases, err := counter.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return err
	}
	users, err := counter.CountPendingUsers(ctx)
	if err != nil {
		return err
	}
	m.SetBacklog(KindCases, cases)
	m.SetBacklog(KindUsers, users)
	return nil
}

// Run polls the backlog until ctx is cancelled. A failed poll is logged and
// the previous gauge values are kept.
func Run(ctx context.Context, counter ports.BacklogCounter, m *metrics.Metrics, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		return
	}
	poll := func() {
		pctx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		if err := Refresh(pctx, counter, m); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("backlog refresh failed")
		}
	}
	poll()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
