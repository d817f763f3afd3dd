package backlog

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/domain"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
)

type stubCounter struct {
	cases, users int
	err          error
	calls        atomic.Int32
}

func (s *stubCounter) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	s.calls.Add(1)
	if status != domain.StatusPending {
		return 0, errors.New("unexpected status")
	}
	return s.cases, s.err
}

func (s *stubCounter) CountPendingUsers(ctx context.Context) (int, error) {
	return s.users, s.err
}

func TestRefreshPublishesGauges(t *testing.T) {
	m := metrics.New("test")
	require.NoError(t, Refresh(context.Background(), &stubCounter{cases: 4, users: 2}, m))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Backlog.WithLabelValues(KindCases)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Backlog.WithLabelValues(KindUsers)))
}

func TestRefreshError(t *testing.T) {
	m := metrics.New("test")
	err := Refresh(context.Background(), &stubCounter{err: errors.New("db down")}, m)
	assert.Error(t, err)
}

func TestRunPollsUntilCancelled(t *testing.T) {
	m := metrics.New("test")
	c := &stubCounter{cases: 1}
	log := logger.NewWithOutput("test", "error", io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, c, m, 10*time.Millisecond, log)
		close(done)
	}()

	assert.Eventually(t, func() bool { return c.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Backlog.WithLabelValues(KindCases)))
}

func TestRunDisabled(t *testing.T) {
	c := &stubCounter{}
	Run(context.Background(), c, metrics.New("test"), 0, logger.NewWithOutput("test", "error", io.Discard))
	assert.Zero(t, c.calls.Load())
}
