package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/domain"
)

var now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func pendingCase() domain.Case {
	return domain.Case{ID: "c1", Status: domain.StatusPending, NarrativeText: "遅刻", RiskScore: 1525}
}

func TestApprovePending(t *testing.T) {
	c := pendingCase()
	d, err := Approve(c, "admin-1", now)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, c.Status, "input must not be mutated")

	got := d.Apply(c)
	assert.Equal(t, domain.StatusApproved, got.Status)
	require.NotNil(t, got.DecidedBy)
	require.NotNil(t, got.DecidedAt)
	assert.Equal(t, "admin-1", *got.DecidedBy)
	assert.Equal(t, now, *got.DecidedAt)
	assert.Nil(t, got.RejectionReason)
	assert.Equal(t, 1525, got.RiskScore)
}

func TestRejectPending(t *testing.T) {
	c := pendingCase()
	d, err := Reject(c, "admin-1", "証拠不十分", now)
	require.NoError(t, err)

	got := d.Apply(c)
	assert.Equal(t, domain.StatusRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "証拠不十分", *got.RejectionReason)
	assert.Equal(t, "admin-1", *got.DecidedBy)
	assert.Equal(t, now, *got.DecidedAt)
}

func TestRejectRequiresReason(t *testing.T) {
	for _, reason := range []string{"", " ", "\t\n", "　"} {
		c := pendingCase()
		_, err := Reject(c, "admin-1", reason, now)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr, "reason %q", reason)
		assert.Equal(t, "reason", verr.Fields[0].Field)
		assert.Equal(t, domain.StatusPending, c.Status)
		assert.Nil(t, c.DecidedBy)
	}
}

func TestActorRequired(t *testing.T) {
	_, err := Approve(pendingCase(), " ", now)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "actor_id", verr.Fields[0].Field)

	_, err = Reject(pendingCase(), "", "reason", now)
	require.ErrorAs(t, err, &verr)
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	by := "admin-0"
	at := now.Add(-time.Hour)
	reason := "old"
	decided := []domain.Case{
		{ID: "a", Status: domain.StatusApproved, DecidedBy: &by, DecidedAt: &at},
		{ID: "r", Status: domain.StatusRejected, DecidedBy: &by, DecidedAt: &at, RejectionReason: &reason},
	}
	for _, c := range decided {
		t.Run(string(c.Status), func(t *testing.T) {
			before := c
			_, err := Approve(c, "admin-1", now)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

			_, err = Reject(c, "admin-1", "again", now)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

			var terr *domain.TransitionError
			require.ErrorAs(t, err, &terr)
			assert.Equal(t, c.Status, terr.From)
			assert.Equal(t, domain.StatusRejected, terr.To)
			assert.Equal(t, before, c)
		})
	}
}

func TestTerminalCheckedBeforeValidation(t *testing.T) {
	c := domain.Case{ID: "a", Status: domain.StatusApproved}
	_, err := Reject(c, "admin-1", "", now)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestApplyCopiesReason(t *testing.T) {
	reason := "first"
	d := Decision{Status: domain.StatusRejected, DecidedBy: "x", DecidedAt: now, RejectionReason: &reason}
	got := d.Apply(pendingCase())
	reason = "changed"
	assert.Equal(t, "first", *got.RejectionReason)
}

func TestApproveClearsStaleReason(t *testing.T) {
	c := pendingCase()
	stale := "leftover"
	c.RejectionReason = &stale
	d, err := Approve(c, "admin-1", now)
	require.NoError(t, err)
	assert.Nil(t, d.Apply(c).RejectionReason)
}

func TestRejectTrimsStoredReason(t *testing.T) {
	d, err := Reject(pendingCase(), "admin-1", "  証拠不十分 \n", now)
	require.NoError(t, err)
	got := d.Apply(pendingCase())
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "証拠不十分", *got.RejectionReason)
}
