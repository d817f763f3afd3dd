// Package lifecycle enforces the case decision state machine:
//
//	pending --approve--> approved
//	pending --reject---> rejected
//
// Both decided states are terminal. Functions here compute a Decision
// without touching the case; callers persist it conditionally and only then
// apply it, so a transition lands completely or not at all. Authorization is
// checked by callers before invoking these functions.
package lifecycle

import (
	"strings"
	"time"

	"blacklist/internal/domain"
)

// Decision is the full field patch produced by a legal transition.
type Decision struct {
	Status          domain.Status
	DecidedBy       string
	DecidedAt       time.Time
	RejectionReason *string
}

// Apply returns a copy of c with the decision's fields set.
func (d Decision) Apply(c domain.Case) domain.Case {
	by := d.DecidedBy
	at := d.DecidedAt
	c.Status = d.Status
	c.DecidedBy = &by
	c.DecidedAt = &at
	c.RejectionReason = nil
	if d.RejectionReason != nil {
		reason := *d.RejectionReason
		c.RejectionReason = &reason
	}
	return c
}

func Approve(c domain.Case, actorID string, now time.Time) (Decision, error) {
	if err := checkPending(c, domain.StatusApproved); err != nil {
		return Decision{}, err
	}
	if strings.TrimSpace(actorID) == "" {
		return Decision{}, domain.NewValidationError("actor_id", "is required")
	}
	return Decision{
		Status:    domain.StatusApproved,
		DecidedBy: actorID,
		DecidedAt: now,
	}, nil
}

// Reject stores the reason with surrounding whitespace removed.
func Reject(c domain.Case, actorID, reason string, now time.Time) (Decision, error) {
	if err := checkPending(c, domain.StatusRejected); err != nil {
		return Decision{}, err
	}
	if strings.TrimSpace(actorID) == "" {
		return Decision{}, domain.NewValidationError("actor_id", "is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Decision{}, domain.NewValidationError("reason", "is required")
	}
	return Decision{
		Status:          domain.StatusRejected,
		DecidedBy:       actorID,
		DecidedAt:       now,
		RejectionReason: &reason,
	}, nil
}

func checkPending(c domain.Case, to domain.Status) error {
	if c.Status != domain.StatusPending {
		return &domain.TransitionError{CaseID: c.ID, From: c.Status, To: to}
	}
	return nil
}
