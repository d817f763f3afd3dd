package overview

import (
	"context"

	"blacklist/internal/domain"
	"blacklist/internal/ports"
)

// Counter is the read side the dashboard needs.
type Counter interface {
	ports.BacklogCounter
	CountCompanies(ctx context.Context) (int, error)
}

type Service struct {
	repo Counter
}

func New(repo Counter) *Service { return &Service{repo: repo} }

var _ ports.Overview = (*Service)(nil)

func (s *Service) Get(ctx context.Context, actor domain.Actor) (domain.Overview, error) {
	if !actor.Admin {
		return domain.Overview{}, domain.ErrForbidden
	}
	var out domain.Overview
	var err error
	if out.PendingCases, err = s.repo.CountByStatus(ctx, domain.StatusPending); err != nil {
		return domain.Overview{}, err
	}
	if out.PendingUsers, err = s.repo.CountPendingUsers(ctx); err != nil {
		return domain.Overview{}, err
	}
	if out.Companies, err = s.repo.CountCompanies(ctx); err != nil {
		return domain.Overview{}, err
	}
	return out, nil
}
