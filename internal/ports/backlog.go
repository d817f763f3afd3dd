package ports

import (
	"context"

	"blacklist/internal/domain"
)

// BacklogCounter reports the sizes of the queues waiting on an administrator.
type BacklogCounter interface {
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
	CountPendingUsers(ctx context.Context) (int, error)
}
