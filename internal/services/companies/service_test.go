package companies

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/adapters/memory"
	"blacklist/internal/domain"
	"blacklist/internal/logger"
)

var (
	admin  = domain.Actor{UserID: "a", Admin: true, Approved: true}
	member = domain.Actor{UserID: "m", CompanyID: "c", Approved: true}
)

func newService() *Service {
	return New(memory.New(), logger.NewWithOutput("test", "error", io.Discard))
}

func TestCreateAndList(t *testing.T) {
	s := newService()
	ctx := context.Background()

	c, err := s.Create(ctx, admin, "  鈴木工務店 ", true)
	require.NoError(t, err)
	assert.Equal(t, "鈴木工務店", c.Name)
	assert.True(t, c.IsMain)

	_, err = s.Create(ctx, admin, "鈴木工務店", false)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = s.Create(ctx, admin, " ", false)
	require.ErrorAs(t, err, &verr)

	_, err = s.Create(ctx, member, "x", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := s.List(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.List(ctx, member)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDelete(t *testing.T) {
	s := newService()
	ctx := context.Background()
	c, _ := s.Create(ctx, admin, "山田建設", false)

	assert.ErrorIs(t, s.Delete(ctx, member, c.ID), domain.ErrForbidden)
	require.NoError(t, s.Delete(ctx, admin, c.ID))
	assert.ErrorIs(t, s.Delete(ctx, admin, c.ID), domain.ErrNotFound)
}

func TestFindOrCreate(t *testing.T) {
	s := newService()
	ctx := context.Background()

	first, err := s.FindOrCreate(ctx, "田中セキュリティーサービス")
	require.NoError(t, err)
	assert.False(t, first.IsMain)

	again, err := s.FindOrCreate(ctx, " 田中セキュリティーサービス ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = s.FindOrCreate(ctx, "")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGetAndUpdate(t *testing.T) {
	s := newService()
	ctx := context.Background()
	c, err := s.Create(ctx, admin, "山田建設", false)
	require.NoError(t, err)
	_, err = s.Create(ctx, admin, "佐藤工務店", false)
	require.NoError(t, err)

	got, err := s.Get(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "山田建設", got.Name)
	_, err = s.Get(ctx, member, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.Get(ctx, admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	upd, err := s.Update(ctx, admin, c.ID, " 山田ホールディングス ", true)
	require.NoError(t, err)
	assert.Equal(t, "山田ホールディングス", upd.Name)
	assert.True(t, upd.IsMain)
	assert.Equal(t, c.CreatedAt, upd.CreatedAt)

	// keeping the same name is not a conflict with itself
	_, err = s.Update(ctx, admin, c.ID, "山田ホールディングス", false)
	require.NoError(t, err)

	_, err = s.Update(ctx, admin, c.ID, "佐藤工務店", false)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Fields[0].Field)

	_, err = s.Update(ctx, admin, c.ID, "  ", false)
	require.ErrorAs(t, err, &verr)
	_, err = s.Update(ctx, member, c.ID, "x", false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.Update(ctx, admin, "missing", "x", false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
