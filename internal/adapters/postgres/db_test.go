package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
)

func newMock(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func TestSaveTransitionApplied(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()
	d := lifecycle.Decision{Status: domain.StatusApproved, DecidedBy: "admin-1", DecidedAt: now}

	mock.ExpectExec("UPDATE blacklist_cases").
		WithArgs("c1", "pending", "approved", "admin-1", now, d.RejectionReason).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, db.SaveTransition(context.Background(), "c1", domain.StatusPending, d))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTransitionConflict(t *testing.T) {
	db, mock := newMock(t)
	reason := "重複"
	d := lifecycle.Decision{Status: domain.StatusRejected, DecidedBy: "admin-2", DecidedAt: time.Now(), RejectionReason: &reason}

	mock.ExpectExec("UPDATE blacklist_cases").
		WithArgs("c1", "pending", "rejected", "admin-2", pgxmock.AnyArg(), &reason).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := db.SaveTransition(context.Background(), "c1", domain.StatusPending, d)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTransitionNotFound(t *testing.T) {
	db, mock := newMock(t)
	d := lifecycle.Decision{Status: domain.StatusApproved, DecidedBy: "admin-1", DecidedAt: time.Now()}

	mock.ExpectExec("UPDATE blacklist_cases").
		WithArgs("c9", "pending", "approved", "admin-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("c9").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := db.SaveTransition(context.Background(), "c9", domain.StatusPending, d)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDetailsWithDecisionConflict(t *testing.T) {
	db, mock := newMock(t)
	d := lifecycle.Decision{Status: domain.StatusApproved, DecidedBy: "admin-1", DecidedAt: time.Now()}
	details := domain.CaseDetails{FullName: "山田", Gender: domain.GenderUnknown, NarrativeText: "遅刻"}

	mock.ExpectExec("UPDATE blacklist_cases").
		WithArgs("c1", "山田", details.FullNameKana, "unknown", details.BirthDate, details.PhoneLast4,
			details.OccurrenceDate, "遅刻", []string{}, "approved", "admin-1", pgxmock.AnyArg(), d.RejectionReason, "pending").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := db.UpdateDetails(context.Background(), "c1", details, &d)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDetailsMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE blacklist_cases").
		WithArgs("c1", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := db.UpdateDetails(context.Background(), "c1", domain.CaseDetails{FullName: "x", NarrativeText: "y"}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReturnsTimestamps(t *testing.T) {
	db, mock := newMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := domain.Case{
		ID:                  "c1",
		FullName:            "山田 太郎",
		Gender:              domain.GenderUnknown,
		NarrativeText:       "遅刻が多い",
		Status:              domain.StatusPending,
		RiskScore:           1555,
		RegisteredCompanyID: "co1",
		RegisteredByUserID:  "u1",
	}

	mock.ExpectQuery("WITH ins AS \\(\\s*INSERT INTO blacklist_cases").
		WithArgs("c1", "山田 太郎", c.FullNameKana, "unknown", c.BirthDate, c.PhoneLast4, c.OccurrenceDate,
			"遅刻が多い", []string{}, "pending", 1555, "co1", "u1").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at", "name"}).AddRow(created, created, "山田建設"))

	got, err := db.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, created, got.CreatedAt)
	assert.Equal(t, []string{}, got.EvidencePaths)
	assert.Equal(t, "山田建設", got.RegisteredCompanyName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("JOIN companies co .* WHERE b.id").
		WithArgs("c1").
		WillReturnError(pgx.ErrNoRows)

	_, err := db.Load(context.Background(), "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadJoinsCompanyName(t *testing.T) {
	db, mock := newMock(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cols := []string{"id", "full_name", "full_name_kana", "gender", "birth_date", "phone_last4",
		"occurrence_date", "reason_text", "evidence_urls", "status", "risk_score", "decided_by",
		"decided_at", "rejected_reason", "registered_company_id", "name", "registered_by_user_id",
		"created_at", "updated_at"}
	var (
		noText *string
		noTime *time.Time
	)
	mock.ExpectQuery("JOIN companies co .* WHERE b.id").
		WithArgs("c1").
		WillReturnRows(pgxmock.NewRows(cols).AddRow("c1", "山田 太郎", noText, "male", noTime, noText,
			noTime, "遅刻", []string{}, "pending", 1525, noText,
			noTime, noText, "co1", "山田建設", "u1",
			now, now))

	got, err := db.Load(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "co1", got.RegisteredCompanyID)
	assert.Equal(t, "山田建設", got.RegisteredCompanyName)
	assert.Equal(t, domain.StatusPending, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM blacklist_cases").
		WithArgs("c1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, db.Delete(context.Background(), "c1"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatus(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("SELECT count").
		WithArgs("pending").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	n, err := db.CountByStatus(context.Background(), domain.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCompanyInUse(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("DELETE FROM companies").
		WithArgs("co1").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	assert.ErrorIs(t, db.DeleteCompany(context.Background(), "co1"), domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompanyDuplicateName(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("UPDATE companies SET name").
		WithArgs("co1", "佐藤工務店", false).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := db.UpdateCompany(context.Background(), "co1", "佐藤工務店", false)
	assert.ErrorIs(t, err, domain.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCompanyMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery("UPDATE companies SET name").
		WithArgs("co1", "山田建設", true).
		WillReturnError(pgx.ErrNoRows)

	_, err := db.UpdateCompany(context.Background(), "co1", "山田建設", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCompany(t *testing.T) {
	db, mock := newMock(t)
	now := time.Now()
	mock.ExpectQuery("FROM companies WHERE id").
		WithArgs("co1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "is_main", "created_at"}).AddRow("co1", "山田建設", true, now))

	c, err := db.GetCompany(context.Background(), "co1")
	require.NoError(t, err)
	assert.Equal(t, "山田建設", c.Name)
	assert.True(t, c.IsMain)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetApprovedMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE app_users").
		WithArgs("u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, db.SetApproved(context.Background(), "u1"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(&pgconn.PgError{Code: "23505"}), domain.ErrConflict)

	var verr *domain.ValidationError
	assert.ErrorAs(t, mapError(&pgconn.PgError{Code: "23514", ColumnName: "risk_score", Message: "check"}), &verr)

	other := errors.New("boom")
	assert.Equal(t, other, mapError(other))
	assert.NoError(t, mapError(nil))
}
