package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
)

const caseColumns = `b.id, b.full_name, b.full_name_kana, b.gender, b.birth_date, b.phone_last4,
    b.occurrence_date, b.reason_text, b.evidence_urls, b.status, b.risk_score, b.decided_by,
    b.decided_at, b.rejected_reason, b.registered_company_id, co.name, b.registered_by_user_id,
    b.created_at, b.updated_at`

const caseFrom = ` FROM blacklist_cases b JOIN companies co ON co.id = b.registered_company_id`

type rowScanner interface {
	Scan(dest ...any) error
}

// CaseRepository

func (db *DB) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	evidence := c.EvidencePaths
	if evidence == nil {
		evidence = []string{}
	}
	err := db.Pool.QueryRow(ctx, `
        WITH ins AS (
            INSERT INTO blacklist_cases (id, full_name, full_name_kana, gender, birth_date, phone_last4,
                occurrence_date, reason_text, evidence_urls, status, risk_score,
                registered_company_id, registered_by_user_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
            RETURNING registered_company_id, created_at, updated_at
        )
        SELECT ins.created_at, ins.updated_at, co.name
        FROM ins JOIN companies co ON co.id = ins.registered_company_id
    `, c.ID, c.FullName, c.FullNameKana, string(c.Gender), c.BirthDate, c.PhoneLast4,
		c.OccurrenceDate, c.NarrativeText, evidence, string(c.Status), c.RiskScore,
		c.RegisteredCompanyID, c.RegisteredByUserID).Scan(&c.CreatedAt, &c.UpdatedAt, &c.RegisteredCompanyName)
	if err != nil {
		return domain.Case{}, mapError(err)
	}
	c.EvidencePaths = evidence
	return c, nil
}

func (db *DB) Load(ctx context.Context, id string) (domain.Case, error) {
	row := db.Pool.QueryRow(ctx, `SELECT `+caseColumns+caseFrom+` WHERE b.id = $1`, id)
	c, err := scanCase(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Case{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Case{}, mapError(err)
	}
	return c, nil
}

// SaveTransition writes the decision only if the row is still in the
// expected status, so two racing administrators cannot both win.
func (db *DB) SaveTransition(ctx context.Context, id string, expected domain.Status, d lifecycle.Decision) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE blacklist_cases
        SET status = $3, decided_by = $4, decided_at = $5, rejected_reason = $6, updated_at = now()
        WHERE id = $1 AND status = $2
    `, id, string(expected), string(d.Status), d.DecidedBy, d.DecidedAt, d.RejectionReason)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	return db.missingOrConflict(ctx, id)
}

// UpdateDetails never touches risk_score or ownership columns. A non-nil
// decision is written by the same statement and only while the case is
// still pending, so an edit lands completely or not at all.
func (db *DB) UpdateDetails(ctx context.Context, id string, d domain.CaseDetails, decision *lifecycle.Decision) error {
	evidence := d.EvidencePaths
	if evidence == nil {
		evidence = []string{}
	}
	args := []any{id, d.FullName, d.FullNameKana, string(d.Gender), d.BirthDate, d.PhoneLast4,
		d.OccurrenceDate, d.NarrativeText, evidence}
	q := `
        UPDATE blacklist_cases
        SET full_name = $2, full_name_kana = $3, gender = $4, birth_date = $5, phone_last4 = $6,
            occurrence_date = $7, reason_text = $8, evidence_urls = $9, updated_at = now()`
	if decision != nil {
		args = append(args, string(decision.Status), decision.DecidedBy, decision.DecidedAt,
			decision.RejectionReason, string(domain.StatusPending))
		q += `,
            status = $10, decided_by = $11, decided_at = $12, rejected_reason = $13
        WHERE id = $1 AND status = $14`
	} else {
		q += `
        WHERE id = $1`
	}
	tag, err := db.Pool.Exec(ctx, q, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}
	if decision == nil {
		return domain.ErrNotFound
	}
	return db.missingOrConflict(ctx, id)
}

func (db *DB) missingOrConflict(ctx context.Context, id string) error {
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blacklist_cases WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func (db *DB) Delete(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM blacklist_cases WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if f.CompanyID != "" {
		args = append(args, f.CompanyID)
		conds = append(conds, fmt.Sprintf("b.registered_company_id = $%d", len(args)))
	}
	if f.BirthDate != nil {
		args = append(args, *f.BirthDate)
		conds = append(conds, fmt.Sprintf("b.birth_date = $%d::date", len(args)))
	}
	q := `SELECT ` + caseColumns + caseFrom
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY b.created_at DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Case, error) {
		return scanCase(row)
	})
}

func (db *DB) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var n int
	err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM blacklist_cases WHERE status = $1`, string(status)).Scan(&n)
	return n, err
}

func scanCase(row rowScanner) (domain.Case, error) {
	var (
		c              domain.Case
		gender, status string
	)
	err := row.Scan(&c.ID, &c.FullName, &c.FullNameKana, &gender, &c.BirthDate, &c.PhoneLast4,
		&c.OccurrenceDate, &c.NarrativeText, &c.EvidencePaths, &status, &c.RiskScore,
		&c.DecidedBy, &c.DecidedAt, &c.RejectionReason, &c.RegisteredCompanyID,
		&c.RegisteredCompanyName, &c.RegisteredByUserID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Case{}, err
	}
	c.Gender = domain.Gender(gender)
	st, ok := domain.StatusFrom(status)
	if !ok {
		return domain.Case{}, fmt.Errorf("case %s: unknown status %q", c.ID, status)
	}
	c.Status = st
	return c, nil
}
