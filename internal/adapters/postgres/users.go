package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"blacklist/internal/domain"
)

// UserRepository

func (db *DB) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO app_users (id, display_name, company_id, role, is_approved)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE SET
            display_name = EXCLUDED.display_name,
            company_id = EXCLUDED.company_id,
            role = EXCLUDED.role,
            is_approved = EXCLUDED.is_approved
    `, u.ID, u.DisplayName, u.CompanyID, string(u.Role), u.IsApproved)
	return mapError(err)
}

const userSelect = `
    SELECT u.id, u.display_name, u.company_id, c.name, u.role, u.is_approved, u.created_at
    FROM app_users u
    LEFT JOIN companies c ON c.id = u.company_id`

func (db *DB) GetUser(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(db.Pool.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, domain.ErrNotFound
	}
	return u, err
}

func (db *DB) ListUsers(ctx context.Context, approved bool) ([]domain.User, error) {
	rows, err := db.Pool.Query(ctx, userSelect+` WHERE u.is_approved = $1 ORDER BY u.created_at DESC`, approved)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
}

func (db *DB) SetApproved(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE app_users SET is_approved = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) CountPendingUsers(ctx context.Context) (int, error) {
	var n int
	err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM app_users WHERE NOT is_approved`).Scan(&n)
	return n, err
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.DisplayName, &u.CompanyID, &u.CompanyName, &role, &u.IsApproved, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}
