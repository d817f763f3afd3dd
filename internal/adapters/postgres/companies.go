package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blacklist/internal/domain"
)

// CompanyRepository

func (db *DB) CreateCompany(ctx context.Context, name string, isMain bool) (domain.Company, error) {
	c := domain.Company{Name: name, IsMain: isMain}
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO companies (name, is_main) VALUES ($1, $2)
        RETURNING id, created_at
    `, name, isMain).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return domain.Company{}, mapError(err)
	}
	return c, nil
}

func (db *DB) GetCompany(ctx context.Context, id string) (domain.Company, error) {
	var c domain.Company
	err := db.Pool.QueryRow(ctx, `SELECT id, name, is_main, created_at FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.IsMain, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Company{}, domain.ErrNotFound
	}
	return c, err
}

func (db *DB) UpdateCompany(ctx context.Context, id, name string, isMain bool) (domain.Company, error) {
	var c domain.Company
	err := db.Pool.QueryRow(ctx, `
        UPDATE companies SET name = $2, is_main = $3 WHERE id = $1
        RETURNING id, name, is_main, created_at
    `, id, name, isMain).Scan(&c.ID, &c.Name, &c.IsMain, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Company{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Company{}, mapError(err)
	}
	return c, nil
}

func (db *DB) FindCompanyByName(ctx context.Context, name string) (domain.Company, error) {
	var c domain.Company
	err := db.Pool.QueryRow(ctx, `SELECT id, name, is_main, created_at FROM companies WHERE name = $1`, name).
		Scan(&c.ID, &c.Name, &c.IsMain, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Company{}, domain.ErrNotFound
	}
	return c, err
}

func (db *DB) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, name, is_main, created_at FROM companies ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Company, error) {
		var c domain.Company
		err := row.Scan(&c.ID, &c.Name, &c.IsMain, &c.CreatedAt)
		return c, err
	})
}

// DeleteCompany fails with ErrConflict while cases still reference it.
func (db *DB) DeleteCompany(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (db *DB) CountCompanies(ctx context.Context) (int, error) {
	var n int
	err := db.Pool.QueryRow(ctx, `SELECT count(*) FROM companies`).Scan(&n)
	return n, err
}

// mapError turns constraint violations into domain errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505", "23503": // unique_violation, foreign_key_violation
		return domain.ErrConflict
	case "22P02", "23514": // invalid_text_representation, check_violation
		return domain.NewValidationError(pgErr.ColumnName, pgErr.Message)
	}
	return err
}
