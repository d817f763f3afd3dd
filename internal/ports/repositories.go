package ports

import (
	"context"

	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
)

// CaseRepository stores blacklist cases.
type CaseRepository interface {
	Create(ctx context.Context, c domain.Case) (domain.Case, error)
	// Load returns domain.ErrNotFound when the case does not exist.
	Load(ctx context.Context, id string) (domain.Case, error)
	// SaveTransition applies d only while the stored status still equals
	// expected. A lost race yields domain.ErrConflict.
	SaveTransition(ctx context.Context, id string, expected domain.Status, d lifecycle.Decision) error
	// UpdateDetails replaces the descriptive fields. A non-nil decision is
	// applied atomically with them, gated on the case still being pending.
	UpdateDetails(ctx context.Context, id string, details domain.CaseDetails, decision *lifecycle.Decision) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.CaseFilter) ([]domain.Case, error)
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
}

// CompanyRepository stores member companies.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, name string, isMain bool) (domain.Company, error)
	GetCompany(ctx context.Context, id string) (domain.Company, error)
	FindCompanyByName(ctx context.Context, name string) (domain.Company, error)
	// UpdateCompany returns ErrConflict when another company already uses name.
	UpdateCompany(ctx context.Context, id, name string, isMain bool) (domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	CountCompanies(ctx context.Context) (int, error)
}

// UserRepository stores application users; credentials live with the
// identity provider.
type UserRepository interface {
	UpsertUser(ctx context.Context, u domain.User) error
	GetUser(ctx context.Context, id string) (domain.User, error)
	ListUsers(ctx context.Context, approved bool) ([]domain.User, error)
	SetApproved(ctx context.Context, id string) error
	CountPendingUsers(ctx context.Context) (int, error)
}
