package users

import (
	"context"
	"errors"
	"strings"

	"blacklist/internal/domain"
	"blacklist/internal/logger"
	"blacklist/internal/ports"
)

// CompanyFinder resolves a company by name, creating it when missing.
type CompanyFinder interface {
	FindOrCreate(ctx context.Context, name string) (domain.Company, error)
}

type Service struct {
	repo      ports.UserRepository
	companies CompanyFinder
	log       *logger.Logger
}

func New(repo ports.UserRepository, companies CompanyFinder, log *logger.Logger) *Service {
	return &Service{repo: repo, companies: companies, log: log}
}

var _ ports.Users = (*Service)(nil)

// Register records a signed-up identity as an unapproved viewer of the
// named company. Re-registering keeps the role, and keeps the approval only
// while the company stays the same.
func (s *Service) Register(ctx context.Context, userID, displayName, companyName string) (domain.User, error) {
	if userID == "" {
		return domain.User{}, domain.ErrUnauthenticated
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return domain.User{}, domain.NewValidationError("display_name", "is required")
	}
	company, err := s.companies.FindOrCreate(ctx, companyName)
	if err != nil {
		return domain.User{}, err
	}
	u := domain.User{
		ID:          userID,
		DisplayName: displayName,
		CompanyID:   &company.ID,
		Role:        domain.RoleViewer,
	}
	if prev, err := s.repo.GetUser(ctx, userID); err == nil {
		u.Role = prev.Role
		// approval is granted per company; moving elsewhere needs a new one
		u.IsApproved = prev.IsApproved && prev.CompanyID != nil && *prev.CompanyID == company.ID
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, err
	}
	if err := s.repo.UpsertUser(ctx, u); err != nil {
		return domain.User{}, err
	}
	s.log.WithUserID(userID).WithField("company_id", company.ID).Info("user registered")
	return s.repo.GetUser(ctx, userID)
}

// Resolve builds the request actor. adminClaim comes from the identity
// provider; a stored admin role counts as well. Admins are always approved.
func (s *Service) Resolve(ctx context.Context, userID string, adminClaim bool) (domain.Actor, error) {
	if userID == "" {
		return domain.Actor{}, domain.ErrUnauthenticated
	}
	actor := domain.Actor{UserID: userID, Admin: adminClaim, Approved: adminClaim}
	u, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return actor, nil
	}
	if err != nil {
		return domain.Actor{}, err
	}
	if u.Role == domain.RoleAdmin {
		actor.Admin = true
	}
	actor.Approved = actor.Admin || u.IsApproved
	if u.CompanyID != nil {
		actor.CompanyID = *u.CompanyID
	}
	return actor, nil
}

func (s *Service) Get(ctx context.Context, userID string) (domain.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *Service) List(ctx context.Context, actor domain.Actor, approved bool) ([]domain.User, error) {
	if !actor.Admin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListUsers(ctx, approved)
}

func (s *Service) Approve(ctx context.Context, actor domain.Actor, userID string) error {
	if !actor.Admin {
		return domain.ErrForbidden
	}
	if err := s.repo.SetApproved(ctx, userID); err != nil {
		return err
	}
	s.log.WithUserID(actor.UserID).WithField("approved_user_id", userID).Info("user approved")
	return nil
}
