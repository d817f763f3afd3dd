package companies

import (
	"context"
	"errors"
	"strings"

	"blacklist/internal/domain"
	"blacklist/internal/logger"
	"blacklist/internal/ports"
)

type Service struct {
	repo ports.CompanyRepository
	log  *logger.Logger
}

func New(repo ports.CompanyRepository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

var _ ports.Companies = (*Service)(nil)

func (s *Service) Create(ctx context.Context, actor domain.Actor, name string, isMain bool) (domain.Company, error) {
	if !actor.Admin {
		return domain.Company{}, domain.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, domain.NewValidationError("name", "is required")
	}
	c, err := s.repo.CreateCompany(ctx, name, isMain)
	if errors.Is(err, domain.ErrConflict) {
		return domain.Company{}, domain.NewValidationError("name", "already exists")
	}
	if err != nil {
		return domain.Company{}, err
	}
	s.log.WithField("company_id", c.ID).Info("company created")
	return c, nil
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Company, error) {
	if !actor.Admin {
		return domain.Company{}, domain.ErrForbidden
	}
	return s.repo.GetCompany(ctx, id)
}

// Update renames a company or flips its main flag. Users and cases follow the
// company by id, so a rename is visible everywhere on the next read.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id, name string, isMain bool) (domain.Company, error) {
	if !actor.Admin {
		return domain.Company{}, domain.ErrForbidden
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, domain.NewValidationError("name", "is required")
	}
	c, err := s.repo.UpdateCompany(ctx, id, name, isMain)
	if errors.Is(err, domain.ErrConflict) {
		return domain.Company{}, domain.NewValidationError("name", "already exists")
	}
	if err != nil {
		return domain.Company{}, err
	}
	s.log.WithField("company_id", c.ID).Info("company updated")
	return c, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Company, error) {
	if !actor.Admin {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListCompanies(ctx)
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Admin {
		return domain.ErrForbidden
	}
	if err := s.repo.DeleteCompany(ctx, id); err != nil {
		return err
	}
	s.log.WithField("company_id", id).Info("company deleted")
	return nil
}

// FindOrCreate returns the company with the given name, creating a
// non-main company when none exists. Used by sign-up.
func (s *Service) FindOrCreate(ctx context.Context, name string) (domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Company{}, domain.NewValidationError("company_name", "is required")
	}
	c, err := s.repo.FindCompanyByName(ctx, name)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Company{}, err
	}
	c, err = s.repo.CreateCompany(ctx, name, false)
	if errors.Is(err, domain.ErrConflict) {
		// created concurrently by another sign-up
		return s.repo.FindCompanyByName(ctx, name)
	}
	return c, err
}
