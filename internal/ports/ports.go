package ports

import (
	"context"
	"time"

	"blacklist/internal/domain"
	"blacklist/internal/riskscore"
)

// Cases is the case workflow consumed by the HTTP adapter.
type Cases interface {
	Submit(ctx context.Context, actor domain.Actor, in CaseInput) (domain.Case, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.Case, error)
	List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Case, error)
	Search(ctx context.Context, actor domain.Actor, name string, birthDate *time.Time) ([]domain.Case, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (domain.Case, error)
	Reject(ctx context.Context, actor domain.Actor, id, reason string) (domain.Case, error)
	Edit(ctx context.Context, actor domain.Actor, id string, in CaseEdit) (domain.Case, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	Preview(text string) riskscore.Assessment
	Tier(score int) riskscore.Tier
	ExtractNarrative(ctx context.Context, image []byte, contentType string) (Extraction, error)
}

// CaseInput is a new submission.
type CaseInput struct {
	FullName       string `validate:"required,notblank,max=200"`
	FullNameKana   string `validate:"max=200"`
	Gender         string `validate:"omitempty,oneof=male female other unknown"`
	BirthDate      *time.Time
	PhoneLast4     string `validate:"omitempty,len=4,numeric"`
	OccurrenceDate *time.Time
	NarrativeText  string   `validate:"required,notblank,max=20000"`
	EvidencePaths  []string `validate:"max=20,dive,required,max=500"`
}

// CaseEdit replaces the descriptive fields; Status and RejectionReason
// route through the lifecycle when set.
type CaseEdit struct {
	CaseInput
	Status          *domain.Status
	RejectionReason string
}

// Extraction is the outcome of OCR pre-population.
type Extraction struct {
	Text       string
	Extracted  bool
	Assessment riskscore.Assessment
}

// Companies manages member companies.
type Companies interface {
	Create(ctx context.Context, actor domain.Actor, name string, isMain bool) (domain.Company, error)
	Get(ctx context.Context, actor domain.Actor, id string) (domain.Company, error)
	List(ctx context.Context, actor domain.Actor) ([]domain.Company, error)
	Update(ctx context.Context, actor domain.Actor, id, name string, isMain bool) (domain.Company, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
}

// Users manages application users and resolves request identities.
type Users interface {
	Register(ctx context.Context, userID, displayName, companyName string) (domain.User, error)
	Resolve(ctx context.Context, userID string, adminClaim bool) (domain.Actor, error)
	Get(ctx context.Context, userID string) (domain.User, error)
	List(ctx context.Context, actor domain.Actor, approved bool) ([]domain.User, error)
	Approve(ctx context.Context, actor domain.Actor, userID string) error
}

// Overview provides the admin dashboard counters.
type Overview interface {
	Get(ctx context.Context, actor domain.Actor) (domain.Overview, error)
}
