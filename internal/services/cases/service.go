package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
	"blacklist/internal/ports"
	"blacklist/internal/riskscore"
	"blacklist/internal/validation"
)

type Service struct {
	cases     ports.CaseRepository
	scorer    *riskscore.Scorer
	extractor ports.TextExtractor
	validate  *validation.Validator
	log       *logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func New(cases ports.CaseRepository, scorer *riskscore.Scorer, extractor ports.TextExtractor, log *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		cases:     cases,
		scorer:    scorer,
		extractor: extractor,
		validate:  validation.New(),
		log:       log,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ ports.Cases = (*Service)(nil)

// Submit files a new pending case. The risk score is computed here once
// and never recomputed.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, in ports.CaseInput) (domain.Case, error) {
	if !actor.Approved {
		return domain.Case{}, domain.ErrForbidden
	}
	if err := s.validate.Struct(in); err != nil {
		return domain.Case{}, err
	}
	if actor.CompanyID == "" {
		return domain.Case{}, domain.NewValidationError("company", "user is not attached to a company")
	}
	now := s.now()
	c := domain.Case{
		ID:                  uuid.NewString(),
		Status:              domain.StatusPending,
		RiskScore:           s.scorer.Score(in.NarrativeText),
		RegisteredCompanyID: actor.CompanyID,
		RegisteredByUserID:  actor.UserID,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	setDetails(&c, toDetails(in))

	created, err := s.cases.Create(ctx, c)
	if err != nil {
		return domain.Case{}, fmt.Errorf("create case: %w", err)
	}
	tier := s.scorer.Tier(created.RiskScore)
	s.metrics.RecordSubmission(riskscore.TierLabel(tier))
	s.log.WithFields(logrus.Fields{
		"case_id":    created.ID,
		"user_id":    actor.UserID,
		"risk_score": created.RiskScore,
		"tier":       int(tier),
	}).Info("case submitted")
	return created, nil
}

// Get hides cases the actor may not see behind ErrNotFound.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Case, error) {
	if !actor.Approved {
		return domain.Case{}, domain.ErrForbidden
	}
	c, err := s.cases.Load(ctx, id)
	if err != nil {
		return domain.Case{}, err
	}
	if !visible(actor, c) {
		return domain.Case{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Case, error) {
	if !actor.Approved {
		return nil, domain.ErrForbidden
	}
	f := domain.CaseFilter{Status: status}
	if !actor.Admin {
		approved := domain.StatusApproved
		f.Status = &approved
	}
	return s.cases.List(ctx, f)
}

// Search matches by name (full or kana, normalized substring) and/or exact
// birth date. Non-admins only search approved cases.
func (s *Service) Search(ctx context.Context, actor domain.Actor, name string, birthDate *time.Time) ([]domain.Case, error) {
	if !actor.Approved {
		return nil, domain.ErrForbidden
	}
	q := normalizeName(name)
	if q == "" && birthDate == nil {
		return nil, domain.NewValidationError("query", "name or birth_date is required")
	}
	f := domain.CaseFilter{BirthDate: birthDate}
	if !actor.Admin {
		approved := domain.StatusApproved
		f.Status = &approved
	}
	found, err := s.cases.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return found, nil
	}
	out := found[:0]
	for _, c := range found {
		if matchesName(c, q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Service) Approve(ctx context.Context, actor domain.Actor, id string) (domain.Case, error) {
	return s.decide(ctx, actor, id, domain.StatusApproved, func(c domain.Case, now time.Time) (lifecycle.Decision, error) {
		return lifecycle.Approve(c, actor.UserID, now)
	})
}

func (s *Service) Reject(ctx context.Context, actor domain.Actor, id, reason string) (domain.Case, error) {
	return s.decide(ctx, actor, id, domain.StatusRejected, func(c domain.Case, now time.Time) (lifecycle.Decision, error) {
		return lifecycle.Reject(c, actor.UserID, reason, now)
	})
}

type transition func(c domain.Case, now time.Time) (lifecycle.Decision, error)

// decide runs a lifecycle transition and persists it conditionally on the
// case still being pending. Losing a race surfaces as InvalidTransition.
func (s *Service) decide(ctx context.Context, actor domain.Actor, id string, to domain.Status, fn transition) (domain.Case, error) {
	if !actor.Admin {
		return domain.Case{}, domain.ErrForbidden
	}
	c, err := s.cases.Load(ctx, id)
	if err != nil {
		return domain.Case{}, err
	}
	return s.commit(ctx, actor, c, to, fn, func(d lifecycle.Decision) error {
		return s.cases.SaveTransition(ctx, c.ID, domain.StatusPending, d)
	})
}

// commit computes the decision and hands it to save, which must persist it
// conditionally on the case still being pending.
func (s *Service) commit(ctx context.Context, actor domain.Actor, c domain.Case, to domain.Status, fn transition, save func(lifecycle.Decision) error) (domain.Case, error) {
	d, err := fn(c, s.now())
	if err != nil {
		s.metrics.RecordTransition(string(to), outcome(err))
		return domain.Case{}, err
	}
	entry := s.log.WithFields(logrus.Fields{"case_id": c.ID, "user_id": actor.UserID, "to": string(to)})
	if err := save(d); err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			return domain.Case{}, fmt.Errorf("save transition: %w", err)
		}
		s.metrics.RecordTransition(string(to), "conflict")
		from := domain.Status("")
		if cur, lerr := s.cases.Load(ctx, c.ID); lerr == nil {
			from = cur.Status
		}
		entry.WithField("current", string(from)).Warn("case already decided")
		return domain.Case{}, &domain.TransitionError{CaseID: c.ID, From: from, To: to}
	}
	s.metrics.RecordTransition(string(to), "ok")
	entry.Info("case decided")
	return d.Apply(c), nil
}

// Edit updates descriptive fields for the owning company or an admin. The
// risk score stays as computed at submission. A status change is routed
// through the lifecycle and requires an admin.
func (s *Service) Edit(ctx context.Context, actor domain.Actor, id string, in ports.CaseEdit) (domain.Case, error) {
	if !actor.Approved {
		return domain.Case{}, domain.ErrForbidden
	}
	c, err := s.cases.Load(ctx, id)
	if err != nil {
		return domain.Case{}, err
	}
	if !visible(actor, c) {
		return domain.Case{}, domain.ErrNotFound
	}
	if !actor.Admin && c.RegisteredCompanyID != actor.CompanyID {
		return domain.Case{}, domain.ErrForbidden
	}
	if err := s.validate.Struct(in.CaseInput); err != nil {
		return domain.Case{}, err
	}

	details := toDetails(in.CaseInput)
	if in.Status != nil && *in.Status != c.Status {
		if !actor.Admin {
			return domain.Case{}, domain.ErrForbidden
		}
		var fn transition
		switch *in.Status {
		case domain.StatusApproved:
			fn = func(c domain.Case, now time.Time) (lifecycle.Decision, error) {
				return lifecycle.Approve(c, actor.UserID, now)
			}
		case domain.StatusRejected:
			fn = func(c domain.Case, now time.Time) (lifecycle.Decision, error) {
				return lifecycle.Reject(c, actor.UserID, in.RejectionReason, now)
			}
		default:
			return domain.Case{}, &domain.TransitionError{CaseID: c.ID, From: c.Status, To: *in.Status}
		}
		// details and decision are written together
		c, err = s.commit(ctx, actor, c, *in.Status, fn, func(d lifecycle.Decision) error {
			return s.cases.UpdateDetails(ctx, id, details, &d)
		})
		if err != nil {
			return domain.Case{}, err
		}
	} else if err := s.cases.UpdateDetails(ctx, id, details, nil); err != nil {
		return domain.Case{}, fmt.Errorf("update case: %w", err)
	}

	setDetails(&c, details)
	c.UpdatedAt = s.now()
	return c, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.Admin {
		return domain.ErrForbidden
	}
	if err := s.cases.Delete(ctx, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"case_id": id, "user_id": actor.UserID}).Info("case deleted")
	return nil
}

func (s *Service) Preview(text string) riskscore.Assessment {
	return s.scorer.Assess(text)
}

// Tier classifies a stored score for display.
func (s *Service) Tier(score int) riskscore.Tier {
	return s.scorer.Tier(score)
}

// ExtractNarrative pre-populates narrative text from an image. Extraction
// failures are logged and reported as Extracted=false, never as errors.
func (s *Service) ExtractNarrative(ctx context.Context, image []byte, contentType string) (ports.Extraction, error) {
	if len(image) == 0 {
		return ports.Extraction{}, domain.NewValidationError("image", "is required")
	}
	text, err := s.extractor.ExtractText(ctx, image, contentType)
	if err != nil {
		s.log.WithError(err).Warn("text extraction failed")
		return ports.Extraction{Assessment: s.scorer.Assess("")}, nil
	}
	text = strings.TrimSpace(text)
	return ports.Extraction{Text: text, Extracted: true, Assessment: s.scorer.Assess(text)}, nil
}

func visible(actor domain.Actor, c domain.Case) bool {
	return actor.Admin || c.Status == domain.StatusApproved || c.RegisteredCompanyID == actor.CompanyID
}

func outcome(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return "validation"
	}
	return "invalid"
}

func toDetails(in ports.CaseInput) domain.CaseDetails {
	gender := domain.Gender(in.Gender)
	if gender == "" {
		gender = domain.GenderUnknown
	}
	return domain.CaseDetails{
		FullName:       strings.TrimSpace(in.FullName),
		FullNameKana:   optional(in.FullNameKana),
		Gender:         gender,
		BirthDate:      in.BirthDate,
		PhoneLast4:     optional(in.PhoneLast4),
		OccurrenceDate: in.OccurrenceDate,
		NarrativeText:  in.NarrativeText,
		EvidencePaths:  in.EvidencePaths,
	}
}

func setDetails(c *domain.Case, d domain.CaseDetails) {
	c.FullName = d.FullName
	c.FullNameKana = d.FullNameKana
	c.Gender = d.Gender
	c.BirthDate = d.BirthDate
	c.PhoneLast4 = d.PhoneLast4
	c.OccurrenceDate = d.OccurrenceDate
	c.NarrativeText = d.NarrativeText
	c.EvidencePaths = d.EvidencePaths
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
