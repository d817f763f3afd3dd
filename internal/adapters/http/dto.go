package httpadapter

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	api "blacklist/internal/api"
	"blacklist/internal/domain"
	"blacklist/internal/ports"
	"blacklist/internal/riskscore"
)

func caseInput(b api.CaseInput) ports.CaseInput {
	in := ports.CaseInput{
		FullName:       b.FullName,
		FullNameKana:   deref(b.FullNameKana),
		BirthDate:      fromDate(b.BirthDate),
		PhoneLast4:     deref(b.PhoneLast4),
		OccurrenceDate: fromDate(b.OccurrenceDate),
		NarrativeText:  b.NarrativeText,
	}
	if b.Gender != nil {
		in.Gender = string(*b.Gender)
	}
	if b.EvidencePaths != nil {
		in.EvidencePaths = *b.EvidencePaths
	}
	return in
}

func caseEdit(b api.CaseEdit) (ports.CaseEdit, error) {
	e := ports.CaseEdit{
		CaseInput: caseInput(api.CaseInput{
			FullName:       b.FullName,
			FullNameKana:   b.FullNameKana,
			Gender:         b.Gender,
			BirthDate:      b.BirthDate,
			PhoneLast4:     b.PhoneLast4,
			OccurrenceDate: b.OccurrenceDate,
			NarrativeText:  b.NarrativeText,
			EvidencePaths:  b.EvidencePaths,
		}),
		RejectionReason: deref(b.RejectionReason),
	}
	if b.Status != nil {
		st, err := statusFilter(b.Status)
		if err != nil {
			return ports.CaseEdit{}, err
		}
		e.Status = st
	}
	return e, nil
}

// statusFilter checks an optional status against the lifecycle states.
func statusFilter(raw *api.CaseStatus) (*domain.Status, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	st, ok := domain.StatusFrom(string(*raw))
	if !ok {
		return nil, domain.NewValidationError("status", "must be pending, approved or rejected")
	}
	return &st, nil
}

func (s *Server) toCase(c domain.Case) api.Case {
	tier := s.cases.Tier(c.RiskScore)
	evidence := c.EvidencePaths
	if evidence == nil {
		evidence = []string{}
	}
	return api.Case{
		Id:                    c.ID,
		FullName:              c.FullName,
		FullNameKana:          c.FullNameKana,
		Gender:                api.Gender(c.Gender),
		BirthDate:             toDate(c.BirthDate),
		PhoneLast4:            c.PhoneLast4,
		OccurrenceDate:        toDate(c.OccurrenceDate),
		NarrativeText:         c.NarrativeText,
		EvidencePaths:         evidence,
		Status:                api.CaseStatus(c.Status),
		RiskScore:             c.RiskScore,
		RiskTier:              int(tier),
		RiskLabel:             riskscore.TierLabel(tier),
		DecidedBy:             c.DecidedBy,
		DecidedAt:             c.DecidedAt,
		RejectionReason:       c.RejectionReason,
		RegisteredCompanyId:   c.RegisteredCompanyID,
		RegisteredCompanyName: c.RegisteredCompanyName,
		RegisteredByUserId:    c.RegisteredByUserID,
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func (s *Server) toCases(cs []domain.Case) []api.Case {
	out := make([]api.Case, 0, len(cs))
	for _, c := range cs {
		out = append(out, s.toCase(c))
	}
	return out
}

func toAssessment(a riskscore.Assessment) api.Assessment {
	matched := a.Matched
	if matched == nil {
		matched = []string{}
	}
	return api.Assessment{Score: a.Score, Tier: int(a.Tier), Label: a.Label, Matched: matched}
}

func toUser(u domain.User) api.User {
	return api.User{
		Id:          u.ID,
		DisplayName: u.DisplayName,
		CompanyId:   u.CompanyID,
		CompanyName: u.CompanyName,
		Role:        api.UserRole(u.Role),
		IsApproved:  u.IsApproved,
		CreatedAt:   u.CreatedAt,
	}
}

func toCompany(c domain.Company) api.Company {
	return api.Company{Id: c.ID, Name: c.Name, IsMain: c.IsMain, CreatedAt: c.CreatedAt}
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

func fromDate(d *openapi_types.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
