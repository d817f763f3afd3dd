package cases

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blacklist/internal/adapters/memory"
	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
	"blacklist/internal/logger"
	"blacklist/internal/metrics"
	"blacklist/internal/ports"
	"blacklist/internal/riskscore"
)

var (
	admin   = domain.Actor{UserID: "admin-1", CompanyID: "main", Admin: true, Approved: true}
	member  = domain.Actor{UserID: "user-1", CompanyID: "co-1", Approved: true}
	other   = domain.Actor{UserID: "user-2", CompanyID: "co-2", Approved: true}
	waiting = domain.Actor{UserID: "user-3", CompanyID: "co-1"}
	fixed   = time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
)

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	return s.text, s.err
}

func newService(t *testing.T, repo ports.CaseRepository) (*Service, *metrics.Metrics) {
	t.Helper()
	scorer, err := riskscore.New(riskscore.DefaultConfig())
	require.NoError(t, err)
	m := metrics.New("test")
	s := New(repo, scorer, stubExtractor{text: " 遅刻が多い\n"}, logger.NewWithOutput("test", "error", io.Discard), m)
	s.now = func() time.Time { return fixed }
	return s, m
}

func input(narrative string) ports.CaseInput {
	return ports.CaseInput{FullName: "山田 太郎", FullNameKana: "ヤマダ タロウ", Gender: "male", NarrativeText: narrative}
}

func TestSubmitScoresOnceAndStartsPending(t *testing.T) {
	s, m := newService(t, memory.New())
	c, err := s.Submit(context.Background(), member, input("着服と無断欠勤があった"))
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.StatusPending, c.Status)
	assert.Equal(t, 548115, c.RiskScore)
	assert.Equal(t, "co-1", c.RegisteredCompanyID)
	assert.Equal(t, "user-1", c.RegisteredByUserID)
	assert.Nil(t, c.DecidedBy)
	assert.Nil(t, c.DecidedAt)
	assert.Nil(t, c.RejectionReason)
	assert.Equal(t, domain.GenderMale, c.Gender)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("critical")))
}

func TestSubmitValidation(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()

	_, err := s.Submit(ctx, member, input("   "))
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "narrative_text", verr.Fields[0].Field)

	in := input("遅刻")
	in.PhoneLast4 = "12"
	_, err = s.Submit(ctx, member, in)
	require.ErrorAs(t, err, &verr)

	_, err = s.Submit(ctx, domain.Actor{UserID: "x", Approved: true}, input("遅刻"))
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "company", verr.Fields[0].Field)

	_, err = s.Submit(ctx, waiting, input("遅刻"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApprovePending(t *testing.T) {
	s, m := newService(t, memory.New())
	ctx := context.Background()
	c, err := s.Submit(ctx, member, input("遅刻が多い"))
	require.NoError(t, err)
	assert.Equal(t, 1555, c.RiskScore)

	got, err := s.Approve(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.Equal(t, "admin-1", *got.DecidedBy)
	assert.Equal(t, fixed, *got.DecidedAt)
	assert.Nil(t, got.RejectionReason)
	assert.Equal(t, 1555, got.RiskScore)

	stored, err := s.Get(ctx, other, c.ID)
	require.NoError(t, err, "approved cases are visible to every member")
	assert.Equal(t, domain.StatusApproved, stored.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("approved", "ok")))
}

func TestApproveTwiceIsInvalidTransition(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))
	first, err := s.Approve(ctx, admin, c.ID)
	require.NoError(t, err)

	s.now = func() time.Time { return fixed.Add(time.Hour) }
	_, err = s.Approve(ctx, admin, c.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := s.Get(ctx, admin, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *first.DecidedAt, *stored.DecidedAt, "no fields mutated")
}

func TestRejectWhitespaceReason(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	_, err := s.Reject(ctx, admin, c.ID, " ")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	stored, _ := s.Get(ctx, admin, c.ID)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Nil(t, stored.DecidedBy)

	got, err := s.Reject(ctx, admin, c.ID, "証拠不十分")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Equal(t, "証拠不十分", *got.RejectionReason)
}

func TestDecisionsRequireAdmin(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	_, err := s.Approve(ctx, member, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.Reject(ctx, member, c.ID, "no")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = s.Approve(ctx, admin, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConcurrentApproveAndReject(t *testing.T) {
	for i := 0; i < 20; i++ {
		s, _ := newService(t, memory.New())
		ctx := context.Background()
		c, err := s.Submit(ctx, member, input("遅刻"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = s.Approve(ctx, admin, c.ID)
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = s.Reject(ctx, domain.Actor{UserID: "admin-2", Admin: true, Approved: true}, c.ID, "重複")
		}()
		wg.Wait()

		failed := 0
		for _, err := range errs {
			if err != nil {
				failed++
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		}
		assert.Equal(t, 1, failed, "exactly one decision wins")

		stored, err := s.Get(ctx, admin, c.ID)
		require.NoError(t, err)
		switch stored.Status {
		case domain.StatusApproved:
			assert.Nil(t, stored.RejectionReason)
			assert.Equal(t, "admin-1", *stored.DecidedBy)
		case domain.StatusRejected:
			assert.Equal(t, "重複", *stored.RejectionReason)
			assert.Equal(t, "admin-2", *stored.DecidedBy)
		default:
			t.Fatalf("unexpected status %s", stored.Status)
		}
	}
}

// racingRepo loses every conditional update, as if another admin had
// decided the case between Load and SaveTransition.
type racingRepo struct {
	*memory.Store
	winner lifecycle.Decision
}

func (r *racingRepo) SaveTransition(ctx context.Context, id string, expected domain.Status, d lifecycle.Decision) error {
	if err := r.Store.SaveTransition(ctx, id, expected, r.winner); err != nil {
		return err
	}
	return domain.ErrConflict
}

func TestLostRaceSurfacesAsInvalidTransition(t *testing.T) {
	repo := &racingRepo{Store: memory.New(), winner: lifecycle.Decision{Status: domain.StatusApproved, DecidedBy: "admin-9", DecidedAt: fixed}}
	s, m := newService(t, repo)
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	_, err := s.Reject(ctx, admin, c.ID, "理由")
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	var terr *domain.TransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, domain.StatusApproved, terr.From)
	assert.Equal(t, domain.StatusRejected, terr.To)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("rejected", "conflict")))
}

func TestVisibility(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	_, err := s.Get(ctx, member, c.ID)
	assert.NoError(t, err, "own company sees its pending case")
	_, err = s.Get(ctx, other, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.Get(ctx, waiting, c.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	list, err := s.List(ctx, other, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = s.List(ctx, admin, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	pending := domain.StatusPending
	list, _ = s.List(ctx, member, &pending)
	assert.Empty(t, list, "non-admins only list approved cases")
}

func TestEditKeepsScoreAndOwnership(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	edit := ports.CaseEdit{CaseInput: input("横領で逮捕された")}
	got, err := s.Edit(ctx, member, c.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "横領で逮捕された", got.NarrativeText)
	assert.Equal(t, c.RiskScore, got.RiskScore, "score is fixed at submission")
	assert.Equal(t, "co-1", got.RegisteredCompanyID)

	_, err = s.Edit(ctx, other, c.ID, edit)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditStatusRoutesThroughLifecycle(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	approved := domain.StatusApproved
	_, err := s.Edit(ctx, member, c.ID, ports.CaseEdit{CaseInput: input("遅刻"), Status: &approved})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	rejected := domain.StatusRejected
	_, err = s.Edit(ctx, admin, c.ID, ports.CaseEdit{CaseInput: input("遅刻"), Status: &rejected})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	got, err := s.Edit(ctx, admin, c.ID, ports.CaseEdit{CaseInput: input("遅刻と口論"), Status: &rejected, RejectionReason: "重複登録"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, got.Status)
	assert.Equal(t, "遅刻と口論", got.NarrativeText)

	pending := domain.StatusPending
	_, err = s.Edit(ctx, admin, c.ID, ports.CaseEdit{CaseInput: input("遅刻"), Status: &pending})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = s.Edit(ctx, admin, c.ID, ports.CaseEdit{CaseInput: input("遅刻"), Status: &approved})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSearch(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	bd := time.Date(1985, 7, 1, 0, 0, 0, 0, time.UTC)

	in := input("遅刻")
	in.BirthDate = &bd
	c1, _ := s.Submit(ctx, member, in)
	_, err := s.Approve(ctx, admin, c1.ID)
	require.NoError(t, err)

	pendingIn := input("口論")
	pendingIn.FullName = "鈴木 一郎"
	pendingIn.FullNameKana = "スズキ イチロウ"
	_, _ = s.Submit(ctx, member, pendingIn)

	got, err := s.Search(ctx, other, "ﾔﾏﾀﾞ", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, c1.ID, got[0].ID)

	got, _ = s.Search(ctx, other, "山田太郎", nil)
	assert.Len(t, got, 1)

	got, _ = s.Search(ctx, other, "", &bd)
	assert.Len(t, got, 1)

	got, _ = s.Search(ctx, other, "スズキ", nil)
	assert.Empty(t, got, "pending cases are hidden from members")

	got, _ = s.Search(ctx, admin, "すずき", nil)
	assert.Empty(t, got, "hiragana does not fold to katakana")

	got, _ = s.Search(ctx, admin, "スズキ", nil)
	assert.Len(t, got, 1)

	_, err = s.Search(ctx, other, "  ", nil)
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDelete(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()
	c, _ := s.Submit(ctx, member, input("遅刻"))

	assert.ErrorIs(t, s.Delete(ctx, member, c.ID), domain.ErrForbidden)
	require.NoError(t, s.Delete(ctx, admin, c.ID))
	assert.ErrorIs(t, s.Delete(ctx, admin, c.ID), domain.ErrNotFound)
}

func TestExtractNarrative(t *testing.T) {
	s, _ := newService(t, memory.New())
	ctx := context.Background()

	got, err := s.ExtractNarrative(ctx, []byte{0x89, 'P', 'N', 'G'}, "image/png")
	require.NoError(t, err)
	assert.True(t, got.Extracted)
	assert.Equal(t, "遅刻が多い", got.Text)
	assert.Equal(t, 1555, got.Assessment.Score)

	s.extractor = stubExtractor{err: errors.New("ocr down")}
	got, err = s.ExtractNarrative(ctx, []byte{1}, "image/png")
	require.NoError(t, err, "extraction failures skip pre-population")
	assert.False(t, got.Extracted)
	assert.Empty(t, got.Text)
	assert.Equal(t, 5, got.Assessment.Score)

	_, err = s.ExtractNarrative(ctx, nil, "image/png")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestPreview(t *testing.T) {
	s, _ := newService(t, memory.New())
	a := s.Preview("遅刻が多い")
	assert.Equal(t, 1555, a.Score)
	assert.Equal(t, riskscore.TierWatch, a.Tier)
	assert.Equal(t, []string{"遅刻"}, a.Matched)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ヤマダタロウ", normalizeName("ﾔﾏﾀﾞ ﾀﾛｳ"))
	assert.Equal(t, "ヤマダタロウ", normalizeName("ヤマダ　タロウ"))
	assert.Equal(t, "taro", normalizeName("ＴＡＲＯ"))
	assert.Equal(t, "", normalizeName(" \t　"))
}

// failingDetailsRepo rejects every details write.
type failingDetailsRepo struct {
	*memory.Store
}

func (r failingDetailsRepo) UpdateDetails(ctx context.Context, id string, details domain.CaseDetails, d *lifecycle.Decision) error {
	return errors.New("disk full")
}

func TestEditWithStatusIsAllOrNothing(t *testing.T) {
	repo := failingDetailsRepo{Store: memory.New()}
	s, _ := newService(t, repo)
	ctx := context.Background()
	c, err := s.Submit(ctx, member, input("遅刻"))
	require.NoError(t, err)

	approved := domain.StatusApproved
	_, err = s.Edit(ctx, admin, c.ID, ports.CaseEdit{CaseInput: input("遅刻と口論"), Status: &approved})
	require.Error(t, err)

	stored, err := repo.Load(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, stored.Status)
	assert.Nil(t, stored.DecidedBy)
	assert.Equal(t, "遅刻", stored.NarrativeText)
}
