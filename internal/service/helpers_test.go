package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/intelligence"
	"github.com/alexanderramin/praxis/internal/store"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/alexanderramin/praxis/internal/week"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(t.TempDir())
}

func seedProfile(t *testing.T, st *store.Store) {
	t.Helper()
	doc, err := st.Load()
	require.NoError(t, err)
	doc.Profile = testutil.NewTestProfile()
	require.NoError(t, st.Save(doc))
}

func seedPlan(t *testing.T, st *store.Store, plan *domain.WeeklyPlan) {
	t.Helper()
	doc, err := st.Load()
	require.NoError(t, err)
	doc.Plans[plan.WeekID] = *plan
	doc.UpsertHistory(domain.HistoryEntry{
		WeekID:      plan.WeekID,
		Plan:        *plan,
		Adjustments: []domain.AdjustmentRecord{},
	})
	require.NoError(t, st.Save(doc))
}

// fakePlanner drafts a fixture plan for the requested week, or fails.
type fakePlanner struct {
	plan    *domain.WeeklyPlan
	err     error
	calls   int
	lastReq intelligence.PlanRequest
}

func (f *fakePlanner) DraftPlan(ctx context.Context, req intelligence.PlanRequest) (*domain.WeeklyPlan, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	if f.plan != nil {
		plan := *f.plan
		return &plan, nil
	}
	return testutil.NewTestPlan(req.WeekID, testutil.WithStartDate(week.FormatDate(req.StartDate))), nil
}

// fakeReviewer applies the real verdict rules with a stub narrative.
type fakeReviewer struct {
	err       error
	calls     int
	lastPlan  domain.WeeklyPlan
	lastCheck domain.RealityCheck
}

func (f *fakeReviewer) Review(ctx context.Context, plan domain.WeeklyPlan, check domain.RealityCheck) (*domain.DeviationReport, error) {
	f.calls++
	f.lastPlan = plan
	f.lastCheck = check
	if f.err != nil {
		return nil, f.err
	}
	rate := check.CompletionRate()
	action := domain.ActionMaintain
	if rate < domain.DeviationThreshold || len(check.UnexpectedEvents) > 0 {
		action = domain.ActionAdjust
	}
	return &domain.DeviationReport{
		WeekID:            check.WeekID,
		DeviationDetected: action == domain.ActionAdjust,
		CompletionRate:    rate,
		DeviationSummary:  "stub summary",
		ConfidenceScore:   0.8,
		RecommendedAction: action,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// fakeAdjuster bumps the version and leaves the actions alone.
type fakeAdjuster struct {
	err     error
	calls   int
	lastReq intelligence.AdjustRequest
}

func (f *fakeAdjuster) AdjustPlan(ctx context.Context, req intelligence.AdjustRequest) (*domain.WeeklyPlan, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	adjusted := req.Plan
	adjusted.Version++
	adjusted.DailyActions = req.Plan.CloneActions()
	return &adjusted, nil
}
