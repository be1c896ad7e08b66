package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/teatest"
	"github.com/alexanderramin/praxis/internal/testutil"
)

type stubPlanService struct {
	latest    *domain.WeeklyPlan
	latestErr error
}

func (s *stubPlanService) Generate(context.Context, contract.PlanGenerateRequest) (*domain.WeeklyPlan, error) {
	return nil, errors.New("read-only stub")
}
func (s *stubPlanService) List(context.Context) ([]domain.WeeklyPlan, error) { return nil, nil }
func (s *stubPlanService) Latest(context.Context) (*domain.WeeklyPlan, error) {
	return s.latest, s.latestErr
}
func (s *stubPlanService) Get(context.Context, string) (*domain.WeeklyPlan, error) {
	return nil, &contract.NotFoundError{Message: "not found"}
}
func (s *stubPlanService) Adjust(context.Context, contract.AdjustmentRequest) (*domain.WeeklyPlan, error) {
	return nil, errors.New("read-only stub")
}

type stubRealityService struct {
	history []domain.HistoryEntry
	err     error
}

func (s *stubRealityService) Submit(context.Context, contract.RealityCheckRequest) (*domain.DeviationReport, error) {
	return nil, errors.New("read-only stub")
}
func (s *stubRealityService) Report(context.Context, string) (*domain.DeviationReport, error) {
	return nil, &contract.NotFoundError{Message: "not found"}
}
func (s *stubRealityService) History(context.Context, int) ([]domain.HistoryEntry, error) {
	return s.history, s.err
}
func (s *stubRealityService) HistoryEntry(context.Context, string) (*domain.HistoryEntry, error) {
	return nil, &contract.NotFoundError{Message: "not found"}
}

type stubStatusService struct {
	status *contract.StatusResponse
	health *contract.HealthResponse
	err    error
}

func (s *stubStatusService) Status(context.Context) (*contract.StatusResponse, error) {
	return s.status, s.err
}
func (s *stubStatusService) Health(context.Context) (*contract.HealthResponse, error) {
	return s.health, s.err
}

func dashboardApp() *App {
	plan := testutil.NewTestPlan("2025-W42", testutil.WithCompletedDays(domain.Mon))
	rate := 0.5
	history := []domain.HistoryEntry{{
		WeekID:              "2025-W41",
		Plan:                *testutil.NewTestPlan("2025-W41", testutil.WithPlanVersion(2)),
		FinalCompletionRate: &rate,
		DeviationReport: &domain.DeviationReport{
			WeekID:           "2025-W41",
			DeviationSummary: "Half of the sessions slipped after a cold.",
		},
		Adjustments: []domain.AdjustmentRecord{
			{ID: "adj-1", Version: 2, Reason: "lost two days to a cold"},
		},
	}}

	return &App{
		Plans:   &stubPlanService{latest: plan},
		Reality: &stubRealityService{history: history},
		Status: &stubStatusService{
			status: &contract.StatusResponse{
				ProfileExists: true,
				CurrentWeekID: "2025-W42",
				ActivePlan:    plan,
				Statistics:    contract.Statistics{ProfileExists: true, TotalPlans: 3, TotalHistoryEntries: 3},
			},
			health: &contract.HealthResponse{
				Status:        "healthy",
				LLMProvider:   "ollama",
				LLMConfigured: true,
				DataDirectory: "/tmp/praxis-test",
			},
		},
	}
}

func newDashboardDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newDashboardModel(app), teatest.WithSize(100, 40))
	d.DrainInit()
	return d
}

func TestDashboard_PlanTabShowsLatestPlan(t *testing.T) {
	d := newDashboardDriver(t, dashboardApp())

	view := d.View()
	assert.Contains(t, view, "2025-W42")
	assert.Contains(t, view, "PRIORITIES")
	assert.Contains(t, view, "Strength sessions")
	assert.Contains(t, view, "Session Mon")
	assert.Contains(t, view, "✓")
}

func TestDashboard_DayCursorMoves(t *testing.T) {
	d := newDashboardDriver(t, dashboardApp())

	model, ok := d.Model.(*dashboardModel)
	require.True(t, ok)
	assert.Equal(t, 0, model.dayCursor)

	d.PressDown()
	d.PressDown()
	assert.Equal(t, 2, model.dayCursor)

	// The cursor never leaves the seven planned days.
	for i := 0; i < 10; i++ {
		d.PressDown()
	}
	assert.Equal(t, 6, model.dayCursor)

	d.PressUp()
	assert.Equal(t, 5, model.dayCursor)
}

func TestDashboard_TabSwitching(t *testing.T) {
	d := newDashboardDriver(t, dashboardApp())

	d.PressKey('2')
	view := d.View()
	assert.Contains(t, view, "WEEK 2025-W42")
	assert.Contains(t, view, "Profile")
	assert.Contains(t, view, "ollama")

	d.PressKey('3')
	view = d.View()
	assert.Contains(t, view, "RECENT WEEKS")
	assert.Contains(t, view, "2025-W41")
	assert.Contains(t, view, "50%")
	assert.Contains(t, view, "1 adjustment(s)")

	// Cycle wraps back to the plan tab.
	d.SendKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, d.View(), "PRIORITIES")
}

func TestDashboard_EmptyStore(t *testing.T) {
	app := dashboardApp()
	app.Plans = &stubPlanService{latestErr: &contract.NotFoundError{Message: "No plans found"}}
	app.Reality = &stubRealityService{}
	app.Status = &stubStatusService{
		status: &contract.StatusResponse{CurrentWeekID: "2025-W42"},
		health: &contract.HealthResponse{Status: "healthy", LLMProvider: "ollama"},
	}

	d := newDashboardDriver(t, app)
	assert.Contains(t, d.View(), "No plans yet")

	d.PressKey('3')
	assert.Contains(t, d.View(), "Nothing tracked yet")
}

func TestDashboard_LoadErrorIsRendered(t *testing.T) {
	app := dashboardApp()
	app.Status = &stubStatusService{err: errors.New("state file unreadable")}

	d := newDashboardDriver(t, app)
	assert.Contains(t, d.View(), "Error: state file unreadable")
}

func TestDashboard_QuitKeys(t *testing.T) {
	d := newDashboardDriver(t, dashboardApp())
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
