package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/intelligence"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/store"
	"github.com/alexanderramin/praxis/internal/week"
)

// planHistoryContext is how many closed weeks the planning prompt sees.
const planHistoryContext = 3

type planService struct {
	store    *store.Store
	planner  intelligence.Planner
	adjuster intelligence.Adjuster
	now      func() time.Time
}

func NewPlanService(st *store.Store, planner intelligence.Planner, adjuster intelligence.Adjuster) PlanService {
	return &planService{
		store:    st,
		planner:  planner,
		adjuster: adjuster,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *planService) Generate(ctx context.Context, req contract.PlanGenerateRequest) (*domain.WeeklyPlan, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Profile == nil {
		return nil, &contract.NotFoundError{Message: "Profile must be created before generating plans"}
	}

	start := week.MondayOf(s.now())
	if raw := strings.TrimSpace(req.WeekStartDate); raw != "" {
		parsed, err := week.ParseDate(raw)
		if err != nil {
			return nil, &contract.ValidationError{Field: "week_start_date", Message: "Invalid date format. Use YYYY-MM-DD"}
		}
		start = parsed
	}
	weekID := week.ID(start)

	plan, err := s.planner.DraftPlan(ctx, intelligence.PlanRequest{
		Profile:   *doc.Profile,
		History:   doc.RecentHistory(planHistoryContext),
		WeekID:    weekID,
		StartDate: start,
	})
	if err != nil {
		return nil, err
	}

	doc.Plans[weekID] = *plan
	// A regenerated week starts its record over; any earlier check or
	// report for that week is superseded.
	doc.UpsertHistory(domain.HistoryEntry{
		WeekID:      weekID,
		Plan:        *plan,
		Adjustments: []domain.AdjustmentRecord{},
	})
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	logger.Info("plan generated", "week_id", weekID, "priorities", len(plan.Priorities))
	return plan, nil
}

func (s *planService) List(ctx context.Context) ([]domain.WeeklyPlan, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.SortedPlans(), nil
}

func (s *planService) Latest(ctx context.Context) (*domain.WeeklyPlan, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	plans := doc.SortedPlans()
	if len(plans) == 0 {
		return nil, &contract.NotFoundError{Message: "No plans found"}
	}
	return &plans[0], nil
}

func (s *planService) Get(ctx context.Context, weekID string) (*domain.WeeklyPlan, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	plan := doc.Plan(weekID)
	if plan == nil {
		return nil, &contract.NotFoundError{Message: fmt.Sprintf("No active plan found for week %s", weekID)}
	}
	return plan, nil
}

func (s *planService) Adjust(ctx context.Context, req contract.AdjustmentRequest) (*domain.WeeklyPlan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	weekID := strings.TrimSpace(req.WeekID)
	plan := doc.Plan(weekID)
	if plan == nil {
		return nil, &contract.NotFoundError{Message: fmt.Sprintf("No active plan found for week %s", weekID)}
	}
	if doc.Profile == nil {
		return nil, &contract.NotFoundError{Message: "Profile must be created before adjusting plans"}
	}

	var report *domain.DeviationReport
	if r, ok := doc.DeviationReports[weekID]; ok {
		report = &r
	}

	adjusted, err := s.adjuster.AdjustPlan(ctx, intelligence.AdjustRequest{
		Plan:             *plan,
		Profile:          *doc.Profile,
		Reason:           req.Reason,
		RequestedChanges: req.RequestedChanges,
		Report:           report,
	})
	if err != nil {
		return nil, err
	}

	doc.Plans[weekID] = *adjusted

	entry := doc.HistoryEntry(weekID)
	if entry == nil {
		entry = &domain.HistoryEntry{WeekID: weekID, Adjustments: []domain.AdjustmentRecord{}}
	}
	entry.Plan = *adjusted
	entry.Adjustments = append(entry.Adjustments, domain.AdjustmentRecord{
		ID:        uuid.NewString(),
		Version:   adjusted.Version,
		Reason:    req.Reason,
		CreatedAt: s.now(),
	})
	doc.UpsertHistory(*entry)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	logger.Info("plan adjusted", "week_id", weekID, "version", adjusted.Version)
	return adjusted, nil
}
