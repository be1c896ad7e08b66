package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/intelligence"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/store"
)

// defaultHistoryLimit caps GET history responses when the caller does
// not ask for a specific window.
const defaultHistoryLimit = 10

type realityService struct {
	store    *store.Store
	reviewer intelligence.Reviewer
	now      func() time.Time
}

func NewRealityService(st *store.Store, reviewer intelligence.Reviewer) RealityService {
	return &realityService{
		store:    st,
		reviewer: reviewer,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *realityService) Submit(ctx context.Context, req contract.RealityCheckRequest) (*domain.DeviationReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	check := req.Check(s.now())
	plan := doc.Plan(check.WeekID)
	if plan == nil {
		return nil, &contract.NotFoundError{Message: fmt.Sprintf("No active plan found for week %s", check.WeekID)}
	}

	report, err := s.reviewer.Review(ctx, *plan, check)
	if err != nil {
		return nil, err
	}

	doc.RealityChecks[check.WeekID] = check
	doc.DeviationReports[check.WeekID] = *report

	entry := doc.HistoryEntry(check.WeekID)
	if entry == nil {
		entry = &domain.HistoryEntry{
			WeekID:      check.WeekID,
			Plan:        *plan,
			Adjustments: []domain.AdjustmentRecord{},
		}
	}
	rate := report.CompletionRate
	entry.RealityCheck = &check
	entry.DeviationReport = report
	entry.FinalCompletionRate = &rate
	doc.UpsertHistory(*entry)

	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	logger.Info("reality check processed",
		"week_id", check.WeekID,
		"completion_rate", fmt.Sprintf("%.2f", report.CompletionRate),
		"deviation_detected", report.DeviationDetected)
	return report, nil
}

func (s *realityService) Report(ctx context.Context, weekID string) (*domain.DeviationReport, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if report, ok := doc.DeviationReports[weekID]; ok {
		return &report, nil
	}
	return nil, &contract.NotFoundError{Message: fmt.Sprintf("No deviation report found for week %s", weekID)}
}

func (s *realityService) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return doc.RecentHistory(limit), nil
}

func (s *realityService) HistoryEntry(ctx context.Context, weekID string) (*domain.HistoryEntry, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	entry := doc.HistoryEntry(weekID)
	if entry == nil {
		return nil, &contract.NotFoundError{Message: fmt.Sprintf("No history found for week %s", weekID)}
	}
	return entry, nil
}
