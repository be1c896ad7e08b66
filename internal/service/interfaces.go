package service

import (
	"context"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

type ProfileService interface {
	// Save creates or replaces the singleton profile. Each save bumps
	// the objective version; CreatedAt survives updates.
	Save(ctx context.Context, req contract.ProfileCreateRequest) (*domain.Profile, error)
	Get(ctx context.Context) (*domain.Profile, error)
}

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanGenerateRequest) (*domain.WeeklyPlan, error)
	List(ctx context.Context) ([]domain.WeeklyPlan, error)
	Latest(ctx context.Context) (*domain.WeeklyPlan, error)
	Get(ctx context.Context, weekID string) (*domain.WeeklyPlan, error)
	Adjust(ctx context.Context, req contract.AdjustmentRequest) (*domain.WeeklyPlan, error)
}

type RealityService interface {
	// Submit stores the check, runs the deviation review against the
	// week's plan, and folds the outcome into the history entry.
	Submit(ctx context.Context, req contract.RealityCheckRequest) (*domain.DeviationReport, error)
	Report(ctx context.Context, weekID string) (*domain.DeviationReport, error)
	History(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	HistoryEntry(ctx context.Context, weekID string) (*domain.HistoryEntry, error)
}

type StatusService interface {
	Status(ctx context.Context) (*contract.StatusResponse, error)
	Health(ctx context.Context) (*contract.HealthResponse, error)
}
