package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/llm"
	"github.com/alexanderramin/praxis/internal/store"
	"github.com/alexanderramin/praxis/internal/week"
)

type statusService struct {
	store  *store.Store
	llmCfg llm.LLMConfig
	now    func() time.Time
}

func NewStatusService(st *store.Store, llmCfg llm.LLMConfig) StatusService {
	return &statusService{
		store:  st,
		llmCfg: llmCfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *statusService) Status(ctx context.Context) (*contract.StatusResponse, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	currentWeekID := week.CurrentID(s.now())
	return &contract.StatusResponse{
		ProfileExists: doc.Profile != nil,
		CurrentWeekID: currentWeekID,
		ActivePlan:    doc.Plan(currentWeekID),
		Statistics: contract.Statistics{
			ProfileExists:       doc.Profile != nil,
			TotalPlans:          len(doc.Plans),
			TotalHistoryEntries: len(doc.History),
		},
	}, nil
}

func (s *statusService) Health(ctx context.Context) (*contract.HealthResponse, error) {
	return &contract.HealthResponse{
		Status:        "healthy",
		LLMProvider:   string(s.llmCfg.Provider),
		LLMConfigured: s.llmCfg.Configured(),
		DataDirectory: filepath.Dir(s.store.Path()),
	}, nil
}
