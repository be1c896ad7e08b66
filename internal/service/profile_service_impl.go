package service

import (
	"context"
	"time"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/store"
)

type profileService struct {
	store *store.Store
	now   func() time.Time
}

func NewProfileService(st *store.Store) ProfileService {
	return &profileService{store: st, now: func() time.Time { return time.Now().UTC() }}
}

func (s *profileService) Save(ctx context.Context, req contract.ProfileCreateRequest) (*domain.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	version := 1
	if doc.Profile != nil {
		version = doc.Profile.Objective.Version + 1
	}

	profile := req.Profile(version, s.now())
	if doc.Profile != nil {
		profile.CreatedAt = doc.Profile.CreatedAt
	}

	doc.Profile = &profile
	if err := s.store.Save(doc); err != nil {
		return nil, err
	}

	logger.Info("profile saved", "objective_id", profile.Objective.ID, "version", version)
	return &profile, nil
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc.Profile == nil {
		return nil, &contract.NotFoundError{Message: "Profile not found. Create a profile first."}
	}
	return doc.Profile, nil
}
