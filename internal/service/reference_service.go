package service

import (
	"context"
	"fmt"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/repo/postgres"
)

// ReferenceService serves the read-only shop contact card and weekly
// schedule shown on every page.
type ReferenceService interface {
	ReferenceData(ctx context.Context) (*domain.ContactInfo, []domain.BusinessHour, error)
}

type referenceService struct {
	repo postgres.ReferenceRepository
}

func NewReferenceService(repo postgres.ReferenceRepository) ReferenceService {
	return &referenceService{repo: repo}
}

func (s *referenceService) ReferenceData(ctx context.Context) (*domain.ContactInfo, []domain.BusinessHour, error) {
	info, err := s.repo.GetContactInfo(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("contact info: %w", err)
	}

	hours, err := s.repo.ListBusinessHours(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("business hours: %w", err)
	}
	if len(hours) == 0 {
		hours = domain.DefaultBusinessHours()
	}

	return info, hours, nil
}
