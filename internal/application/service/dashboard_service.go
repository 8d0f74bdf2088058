package service

import (
	"context"

	"github.com/structurachem/scpl-api/internal/domain/repository"
)

// DashboardService aggregates the headline figures for the console
// landing page.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// DashboardStats is the full dashboard payload
type DashboardStats struct {
	Counts      *repository.EntityCounts      `json:"counts"`
	Pipeline    []repository.PipelineBucket   `json:"pipeline"`
	Receivables []repository.ReceivableBucket `json:"receivables"`
}

// GetStats computes the dashboard aggregates
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.analyticsRepo.CountEntities(ctx)
	if err != nil {
		return nil, err
	}
	pipeline, err := s.analyticsRepo.QuotationPipeline(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := s.analyticsRepo.Receivables(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Counts:      counts,
		Pipeline:    pipeline,
		Receivables: receivables,
	}, nil
}
