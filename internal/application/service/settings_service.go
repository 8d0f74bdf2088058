package service

import (
	"context"
	"strings"

	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

// SettingsService manages the single global configuration row
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the current settings, seeding the factory defaults
// if the row has never been written.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.AppSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings()
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input. The whole
// document is replaced in one write.
type UpdateSettingsInput struct {
	CompanyName      string
	CompanyShortName string
	CompanyNTN       string
	LogoURL          string
	GSTRate          float64
	SRBRate          float64
	Categories       []string
}

// UpdateSettings replaces the settings document. Admin only. Rate changes
// affect drafts on their next read; submitted documents keep the figures
// frozen at submission time.
func (s *SettingsService) UpdateSettings(ctx context.Context, actor Actor, input *UpdateSettingsInput) (*entity.AppSettings, error) {
	if !actor.IsAdmin() {
		return nil, apperror.NewForbiddenError("only an admin can change company settings")
	}

	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, apperror.NewBadRequestError("company name is required")
	}
	if input.GSTRate < 0 || input.GSTRate > 1 || input.SRBRate < 0 || input.SRBRate > 1 {
		return nil, apperror.NewBadRequestError("tax rates must be fractions between 0 and 1")
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.CompanyName = input.CompanyName
	settings.CompanyShortName = input.CompanyShortName
	settings.CompanyNTN = input.CompanyNTN
	settings.LogoURL = input.LogoURL
	settings.GSTRate = input.GSTRate
	settings.SRBRate = input.SRBRate
	settings.Categories = input.Categories

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
