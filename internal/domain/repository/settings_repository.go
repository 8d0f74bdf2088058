package repository

import (
	"context"

	"github.com/structurachem/scpl-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the global settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AppSettings, error)
	Create(ctx context.Context, settings *entity.AppSettings) error
	Update(ctx context.Context, settings *entity.AppSettings) error
}
