package repository

import (
	"context"

	"github.com/structurachem/scpl-api/internal/domain/entity"
	domainRepo "github.com/structurachem/scpl-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountEntities(ctx context.Context) (*domainRepo.EntityCounts, error) {
	var counts domainRepo.EntityCounts

	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&counts.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Quotation{}).Count(&counts.Quotations).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Count(&counts.Invoices).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

func (r *analyticsRepository) QuotationPipeline(ctx context.Context) ([]domainRepo.PipelineBucket, error) {
	var results []domainRepo.PipelineBucket

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as count,
			COALESCE(SUM(grand_total), 0) as grand_total
		FROM quotations
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) Receivables(ctx context.Context) ([]domainRepo.ReceivableBucket, error) {
	var results []domainRepo.ReceivableBucket

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) as count,
			COALESCE(SUM(grand_total), 0) as grand_total
		FROM invoices
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
