package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	domainRepo "github.com/structurachem/scpl-api/internal/domain/repository"
	"gorm.io/gorm"
)

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("LineItems").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("LineItems").
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	// Line items and logs are written through their own code paths.
	return r.db.WithContext(ctx).Omit("Customer", "LineItems", "Logs").Save(quotation).Error
}

func (r *quotationRepository) List(ctx context.Context, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{})

	if params.Search != "" {
		query = query.Where("serial_number LIKE ? OR subject LIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Preload("LineItems").
		Order("updated_at DESC").
		Find(&quotations).Error

	return quotations, total, err
}

func (r *quotationRepository) ListSerialNumbers(ctx context.Context) ([]string, error) {
	var serials []string
	err := r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Where("serial_number <> ''").
		Pluck("serial_number", &serials).Error
	return serials, err
}

func (r *quotationRepository) ReplaceLineItems(ctx context.Context, quotationID uuid.UUID, items []entity.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.LineItem{}, "quotation_id = ?", quotationID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].QuotationID = quotationID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quotationRepository) AppendLog(ctx context.Context, log *entity.StatusLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
