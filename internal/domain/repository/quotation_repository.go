package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	// ListSerialNumbers returns every assigned quotation serial, used to
	// derive the next sequence number.
	ListSerialNumbers(ctx context.Context) ([]string, error)
	ReplaceLineItems(ctx context.Context, quotationID uuid.UUID, items []entity.LineItem) error
	AppendLog(ctx context.Context, log *entity.StatusLog) error
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.WorkflowStatus
	Type       *enum.QuotationType
	CustomerID *uuid.UUID
}
