package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations.
// Invoices are created only by the deriver; there is no Delete and no
// general Update beyond the payment status.
type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByQuotationID(ctx context.Context, quotationID uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListSerialNumbers(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error
	// CreateWithQuotation persists a new invoice, the mutated source
	// quotation and its audit log entry as a single transactional unit:
	// all writes succeed or none do.
	CreateWithQuotation(ctx context.Context, invoice *entity.Invoice, quotation *entity.Quotation, log *entity.StatusLog) error
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
}
