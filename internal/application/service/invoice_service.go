package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/internal/domain/billing"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/repository"
	"github.com/structurachem/scpl-api/internal/domain/workflow"
	"github.com/structurachem/scpl-api/pkg/apperror"
	"github.com/structurachem/scpl-api/pkg/pagination"
)

// invoiceDueDays is the payment window granted on every invoice.
const invoiceDueDays = 30

// InvoiceService derives invoices from completed quotations and manages
// their payment status. An invoice is a frozen snapshot: once written it
// never changes except for its status.
type InvoiceService struct {
	invoiceRepo   repository.InvoiceRepository
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	settings      *SettingsService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	settings *SettingsService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		settings:      settings,
	}
}

// GenerateFromQuotation derives the invoice for a completed quotation.
// Exactly once per quotation: a second call is a conflict. The invoice
// copies the quotation's frozen figures verbatim, and the invoice write,
// the quotation status change and its audit entry commit together.
func (s *InvoiceService) GenerateFromQuotation(ctx context.Context, actor Actor, quotationID uuid.UUID) (*entity.Invoice, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	existing, err := s.invoiceRepo.GetByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("an invoice was already generated for this quotation")
	}

	next, err := workflow.Next(quotation.Status, workflow.EventGenerateInvoice, actor.Role)
	if err != nil {
		return nil, err
	}

	if quotation.CustomerID == nil {
		return nil, apperror.NewBadRequestError("quotation has no customer")
	}
	customer, err := s.customerRepo.GetByID(ctx, *quotation.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	serials, err := s.invoiceRepo.ListSerialNumbers(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := &entity.Invoice{
		SerialNumber: billing.GenerateSerialNumber(
			billing.DocKindInvoice, customer.Name, quotation.TaxType,
			settings.CompanyShortName, serials, now),
		QuotationID: quotation.ID,
		CustomerID:  *quotation.CustomerID,
		BuyerNTN:    quotation.BuyerNTN,
		DueDate:     now.AddDate(0, 0, invoiceDueDays),
		TaxType:     quotation.TaxType,
		TaxRate:     quotation.TaxRate,
		TaxAmount:   quotation.TaxAmount,
		GrandTotal:  quotation.GrandTotal,
		Status:      enum.InvoiceStatusPending,
	}
	for _, item := range quotation.LineItems {
		invoice.LineItems = append(invoice.LineItems, entity.InvoiceItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UOM:       item.UOM,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	quotation.Status = next
	remark := fmt.Sprintf("Invoice %s generated.", invoice.SerialNumber)
	log := &entity.StatusLog{
		QuotationID: quotation.ID,
		Status:      next,
		UserName:    actor.Name,
		Remarks:     &remark,
	}

	if err := s.invoiceRepo.CreateWithQuotation(ctx, invoice, quotation, log); err != nil {
		return nil, err
	}
	return invoice, nil
}

// GetInvoice retrieves an invoice with its customer and line items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering and pagination
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateStatus moves an invoice between Pending, Paid and Overdue.
// Overdue is an operator judgment, never promoted automatically, so a
// disputed invoice can sit past its due date without being flagged.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	invoice.Status = status
	return invoice, nil
}
