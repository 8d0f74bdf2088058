package service

import (
	"context"
	"fmt"
	"strings"
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

// QuotationService carries the quotation lifecycle: draft editing, the
// finalize step that freezes financials and assigns a serial, and the
// workflow transitions that follow.
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	settings      *SettingsService
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	settings *SettingsService,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		settings:      settings,
	}
}

// LineItemInput represents one line item in a draft payload
type LineItemInput struct {
	ID        *uuid.UUID
	ProductID *uuid.UUID
	Name      string
	UOM       string
	Quantity  float64
	UnitPrice float64
}

// QuotationInput represents the editable quotation fields
type QuotationInput struct {
	Type                    enum.QuotationType
	CustomerID              *uuid.UUID
	BuyerNTN                string
	PONumber                *string
	Subject                 string
	CommercialOffer         string
	Terms                   string
	ScopeOfWork             *string
	TechnicalData           *string
	ClientResponsibilities  *string
	CompanyResponsibilities *string
	TaxType                 enum.TaxType
	TechnicalSignature      *entity.Signature
	CommercialSignature     *entity.Signature
	LineItems               []LineItemInput
}

// CreateDraft creates a new draft quotation. Drafts carry no serial and
// their totals are advisory until submission.
func (s *QuotationService) CreateDraft(ctx context.Context, actor Actor, input *QuotationInput) (*entity.Quotation, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	quotation := &entity.Quotation{
		Type:       input.Type,
		CustomerID: input.CustomerID,
		Status:     enum.WorkflowStatusDraft,
	}
	s.applyFields(quotation, input)

	items, err := s.buildLineItems(ctx, quotation, actor, input.LineItems, nil)
	if err != nil {
		return nil, err
	}
	quotation.LineItems = items

	if err := s.refreshDraftTotals(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

// UpdateDraft replaces the editable fields of a quotation. Locked
// quotations reject edits from everyone except an admin.
func (s *QuotationService) UpdateDraft(ctx context.Context, actor Actor, id uuid.UUID, input *QuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !quotation.IsEditableBy(actor.Role) {
		return nil, apperror.NewForbiddenError("quotation is archived; ask an admin to unlock it")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	existing := quotation.LineItems
	quotation.Type = input.Type
	quotation.CustomerID = input.CustomerID
	s.applyFields(quotation, input)

	items, err := s.buildLineItems(ctx, quotation, actor, input.LineItems, existing)
	if err != nil {
		return nil, err
	}
	quotation.LineItems = items

	if quotation.Status == enum.WorkflowStatusDraft {
		if err := s.refreshDraftTotals(ctx, quotation); err != nil {
			return nil, err
		}
	}

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	if err := s.quotationRepo.ReplaceLineItems(ctx, quotation.ID, items); err != nil {
		return nil, err
	}
	return s.GetQuotation(ctx, id)
}

// applyFields copies the scalar payload fields onto the quotation,
// enforcing that CASH documents never carry a buyer NTN.
func (s *QuotationService) applyFields(q *entity.Quotation, input *QuotationInput) {
	q.BuyerNTN = strings.TrimSpace(input.BuyerNTN)
	q.PONumber = input.PONumber
	q.Subject = input.Subject
	q.CommercialOffer = input.CommercialOffer
	q.Terms = input.Terms
	q.ScopeOfWork = input.ScopeOfWork
	q.TechnicalData = input.TechnicalData
	q.ClientResponsibilities = input.ClientResponsibilities
	q.CompanyResponsibilities = input.CompanyResponsibilities
	q.TaxType = input.TaxType
	q.TechnicalSignature = input.TechnicalSignature
	q.CommercialSignature = input.CommercialSignature

	if q.TaxType == enum.TaxTypeCash {
		q.BuyerNTN = ""
	}
}

// buildLineItems materializes the line-item payload. Catalog references
// resolve their name, unit and price from the product; when the actor may
// not edit prices the catalog price is authoritative and manual rows keep
// whatever price they already had.
func (s *QuotationService) buildLineItems(ctx context.Context, q *entity.Quotation, actor Actor, inputs []LineItemInput, existing []entity.LineItem) ([]entity.LineItem, error) {
	canEditPrice := q.CanEditLinePrice(actor.Role)

	priorPrice := make(map[uuid.UUID]float64, len(existing))
	for _, item := range existing {
		priorPrice[item.ID] = item.UnitPrice
	}

	items := make([]entity.LineItem, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 0 {
			return nil, apperror.NewBadRequestError("line item quantity cannot be negative")
		}

		item := entity.LineItem{
			ProductID: in.ProductID,
			Name:      in.Name,
			UOM:       in.UOM,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
		if in.ID != nil {
			item.ID = *in.ID
		}

		if in.ProductID != nil {
			product, err := s.productRepo.GetByID(ctx, *in.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, apperror.NewNotFoundError("Product")
			}
			if item.Name == "" {
				item.Name = product.Name
			}
			if item.UOM == "" {
				item.UOM = product.UOM
			}
			if !canEditPrice {
				item.UnitPrice = product.BasePrice
			}
		} else if !canEditPrice {
			if prior, ok := priorPrice[item.ID]; ok {
				item.UnitPrice = prior
			} else {
				item.UnitPrice = 0
			}
		}

		item.Recalculate()
		items = append(items, item)
	}
	return items, nil
}

// refreshDraftTotals recomputes the advisory financials of a draft from
// the current settings snapshot.
func (s *QuotationService) refreshDraftTotals(ctx context.Context, q *entity.Quotation) error {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	totals := billing.CalculateTotals(q.LineItems, q.TaxType, settings)
	q.TaxRate = totals.TaxRate
	q.TaxAmount = totals.TaxAmount
	q.GrandTotal = totals.GrandTotal
	return nil
}

// GetQuotation retrieves a quotation with customer, line items and audit
// trail. Draft financials are recomputed live so a settings change is
// reflected immediately; frozen documents return their stored figures.
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	if quotation.Status == enum.WorkflowStatusDraft {
		if err := s.refreshDraftTotals(ctx, quotation); err != nil {
			return nil, err
		}
		for i := range quotation.LineItems {
			quotation.LineItems[i].Recalculate()
		}
	}
	return quotation, nil
}

// ListQuotations lists quotations with filtering and pagination. Draft
// rows get live totals the same way a single read does.
func (s *QuotationService) ListQuotations(ctx context.Context, params *repository.QuotationFilterParams) (*pagination.PaginatedResult[entity.Quotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	for i := range quotations {
		if quotations[i].Status != enum.WorkflowStatusDraft {
			continue
		}
		totals := billing.CalculateTotals(quotations[i].LineItems, quotations[i].TaxType, settings)
		quotations[i].TaxRate = totals.TaxRate
		quotations[i].TaxAmount = totals.TaxAmount
		quotations[i].GrandTotal = totals.GrandTotal
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// Submit finalizes a quotation: validates it, freezes the financial
// figures at current rates, assigns a serial number on first submission
// and archives the document as Submitted. An admin may resubmit an
// already archived quotation after editing it; the serial is kept.
func (s *QuotationService) Submit(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if quotation.IsLocked() && !actor.IsAdmin() {
		return nil, apperror.NewForbiddenError("quotation is archived; ask an admin to unlock it")
	}

	if quotation.CustomerID == nil {
		return nil, apperror.NewBadRequestError("a customer must be selected before submission")
	}
	customer, err := s.customerRepo.GetByID(ctx, *quotation.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if strings.TrimSpace(quotation.Subject) == "" {
		return nil, apperror.NewBadRequestError("a subject is required before submission")
	}
	if len(quotation.LineItems) == 0 {
		return nil, apperror.NewBadRequestError("at least one line item is required before submission")
	}
	if quotation.TaxType.IsTaxed() && strings.TrimSpace(quotation.BuyerNTN) == "" {
		return nil, apperror.NewBadRequestError("buyer NTN is required for GST and SRB documents")
	}
	if quotation.TaxType == enum.TaxTypeCash {
		quotation.BuyerNTN = ""
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	// Freeze the financials at this instant. Later settings changes must
	// not move an archived document.
	totals := billing.CalculateTotals(quotation.LineItems, quotation.TaxType, settings)
	quotation.TaxRate = totals.TaxRate
	quotation.TaxAmount = totals.TaxAmount
	quotation.GrandTotal = totals.GrandTotal
	for i := range quotation.LineItems {
		quotation.LineItems[i].Recalculate()
	}

	if quotation.SerialNumber == "" {
		serials, err := s.quotationRepo.ListSerialNumbers(ctx)
		if err != nil {
			return nil, err
		}
		quotation.SerialNumber = billing.GenerateSerialNumber(
			billing.DocKindQuotation, customer.Name, quotation.TaxType,
			settings.CompanyShortName, serials, time.Now())
	}

	if quotation.Status == enum.WorkflowStatusDraft {
		next, err := workflow.Next(quotation.Status, workflow.EventSubmit, actor.Role)
		if err != nil {
			return nil, err
		}
		quotation.Status = next
	} else {
		quotation.Status = enum.WorkflowStatusSubmitted
	}

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	if err := s.quotationRepo.ReplaceLineItems(ctx, quotation.ID, quotation.LineItems); err != nil {
		return nil, err
	}

	remark := fmt.Sprintf("Quotation finalized as %s proposal. Archived and ready for official A4 print.", quotation.Type)
	if err := s.appendLog(ctx, quotation, actor, &remark); err != nil {
		return nil, err
	}
	return s.GetQuotation(ctx, id)
}

// Unlock reverts an archived quotation to Draft for editing. Admin only.
// The serial number and frozen figures stay until the next submission.
func (s *QuotationService) Unlock(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	next, err := workflow.Next(quotation.Status, workflow.EventUnlock, actor.Role)
	if err != nil {
		return nil, err
	}
	quotation.Status = next

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	remark := "Unlocked for editing by admin."
	if err := s.appendLog(ctx, quotation, actor, &remark); err != nil {
		return nil, err
	}
	return s.GetQuotation(ctx, id)
}

// ApplyEventInput represents a workflow transition request
type ApplyEventInput struct {
	Event    workflow.Event
	Remarks  *string
	PONumber *string
}

// ApplyEvent advances a quotation through the post-submission workflow
// (accept, reject, grant PO, start job, complete job). Submission,
// unlocking and invoice generation have dedicated operations because they
// carry side effects beyond a status change.
func (s *QuotationService) ApplyEvent(ctx context.Context, actor Actor, id uuid.UUID, input *ApplyEventInput) (*entity.Quotation, error) {
	switch input.Event {
	case workflow.EventSubmit, workflow.EventUnlock, workflow.EventGenerateInvoice:
		return nil, apperror.NewBadRequestError(fmt.Sprintf("event %q has its own endpoint", input.Event))
	}

	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	next, err := workflow.Next(quotation.Status, input.Event, actor.Role)
	if err != nil {
		return nil, err
	}
	quotation.Status = next

	if input.Event == workflow.EventGrantPO && input.PONumber != nil {
		quotation.PONumber = input.PONumber
	}

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}
	if err := s.appendLog(ctx, quotation, actor, input.Remarks); err != nil {
		return nil, err
	}
	return s.GetQuotation(ctx, id)
}

func (s *QuotationService) appendLog(ctx context.Context, q *entity.Quotation, actor Actor, remarks *string) error {
	return s.quotationRepo.AppendLog(ctx, &entity.StatusLog{
		QuotationID: q.ID,
		Status:      q.Status,
		UserName:    actor.Name,
		Remarks:     remarks,
	})
}
