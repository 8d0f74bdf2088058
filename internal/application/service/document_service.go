package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/structurachem/scpl-api/pkg/apperror"
	"github.com/structurachem/scpl-api/pkg/render"
)

// DocumentSender delivers a rendered document to a recipient.
type DocumentSender interface {
	Enabled() bool
	SendDocument(toEmail, toName, subject, body string) error
}

// DocumentService renders printable documents and dispatches them to
// customers by email, honoring the customer's message consent.
type DocumentService struct {
	quotations *QuotationService
	invoices   *InvoiceService
	settings   *SettingsService
	sender     DocumentSender
}

// NewDocumentService creates a new document service
func NewDocumentService(
	quotations *QuotationService,
	invoices *InvoiceService,
	settings *SettingsService,
	sender DocumentSender,
) *DocumentService {
	return &DocumentService{
		quotations: quotations,
		invoices:   invoices,
		settings:   settings,
		sender:     sender,
	}
}

// RenderQuotation produces the printable form of a quotation. Drafts
// render with live totals and a DRAFT marker in place of the serial.
func (s *DocumentService) RenderQuotation(ctx context.Context, id uuid.UUID) (string, error) {
	quotation, err := s.quotations.GetQuotation(ctx, id)
	if err != nil {
		return "", err
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return render.Quotation(quotation, settings), nil
}

// RenderInvoice produces the printable form of an invoice.
func (s *DocumentService) RenderInvoice(ctx context.Context, id uuid.UUID) (string, error) {
	invoice, err := s.invoices.GetInvoice(ctx, id)
	if err != nil {
		return "", err
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return render.Invoice(invoice, settings), nil
}

// EmailQuotation dispatches a quotation to its customer. The customer
// must have a recorded email address and granted message consent.
func (s *DocumentService) EmailQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotations.GetQuotation(ctx, id)
	if err != nil {
		return err
	}
	if quotation.Customer == nil {
		return apperror.NewBadRequestError("quotation has no customer")
	}

	body, err := s.RenderQuotation(ctx, id)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Quotation %s", quotation.SerialNumber)
	if quotation.SerialNumber == "" {
		subject = "Quotation (draft)"
	}
	return s.dispatch(quotation.Customer.Email, quotation.Customer.Name, quotation.Customer.MessageConsent, subject, body)
}

// EmailInvoice dispatches an invoice to its customer under the same
// consent rules as quotations.
func (s *DocumentService) EmailInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoices.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if invoice.Customer == nil {
		return apperror.NewBadRequestError("invoice has no customer")
	}

	body, err := s.RenderInvoice(ctx, id)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Invoice %s", invoice.SerialNumber)
	return s.dispatch(invoice.Customer.Email, invoice.Customer.Name, invoice.Customer.MessageConsent, subject, body)
}

func (s *DocumentService) dispatch(email *string, name string, consent bool, subject, body string) error {
	if !consent {
		return apperror.NewForbiddenError("customer has not consented to receive messages")
	}
	if email == nil || *email == "" {
		return apperror.NewBadRequestError("customer has no email address on record")
	}
	if !s.sender.Enabled() {
		return apperror.NewBadRequestError("email dispatch is not configured")
	}
	return s.sender.SendDocument(*email, name, subject, body)
}
