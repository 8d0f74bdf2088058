package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

func TestGenerateInvoiceRequiresCompletedJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	_, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestGenerateInvoiceSnapshot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	env.advanceToJobCompleted(t, submitted.ID)

	before := time.Now()
	invoice, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(invoice.SerialNumber, "Inv-ACME/SCPL-GST-"), "serial %q", invoice.SerialNumber)
	assert.Equal(t, submitted.ID, invoice.QuotationID)
	assert.Equal(t, customer.ID, invoice.CustomerID)
	assert.Equal(t, "9876543-2", invoice.BuyerNTN)
	assert.Equal(t, enum.InvoiceStatusPending, invoice.Status)
	assert.Equal(t, 0.18, invoice.TaxRate)
	assert.InDelta(t, 225.0, invoice.TaxAmount, 1e-9)
	assert.InDelta(t, 1475.0, invoice.GrandTotal, 1e-9)

	dueIn := invoice.DueDate.Sub(before)
	assert.InDelta(t, 30*24*time.Hour, dueIn, float64(time.Minute))

	full, err := env.invoices.GetInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, full.LineItems, 2)
	assert.Equal(t, 1000.0, full.LineItems[0].Subtotal)
	assert.Equal(t, 250.0, full.LineItems[1].Subtotal)

	// The source quotation is advanced and audited in the same write.
	quotation, err := env.quotations.GetQuotation(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusInvoiceGenerated, quotation.Status)
	last := quotation.Logs[len(quotation.Logs)-1]
	assert.Equal(t, enum.WorkflowStatusInvoiceGenerated, last.Status)
	require.NotNil(t, last.Remarks)
	assert.Contains(t, *last.Remarks, invoice.SerialNumber)
}

func TestGenerateInvoiceExactlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	env.advanceToJobCompleted(t, submitted.ID)

	_, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.NoError(t, err)

	_, err = env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestInvoiceSurvivesSourceUnlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	env.advanceToJobCompleted(t, submitted.ID)

	invoice, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.NoError(t, err)

	// Unlock the source and gut its line items; the invoice keeps its
	// snapshot.
	_, err = env.quotations.Unlock(ctx, adminActor, submitted.ID)
	require.NoError(t, err)
	_, err = env.quotations.UpdateDraft(ctx, adminActor, submitted.ID, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		BuyerNTN:   "9876543-2",
		Subject:    "Rewritten after invoicing",
		TaxType:    enum.TaxTypeGST,
		LineItems:  []LineItemInput{{Name: "Single item", Quantity: 1, UnitPrice: 5}},
	})
	require.NoError(t, err)

	frozen, err := env.invoices.GetInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1475.0, frozen.GrandTotal, 1e-9)
	assert.Len(t, frozen.LineItems, 2)
}

func TestGenerateInvoiceCashDocument(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeCash)
	env.advanceToJobCompleted(t, submitted.ID)

	invoice, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.NoError(t, err)

	assert.Empty(t, invoice.BuyerNTN)
	assert.Zero(t, invoice.TaxAmount)
	assert.InDelta(t, 1250.0, invoice.GrandTotal, 1e-9)
	assert.Contains(t, invoice.SerialNumber, "-CASH-")
}

func TestInvoiceStatusTransitionsAreManual(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	env.advanceToJobCompleted(t, submitted.ID)

	invoice, err := env.invoices.GenerateFromQuotation(ctx, adminActor, submitted.ID)
	require.NoError(t, err)

	paid, err := env.invoices.UpdateStatus(ctx, invoice.ID, enum.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, paid.Status)

	overdue, err := env.invoices.UpdateStatus(ctx, invoice.ID, enum.InvoiceStatusOverdue)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusOverdue, overdue.Status)
}
