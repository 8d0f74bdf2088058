package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/internal/domain/workflow"
	"github.com/structurachem/scpl-api/pkg/apperror"
)

func TestCreateDraftComputesLiveTotals(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	draft, err := env.quotations.CreateDraft(ctx, salesActor, &QuotationInput{
		Type:       enum.QuotationTypeServices,
		CustomerID: &customer.ID,
		BuyerNTN:   "9876543-2",
		Subject:    "Warehouse floor coating",
		TaxType:    enum.TaxTypeGST,
		LineItems: []LineItemInput{
			{Name: "Epoxy application", UOM: "Sqft", Quantity: 10, UnitPrice: 100},
			{Name: "Surface preparation", UOM: "Sqft", Quantity: 5, UnitPrice: 50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, enum.WorkflowStatusDraft, draft.Status)
	assert.Empty(t, draft.SerialNumber)
	assert.Equal(t, 0.18, draft.TaxRate)
	assert.InDelta(t, 225.0, draft.TaxAmount, 1e-9)
	assert.InDelta(t, 1475.0, draft.GrandTotal, 1e-9)
}

func TestDraftTotalsFollowSettingsChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
		Type:       enum.QuotationTypeServices,
		CustomerID: &customer.ID,
		Subject:    "Warehouse floor coating",
		TaxType:    enum.TaxTypeGST,
		LineItems:  []LineItemInput{{Name: "Epoxy application", Quantity: 10, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1180.0, draft.GrandTotal, 1e-9)

	settings, err := env.settings.GetSettings(ctx)
	require.NoError(t, err)
	_, err = env.settings.UpdateSettings(ctx, adminActor, &UpdateSettingsInput{
		CompanyName:      settings.CompanyName,
		CompanyShortName: settings.CompanyShortName,
		CompanyNTN:       settings.CompanyNTN,
		GSTRate:          0.20,
		SRBRate:          settings.SRBRate,
		Categories:       settings.Categories,
	})
	require.NoError(t, err)

	reread, err := env.quotations.GetQuotation(ctx, draft.ID)
	require.NoError(t, err)
	assert.InDelta(t, 1200.0, reread.GrandTotal, 1e-9)
}

func TestSalesLinePriceLockedToCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	product := env.seedProduct(t, "StructuraFlow 200", 450)

	draft, err := env.quotations.CreateDraft(ctx, salesActor, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		Subject:    "Admixture supply",
		TaxType:    enum.TaxTypeGST,
		LineItems:  []LineItemInput{{ProductID: &product.ID, Quantity: 10, UnitPrice: 1}},
	})
	require.NoError(t, err)

	require.Len(t, draft.LineItems, 1)
	assert.Equal(t, 450.0, draft.LineItems[0].UnitPrice)
	assert.Equal(t, 4500.0, draft.LineItems[0].Subtotal)
	assert.Equal(t, "StructuraFlow 200", draft.LineItems[0].Name)
	assert.Equal(t, "Litres", draft.LineItems[0].UOM)
}

func TestAdminMayOverrideSalesLinePrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	product := env.seedProduct(t, "StructuraFlow 200", 450)

	draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		Subject:    "Admixture supply",
		TaxType:    enum.TaxTypeGST,
		LineItems:  []LineItemInput{{ProductID: &product.ID, Quantity: 10, UnitPrice: 400}},
	})
	require.NoError(t, err)

	require.Len(t, draft.LineItems, 1)
	assert.Equal(t, 400.0, draft.LineItems[0].UnitPrice)
}

func TestServicesLinePriceAlwaysEditable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	draft, err := env.quotations.CreateDraft(ctx, salesActor, &QuotationInput{
		Type:       enum.QuotationTypeServices,
		CustomerID: &customer.ID,
		Subject:    "Floor repairs",
		TaxType:    enum.TaxTypeCash,
		LineItems:  []LineItemInput{{Name: "Crack injection", Quantity: 3, UnitPrice: 777}},
	})
	require.NoError(t, err)

	require.Len(t, draft.LineItems, 1)
	assert.Equal(t, 777.0, draft.LineItems[0].UnitPrice)
}

func TestCashClearsBuyerNTN(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		BuyerNTN:   "9876543-2",
		Subject:    "Cash sale",
		TaxType:    enum.TaxTypeCash,
		LineItems:  []LineItemInput{{Name: "StructuraCure 50", Quantity: 1, UnitPrice: 500}},
	})
	require.NoError(t, err)

	assert.Empty(t, draft.BuyerNTN)
	assert.Zero(t, draft.TaxAmount)
}

func TestSubmitFreezesTotalsAndAssignsSerial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	assert.Equal(t, enum.WorkflowStatusSubmitted, submitted.Status)
	assert.True(t, strings.HasPrefix(submitted.SerialNumber, "Qt-ACME/SCPL-GST-"), "serial %q", submitted.SerialNumber)
	assert.True(t, strings.HasSuffix(submitted.SerialNumber, "-001"), "serial %q", submitted.SerialNumber)
	assert.InDelta(t, 1475.0, submitted.GrandTotal, 1e-9)

	// A later rate change must not move the archived figures.
	settings, err := env.settings.GetSettings(ctx)
	require.NoError(t, err)
	_, err = env.settings.UpdateSettings(ctx, adminActor, &UpdateSettingsInput{
		CompanyName:      settings.CompanyName,
		CompanyShortName: settings.CompanyShortName,
		CompanyNTN:       settings.CompanyNTN,
		GSTRate:          0.25,
		SRBRate:          settings.SRBRate,
		Categories:       settings.Categories,
	})
	require.NoError(t, err)

	reread, err := env.quotations.GetQuotation(ctx, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.18, reread.TaxRate)
	assert.InDelta(t, 1475.0, reread.GrandTotal, 1e-9)
}

func TestSubmitAppendsAuditLog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	full, err := env.quotations.GetQuotation(ctx, submitted.ID)
	require.NoError(t, err)
	require.Len(t, full.Logs, 1)
	assert.Equal(t, enum.WorkflowStatusSubmitted, full.Logs[0].Status)
	assert.Equal(t, adminActor.Name, full.Logs[0].UserName)
}

func TestSubmitValidations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")

	t.Run("requires customer", func(t *testing.T) {
		draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
			Type:      enum.QuotationTypeSales,
			Subject:   "No customer",
			TaxType:   enum.TaxTypeCash,
			LineItems: []LineItemInput{{Name: "Item", Quantity: 1, UnitPrice: 1}},
		})
		require.NoError(t, err)

		_, err = env.quotations.Submit(ctx, adminActor, draft.ID)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("requires subject", func(t *testing.T) {
		draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
			Type:       enum.QuotationTypeSales,
			CustomerID: &customer.ID,
			TaxType:    enum.TaxTypeCash,
			LineItems:  []LineItemInput{{Name: "Item", Quantity: 1, UnitPrice: 1}},
		})
		require.NoError(t, err)

		_, err = env.quotations.Submit(ctx, adminActor, draft.ID)
		require.Error(t, err)
	})

	t.Run("requires line items", func(t *testing.T) {
		draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
			Type:       enum.QuotationTypeSales,
			CustomerID: &customer.ID,
			Subject:    "Empty",
			TaxType:    enum.TaxTypeCash,
		})
		require.NoError(t, err)

		_, err = env.quotations.Submit(ctx, adminActor, draft.ID)
		require.Error(t, err)
	})

	t.Run("requires buyer NTN for taxed documents", func(t *testing.T) {
		draft, err := env.quotations.CreateDraft(ctx, adminActor, &QuotationInput{
			Type:       enum.QuotationTypeSales,
			CustomerID: &customer.ID,
			Subject:    "Missing NTN",
			TaxType:    enum.TaxTypeGST,
			LineItems:  []LineItemInput{{Name: "Item", Quantity: 1, UnitPrice: 1}},
		})
		require.NoError(t, err)

		_, err = env.quotations.Submit(ctx, adminActor, draft.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NTN")
	})
}

func TestLockedQuotationRejectsNonAdminEdits(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	_, err := env.quotations.UpdateDraft(ctx, salesActor, submitted.ID, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		Subject:    "Attempted edit",
		TaxType:    enum.TaxTypeGST,
		BuyerNTN:   "9876543-2",
		LineItems:  []LineItemInput{{Name: "Item", Quantity: 1, UnitPrice: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	_, err = env.quotations.Submit(ctx, salesActor, submitted.ID)
	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestUnlockThenEditThenResubmitKeepsSerial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	serial := submitted.SerialNumber

	_, err := env.quotations.Unlock(ctx, salesActor, submitted.ID)
	require.Error(t, err, "unlock must be admin only")

	unlocked, err := env.quotations.Unlock(ctx, adminActor, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusDraft, unlocked.Status)
	assert.Equal(t, serial, unlocked.SerialNumber)

	updated, err := env.quotations.UpdateDraft(ctx, salesActor, submitted.ID, &QuotationInput{
		Type:       enum.QuotationTypeSales,
		CustomerID: &customer.ID,
		BuyerNTN:   "9876543-2",
		Subject:    "Revised scope",
		TaxType:    enum.TaxTypeGST,
		LineItems:  []LineItemInput{{Name: "StructuraFlow 200", Quantity: 20, UnitPrice: 100}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Revised scope", updated.Subject)

	resubmitted, err := env.quotations.Submit(ctx, salesActor, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, serial, resubmitted.SerialNumber)
	assert.Equal(t, enum.WorkflowStatusSubmitted, resubmitted.Status)
	assert.InDelta(t, 2360.0, resubmitted.GrandTotal, 1e-9)
}

func TestSerialSequencePerJurisdiction(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedCustomer(t, "Acme Constructions")

	first := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	second := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)
	other := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeSRB)

	assert.True(t, strings.HasSuffix(first.SerialNumber, "-001"))
	assert.True(t, strings.HasSuffix(second.SerialNumber, "-002"))
	assert.True(t, strings.HasSuffix(other.SerialNumber, "-001"), "SRB numbering restarts, got %q", other.SerialNumber)
}

func TestApplyEventRoutesDedicatedOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	for _, event := range []workflow.Event{workflow.EventSubmit, workflow.EventUnlock, workflow.EventGenerateInvoice} {
		_, err := env.quotations.ApplyEvent(ctx, adminActor, submitted.ID, &ApplyEventInput{Event: event})
		require.Error(t, err, "event %s must use its own operation", event)
	}
}

func TestGrantPORecordsPONumber(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	_, err := env.quotations.ApplyEvent(ctx, adminActor, submitted.ID, &ApplyEventInput{Event: workflow.EventAccept})
	require.NoError(t, err)

	poNumber := "PO-2025-0042"
	granted, err := env.quotations.ApplyEvent(ctx, adminActor, submitted.ID, &ApplyEventInput{
		Event:    workflow.EventGrantPO,
		PONumber: &poNumber,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.WorkflowStatusPOGranted, granted.Status)
	require.NotNil(t, granted.PONumber)
	assert.Equal(t, poNumber, *granted.PONumber)
}

func TestRejectedQuotationIsTerminalWithoutUnlock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	customer := env.seedCustomer(t, "Acme Constructions")
	submitted := env.seedSubmittedQuotation(t, customer.ID, enum.TaxTypeGST)

	rejected, err := env.quotations.ApplyEvent(ctx, adminActor, submitted.ID, &ApplyEventInput{Event: workflow.EventReject})
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusRejected, rejected.Status)

	_, err = env.quotations.ApplyEvent(ctx, adminActor, submitted.ID, &ApplyEventInput{Event: workflow.EventAccept})
	require.Error(t, err)

	unlocked, err := env.quotations.Unlock(ctx, adminActor, submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.WorkflowStatusDraft, unlocked.Status)
}
