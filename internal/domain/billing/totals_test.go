package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

func testSettings() *entity.AppSettings {
	return &entity.AppSettings{
		GSTRate: 0.18,
		SRBRate: 0.15,
	}
}

func TestCalculateTotalsGST(t *testing.T) {
	items := []entity.LineItem{
		{Quantity: 10, UnitPrice: 100},
		{Quantity: 5, UnitPrice: 50},
	}

	totals := CalculateTotals(items, enum.TaxTypeGST, testSettings())

	assert.Equal(t, 1250.0, totals.Subtotal)
	assert.Equal(t, 0.18, totals.TaxRate)
	assert.InDelta(t, 225.0, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 1475.0, totals.GrandTotal, 1e-9)
}

func TestCalculateTotalsSRB(t *testing.T) {
	items := []entity.LineItem{{Quantity: 2, UnitPrice: 1000}}

	totals := CalculateTotals(items, enum.TaxTypeSRB, testSettings())

	assert.Equal(t, 2000.0, totals.Subtotal)
	assert.Equal(t, 0.15, totals.TaxRate)
	assert.InDelta(t, 300.0, totals.TaxAmount, 1e-9)
	assert.InDelta(t, 2300.0, totals.GrandTotal, 1e-9)
}

func TestCalculateTotalsCashCarriesNoTax(t *testing.T) {
	items := []entity.LineItem{{Quantity: 3, UnitPrice: 400}}

	totals := CalculateTotals(items, enum.TaxTypeCash, testSettings())

	assert.Equal(t, 1200.0, totals.Subtotal)
	assert.Zero(t, totals.TaxRate)
	assert.Zero(t, totals.TaxAmount)
	assert.Equal(t, 1200.0, totals.GrandTotal)
}

func TestCalculateTotalsIgnoresStoredSubtotals(t *testing.T) {
	// A drifted stored subtotal must not leak into the totals.
	items := []entity.LineItem{{Quantity: 4, UnitPrice: 25, Subtotal: 9999}}

	totals := CalculateTotals(items, enum.TaxTypeCash, testSettings())

	assert.Equal(t, 100.0, totals.Subtotal)
}

func TestCalculateTotalsEmptyItems(t *testing.T) {
	totals := CalculateTotals(nil, enum.TaxTypeGST, testSettings())

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.TaxAmount)
	assert.Zero(t, totals.GrandTotal)
}

func TestDisplayRatePercent(t *testing.T) {
	assert.Equal(t, 18, DisplayRatePercent(0.18))
	assert.Equal(t, 15, DisplayRatePercent(0.15))
	assert.Equal(t, 0, DisplayRatePercent(0))
	assert.Equal(t, 17, DisplayRatePercent(0.165))
}

func TestRateFor(t *testing.T) {
	settings := testSettings()

	assert.Equal(t, 0.18, RateFor(enum.TaxTypeGST, settings))
	assert.Equal(t, 0.15, RateFor(enum.TaxTypeSRB, settings))
	assert.Zero(t, RateFor(enum.TaxTypeCash, settings))
}
