package billing

import (
	"math"

	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

// Totals holds the derived financial figures for a document.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	TaxRate    float64 `json:"tax_rate"`
	TaxAmount  float64 `json:"tax_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// RateFor resolves the tax rate for a jurisdiction from the given
// settings snapshot. CASH carries no tax.
func RateFor(taxType enum.TaxType, settings *entity.AppSettings) float64 {
	switch taxType {
	case enum.TaxTypeGST:
		return settings.GSTRate
	case enum.TaxTypeSRB:
		return settings.SRBRate
	default:
		return 0
	}
}

// CalculateTotals derives subtotal, tax and grand total for a line-item
// sequence under the given jurisdiction and settings snapshot. Each
// item's contribution is recomputed as quantity * unit price; stored
// subtotals are never trusted, so drift cannot propagate. No rounding is
// applied; rounding happens only at display time.
func CalculateTotals(items []entity.LineItem, taxType enum.TaxType, settings *entity.AppSettings) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Quantity * item.UnitPrice
	}

	rate := RateFor(taxType, settings)
	taxAmount := subtotal * rate

	return Totals{
		Subtotal:   subtotal,
		TaxRate:    rate,
		TaxAmount:  taxAmount,
		GrandTotal: subtotal + taxAmount,
	}
}

// DisplayRatePercent renders a fractional tax rate as a whole percentage
// for documents, rounding to the nearest percent.
func DisplayRatePercent(rate float64) int {
	return int(math.Round(rate * 100))
}
