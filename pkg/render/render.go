// Package render produces the plain-text printable form of quotations
// and invoices, laid out for an A4 letterhead.
package render

import (
	"fmt"
	"strings"

	"github.com/structurachem/scpl-api/internal/domain/billing"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

const lineWidth = 78

// Quotation renders a quotation document. Archived documents print their
// frozen figures; callers are expected to pass drafts with live totals
// already applied.
func Quotation(q *entity.Quotation, settings *entity.AppSettings) string {
	var b strings.Builder

	writeHeader(&b, settings)
	title := "QUOTATION"
	if q.Type == enum.QuotationTypeServices {
		title = "SERVICES QUOTATION"
	}
	writeTitle(&b, title)

	writeField(&b, "Ref", orDraft(q.SerialNumber))
	writeField(&b, "Date", q.UpdatedAt.Format("02 Jan 2006"))
	if q.Customer != nil {
		writeField(&b, "To", q.Customer.Name)
		if q.Customer.Address != nil && *q.Customer.Address != "" {
			writeField(&b, "Address", *q.Customer.Address)
		}
		writeField(&b, "Attn", q.Customer.ContactPerson)
	}
	if q.BuyerNTN != "" {
		writeField(&b, "Buyer NTN", q.BuyerNTN)
	}
	if q.PONumber != nil && *q.PONumber != "" {
		writeField(&b, "PO No", *q.PONumber)
	}
	writeField(&b, "Subject", q.Subject)
	b.WriteString("\n")

	writeQuotationItems(&b, q.LineItems)
	writeTotals(&b, q.TaxType, q.TaxRate, q.TaxAmount, q.GrandTotal, sumLineItems(q.LineItems))

	writeSection(&b, "Commercial Offer", q.CommercialOffer)
	writeOptionalSection(&b, "Scope of Work", q.ScopeOfWork)
	writeOptionalSection(&b, "Technical Data", q.TechnicalData)
	writeOptionalSection(&b, "Client Responsibilities", q.ClientResponsibilities)
	writeOptionalSection(&b, "Company Responsibilities", q.CompanyResponsibilities)
	writeSection(&b, "Terms and Conditions", q.Terms)

	writeSignatures(&b, q.TechnicalSignature, q.CommercialSignature)
	return b.String()
}

// Invoice renders an invoice document from its frozen snapshot.
func Invoice(inv *entity.Invoice, settings *entity.AppSettings) string {
	var b strings.Builder

	writeHeader(&b, settings)
	writeTitle(&b, "INVOICE")

	writeField(&b, "Invoice No", inv.SerialNumber)
	writeField(&b, "Date", inv.CreatedAt.Format("02 Jan 2006"))
	writeField(&b, "Due Date", inv.DueDate.Format("02 Jan 2006"))
	if inv.Customer != nil {
		writeField(&b, "Bill To", inv.Customer.Name)
		if inv.Customer.Address != nil && *inv.Customer.Address != "" {
			writeField(&b, "Address", *inv.Customer.Address)
		}
	}
	if inv.BuyerNTN != "" {
		writeField(&b, "Buyer NTN", inv.BuyerNTN)
	}
	writeField(&b, "Status", inv.Status.String())
	b.WriteString("\n")

	var subtotal float64
	b.WriteString(itemHeader())
	for i, item := range inv.LineItems {
		b.WriteString(itemRow(i+1, item.Name, item.UOM, item.Quantity, item.UnitPrice, item.Subtotal))
		subtotal += item.Subtotal
	}
	b.WriteString(rule())

	writeTotals(&b, inv.TaxType, inv.TaxRate, inv.TaxAmount, inv.GrandTotal, subtotal)
	return b.String()
}

func writeHeader(b *strings.Builder, settings *entity.AppSettings) {
	b.WriteString(center(settings.CompanyName) + "\n")
	if settings.CompanyNTN != "" {
		b.WriteString(center("NTN: "+settings.CompanyNTN) + "\n")
	}
	b.WriteString(rule())
}

func writeTitle(b *strings.Builder, title string) {
	b.WriteString(center(title) + "\n")
	b.WriteString(rule())
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-12s: %s\n", label, value)
}

func writeSection(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n%s\n", title, strings.Repeat("-", len(title)), body)
}

func writeOptionalSection(b *strings.Builder, title string, body *string) {
	if body == nil {
		return
	}
	writeSection(b, title, *body)
}

func writeQuotationItems(b *strings.Builder, items []entity.LineItem) {
	b.WriteString(itemHeader())
	for i, item := range items {
		b.WriteString(itemRow(i+1, item.Name, item.UOM, item.Quantity, item.UnitPrice, item.Subtotal))
	}
	b.WriteString(rule())
}

func writeTotals(b *strings.Builder, taxType enum.TaxType, taxRate, taxAmount, grandTotal, subtotal float64) {
	fmt.Fprintf(b, "%58s %18.2f\n", "Subtotal", subtotal)
	if taxType.IsTaxed() {
		label := fmt.Sprintf("%s @ %d%%", taxType, billing.DisplayRatePercent(taxRate))
		fmt.Fprintf(b, "%58s %18.2f\n", label, taxAmount)
	}
	fmt.Fprintf(b, "%58s %18.2f\n", "Grand Total", grandTotal)
}

func writeSignatures(b *strings.Builder, technical, commercial *entity.Signature) {
	if technical == nil && commercial == nil {
		return
	}
	b.WriteString("\n")
	if technical != nil {
		fmt.Fprintf(b, "Technical: %s, %s (%s)\n", technical.Name, technical.Designation, technical.Date)
	}
	if commercial != nil {
		fmt.Fprintf(b, "Commercial: %s, %s (%s)\n", commercial.Name, commercial.Designation, commercial.Date)
	}
}

func itemHeader() string {
	return fmt.Sprintf("%-4s %-30s %-8s %10s %10s %12s\n%s",
		"#", "Description", "Unit", "Qty", "Rate", "Amount", rule())
}

func itemRow(n int, name, uom string, qty, rate, amount float64) string {
	if len(name) > 30 {
		name = name[:27] + "..."
	}
	return fmt.Sprintf("%-4d %-30s %-8s %10.2f %10.2f %12.2f\n", n, name, uom, qty, rate, amount)
}

func sumLineItems(items []entity.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal
	}
	return total
}

func rule() string {
	return strings.Repeat("=", lineWidth) + "\n"
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func orDraft(serial string) string {
	if serial == "" {
		return "DRAFT"
	}
	return serial
}
