package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/structurachem/scpl-api/internal/domain/enum"
)

var serialNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func TestGenerateSerialNumberFormat(t *testing.T) {
	serial := GenerateSerialNumber(DocKindQuotation, "Acme Constructions", enum.TaxTypeGST, "SCPL", nil, serialNow)

	assert.Equal(t, "Qt-ACME/SCPL-GST-25-001", serial)
}

func TestGenerateSerialNumberInvoiceKind(t *testing.T) {
	serial := GenerateSerialNumber(DocKindInvoice, "Acme Constructions", enum.TaxTypeSRB, "SCPL", nil, serialNow)

	assert.Equal(t, "Inv-ACME/SCPL-SRB-25-001", serial)
}

func TestGenerateSerialNumberShortCustomerName(t *testing.T) {
	serial := GenerateSerialNumber(DocKindQuotation, "Al", enum.TaxTypeCash, "SCPL", nil, serialNow)

	assert.Equal(t, "Qt-AL/SCPL-CASH-25-001", serial)
}

func TestGenerateSerialNumberSequencesWithinScope(t *testing.T) {
	existing := []string{
		"Qt-ACME/SCPL-GST-25-001",
		"Qt-BETA/SCPL-GST-25-002",
	}

	serial := GenerateSerialNumber(DocKindQuotation, "Gamma Works", enum.TaxTypeGST, "SCPL", existing, serialNow)

	assert.Equal(t, "Qt-GAMM/SCPL-GST-25-003", serial)
}

func TestGenerateSerialNumberScopeRestartsPerJurisdiction(t *testing.T) {
	existing := []string{
		"Qt-ACME/SCPL-GST-25-001",
		"Qt-ACME/SCPL-GST-25-002",
	}

	serial := GenerateSerialNumber(DocKindQuotation, "Acme Constructions", enum.TaxTypeSRB, "SCPL", existing, serialNow)

	assert.Equal(t, "Qt-ACME/SCPL-SRB-25-001", serial)
}

func TestGenerateSerialNumberScopeRestartsPerYear(t *testing.T) {
	existing := []string{
		"Qt-ACME/SCPL-GST-24-001",
		"Qt-ACME/SCPL-GST-24-002",
	}

	serial := GenerateSerialNumber(DocKindQuotation, "Acme Constructions", enum.TaxTypeGST, "SCPL", existing, serialNow)

	assert.Equal(t, "Qt-ACME/SCPL-GST-25-001", serial)
}

func TestGenerateSerialNumberUppercasesCustomer(t *testing.T) {
	serial := GenerateSerialNumber(DocKindQuotation, "acme constructions", enum.TaxTypeGST, "SCPL", nil, serialNow)

	assert.Equal(t, "Qt-ACME/SCPL-GST-25-001", serial)
}
