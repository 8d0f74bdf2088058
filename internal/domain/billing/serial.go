package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/structurachem/scpl-api/internal/domain/enum"
)

// DocKind identifies the document family a serial number belongs to.
type DocKind string

const (
	DocKindQuotation DocKind = "Qt"
	DocKindInvoice   DocKind = "Inv"
)

// GenerateSerialNumber derives the human-readable reference code for a new
// document:
//
//	{kind}-{first 4 letters of customer, uppercased}/{company short name}-{tax}-{yy}-{seq}
//
// The sequence is the count of existing serials of the same kind that
// carry both the current two-digit year token and the jurisdiction token,
// plus one, so numbering restarts independently per (kind, year,
// jurisdiction). Callers pass the full existing serial set for the kind;
// concurrent submissions racing on the same snapshot are tolerated as
// last-write-wins under the single-user execution model.
func GenerateSerialNumber(kind DocKind, customerName string, taxType enum.TaxType, companyShort string, existing []string, now time.Time) string {
	clientShort := strings.ToUpper(customerName)
	if len(clientShort) > 4 {
		clientShort = clientShort[:4]
	}

	year := fmt.Sprintf("%02d", now.Year()%100)
	yearToken := "-" + year + "-"
	taxToken := "-" + taxType.String() + "-"

	seq := 1
	for _, serial := range existing {
		if strings.Contains(serial, yearToken) && strings.Contains(serial, taxToken) {
			seq++
		}
	}

	return fmt.Sprintf("%s-%s/%s-%s-%s-%03d", kind, clientShort, companyShort, taxType, year, seq)
}
