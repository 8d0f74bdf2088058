package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the payment status of an invoice.
// Overdue is promoted manually by an operator; there is no automatic
// deadline scan.
type InvoiceStatus int

const (
	InvoiceStatusPending InvoiceStatus = 0
	InvoiceStatusPaid    InvoiceStatus = 1
	InvoiceStatusOverdue InvoiceStatus = 2
)

func (s InvoiceStatus) String() string {
	names := [...]string{"Pending", "Paid", "Overdue"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = InvoiceStatusPending
	case "Paid":
		*s = InvoiceStatusPaid
	case "Overdue":
		*s = InvoiceStatusOverdue
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}
