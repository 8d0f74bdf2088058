package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// QuotationType distinguishes product-sale quotations from service quotations
type QuotationType int

const (
	QuotationTypeSales    QuotationType = 0
	QuotationTypeServices QuotationType = 1
)

func (t QuotationType) String() string {
	names := [...]string{"Sales", "Services"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Sales"
	}
	return names[t]
}

func (t QuotationType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *QuotationType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = QuotationType(i)
		return nil
	}
	switch str {
	case "Sales":
		*t = QuotationTypeSales
	case "Services":
		*t = QuotationTypeServices
	}
	return nil
}

func (t QuotationType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *QuotationType) Scan(value interface{}) error {
	if value == nil {
		*t = QuotationTypeSales
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = QuotationType(v)
	case int:
		*t = QuotationType(v)
	}
	return nil
}
