package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxType represents the tax jurisdiction applied to a document
type TaxType int

const (
	TaxTypeGST  TaxType = 0
	TaxTypeSRB  TaxType = 1
	TaxTypeCash TaxType = 2
)

func (t TaxType) String() string {
	names := [...]string{"GST", "SRB", "CASH"}
	if int(t) < 0 || int(t) >= len(names) {
		return "GST"
	}
	return names[t]
}

// IsTaxed reports whether documents under this jurisdiction carry tax.
// CASH documents are untaxed.
func (t TaxType) IsTaxed() bool {
	return t == TaxTypeGST || t == TaxTypeSRB
}

func (t TaxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxType(i)
		return nil
	}
	switch str {
	case "GST":
		*t = TaxTypeGST
	case "SRB":
		*t = TaxTypeSRB
	case "CASH":
		*t = TaxTypeCash
	}
	return nil
}

func (t TaxType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypeGST
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxType(v)
	case int:
		*t = TaxType(v)
	}
	return nil
}
