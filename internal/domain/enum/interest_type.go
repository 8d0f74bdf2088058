package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InterestType records which line of business a customer is interested in
type InterestType int

const (
	InterestTypeSales    InterestType = 0
	InterestTypeServices InterestType = 1
	InterestTypeNoLift   InterestType = 2
)

func (t InterestType) String() string {
	names := [...]string{"Sales", "Services", "NoLift"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Sales"
	}
	return names[t]
}

func (t InterestType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InterestType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InterestType(i)
		return nil
	}
	switch str {
	case "Sales":
		*t = InterestTypeSales
	case "Services":
		*t = InterestTypeServices
	case "NoLift":
		*t = InterestTypeNoLift
	}
	return nil
}

func (t InterestType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *InterestType) Scan(value interface{}) error {
	if value == nil {
		*t = InterestTypeSales
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = InterestType(v)
	case int:
		*t = InterestType(v)
	}
	return nil
}
