package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType classifies a customer account
type CustomerType int

const (
	CustomerTypeCommercial    CustomerType = 0
	CustomerTypeResidential   CustomerType = 1
	CustomerTypeCorporate     CustomerType = 2
	CustomerTypeMegaCorporate CustomerType = 3
)

var customerTypeNames = [...]string{"Commercial", "Residential", "Corporate", "Mega Corporate"}

func (t CustomerType) String() string {
	if int(t) < 0 || int(t) >= len(customerTypeNames) {
		return "Commercial"
	}
	return customerTypeNames[t]
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CustomerType(i)
		return nil
	}
	for i, name := range customerTypeNames {
		if name == str {
			*t = CustomerType(i)
			return nil
		}
	}
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeCommercial
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CustomerType(v)
	case int:
		*t = CustomerType(v)
	}
	return nil
}
