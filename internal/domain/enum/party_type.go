package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PartyType identifies the side of a transaction a party sits on.
// The value is stored verbatim in the party_type column of payment documents.
type PartyType string

const (
	PartyTypeCustomer PartyType = "Customer"
	PartyTypeSupplier PartyType = "Supplier"
)

func (t PartyType) String() string {
	return string(t)
}

func (t PartyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PartyType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PartyType(str)
	return nil
}

func (t PartyType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PartyType) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PartyType(v)
	case []byte:
		*t = PartyType(string(v))
	}
	return nil
}
