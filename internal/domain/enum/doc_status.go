package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DocStatus represents the lifecycle state of a transactional document
type DocStatus int

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)

func (s DocStatus) String() string {
	switch s {
	case DocStatusDraft:
		return "Draft"
	case DocStatusSubmitted:
		return "Submitted"
	case DocStatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

func (s DocStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DocStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DocStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = DocStatusDraft
	case "Submitted":
		*s = DocStatusSubmitted
	case "Cancelled":
		*s = DocStatusCancelled
	}
	return nil
}

func (s DocStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DocStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DocStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DocStatus(v)
	case int32:
		*s = DocStatus(v)
	case int:
		*s = DocStatus(v)
	}
	return nil
}
