package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONStrings stores a list of strings as a JSON text column.
type JSONStrings []string

func (s JSONStrings) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *JSONStrings) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONStrings", value)
	}

	if len(data) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}
