package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Dimensions is an open key-value map of numeric product measurements
// (width, height, depth, ...) stored as a JSON column.
type Dimensions map[string]float64

func (d Dimensions) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (d *Dimensions) Scan(value interface{}) error {
	if value == nil {
		*d = Dimensions{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("dimensions: cannot scan type %T", value)
	}

	if len(data) == 0 {
		*d = Dimensions{}
		return nil
	}
	return json.Unmarshal(data, d)
}
