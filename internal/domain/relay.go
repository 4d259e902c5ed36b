package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// RelayStatus is a relay on/off flag. Firmware sends either a JSON boolean or
// 0/1, both are accepted; it is always written back as a boolean.
type RelayStatus bool

func (r *RelayStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch string(data) {
	case "true", "1":
		*r = true
		return nil
	case "false", "0":
		*r = false
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil && (f == 0 || f == 1) {
		*r = f == 1
		return nil
	}

	return fmt.Errorf("relay status must be a boolean or 0/1, got %s", data)
}

func (r RelayStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(r))
}

func (r *RelayStatus) Scan(src any) error {
	switch v := src.(type) {
	case bool:
		*r = RelayStatus(v)
	case int64:
		*r = v != 0
	case []byte:
		return r.scanString(string(v))
	case string:
		return r.scanString(v)
	case nil:
		*r = false
	default:
		return fmt.Errorf("cannot scan %T into RelayStatus", src)
	}
	return nil
}

func (r *RelayStatus) scanString(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into RelayStatus: %w", s, err)
	}
	*r = RelayStatus(b)
	return nil
}

func (r RelayStatus) Value() (driver.Value, error) {
	return bool(r), nil
}
