package domain

import (
	"strings"
	"time"
)

// Reading is one telemetry record stored in device_data.
type Reading struct {
	ID           int64       `db:"id" json:"id"`
	DeviceID     string      `db:"device_id" json:"device_id"`
	Voltage      float64     `db:"voltage" json:"voltage"`
	Current1     float64     `db:"current1" json:"current1"`
	Current2     float64     `db:"current2" json:"current2"`
	Energy1      float64     `db:"energy1" json:"energy1"`
	Energy2      float64     `db:"energy2" json:"energy2"`
	Relay1Status RelayStatus `db:"relay1_status" json:"relay1_status"`
	Relay2Status RelayStatus `db:"relay2_status" json:"relay2_status"`
	Timestamp    time.Time   `db:"timestamp" json:"timestamp"`
}

// NewReading is the body accepted on insert. Pointers tell an absent field
// apart from a zero value.
type NewReading struct {
	DeviceID     *string      `json:"device_id"`
	Voltage      *float64     `json:"voltage"`
	Current1     *float64     `json:"current1"`
	Current2     *float64     `json:"current2"`
	Energy1      *float64     `json:"energy1"`
	Energy2      *float64     `json:"energy2"`
	Relay1Status *RelayStatus `json:"relay1_status"`
	Relay2Status *RelayStatus `json:"relay2_status"`
}

// Validate only checks presence; values are stored as sent.
func (n NewReading) Validate() error {
	var missing []string
	if n.DeviceID == nil || *n.DeviceID == "" {
		missing = append(missing, "device_id")
	}
	if n.Voltage == nil {
		missing = append(missing, "voltage")
	}
	if n.Current1 == nil {
		missing = append(missing, "current1")
	}
	if n.Current2 == nil {
		missing = append(missing, "current2")
	}
	if n.Energy1 == nil {
		missing = append(missing, "energy1")
	}
	if n.Energy2 == nil {
		missing = append(missing, "energy2")
	}
	if n.Relay1Status == nil {
		missing = append(missing, "relay1_status")
	}
	if n.Relay2Status == nil {
		missing = append(missing, "relay2_status")
	}

	if len(missing) > 0 {
		return &ValidationError{Kind: ErrInvalidReading, Fields: missing}
	}
	return nil
}

// Reading converts a validated body into the row to insert. Call Validate first.
func (n NewReading) Reading() Reading {
	return Reading{
		DeviceID:     *n.DeviceID,
		Voltage:      *n.Voltage,
		Current1:     *n.Current1,
		Current2:     *n.Current2,
		Energy1:      *n.Energy1,
		Energy2:      *n.Energy2,
		Relay1Status: *n.Relay1Status,
		Relay2Status: *n.Relay2Status,
	}
}

// ValidationError lists the fields that made a request body unusable.
type ValidationError struct {
	Kind   error
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	if len(e.Fields) > 0 {
		msg += ": missing " + strings.Join(e.Fields, ", ")
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Kind }
