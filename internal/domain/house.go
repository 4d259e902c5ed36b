package domain

import "time"

// House ties a metering device to the home it is installed in. The JSON
// names are the ones the mobile app already sends and reads.
type House struct {
	ID        int64     `db:"id" json:"id"`
	DeviceID  string    `db:"device_id" json:"device_id"`
	Name      string    `db:"name" json:"nom"`
	Address   *string   `db:"address" json:"adresse"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type NewHouse struct {
	DeviceID string  `json:"deviceId"`
	Name     string  `json:"nom"`
	Address  *string `json:"adresse"`
}

func (h NewHouse) Validate() error {
	var missing []string
	if h.DeviceID == "" {
		missing = append(missing, "deviceId")
	}
	if h.Name == "" {
		missing = append(missing, "nom")
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: ErrInvalidHouse, Fields: missing}
	}
	return nil
}

// HouseOverview is a house with the newest reading of its device, nil when
// the device has not reported yet.
type HouseOverview struct {
	House         House    `json:"maison"`
	LatestReading *Reading `json:"latest_reading"`
}
