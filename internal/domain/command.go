package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type CommandStatus string

const (
	CommandPending  CommandStatus = "pending"
	CommandExecuted CommandStatus = "executed"
)

// CommandRechargeEnergy credits energy to a prepaid meter; it needs a numeric
// parameters.energy_amount.
const CommandRechargeEnergy = "recharge_energy"

// Command is an instruction queued for a device, stored in device_commands.
type Command struct {
	ID          int64         `db:"id" json:"id"`
	DeviceID    string        `db:"device_id" json:"device_id"`
	CommandType string        `db:"command_type" json:"command_type"`
	Parameters  Parameters    `db:"parameters" json:"parameters"`
	Status      CommandStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	ExecutedAt  *time.Time    `db:"executed_at" json:"executed_at,omitempty"`
}

type NewCommand struct {
	DeviceID    string     `json:"device_id"`
	CommandType string     `json:"command_type"`
	Parameters  Parameters `json:"parameters"`
}

func (c NewCommand) Validate() error {
	var missing []string
	if c.DeviceID == "" {
		missing = append(missing, "device_id")
	}
	if c.CommandType == "" {
		missing = append(missing, "command_type")
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: ErrInvalidCommand, Fields: missing}
	}

	if c.CommandType == CommandRechargeEnergy {
		if c.Parameters == nil {
			return &ValidationError{Kind: ErrInvalidCommand, Fields: []string{"parameters"}}
		}
		if _, ok := c.Parameters["energy_amount"].(float64); !ok {
			return &ValidationError{Kind: ErrInvalidCommand, Reason: "energy_amount must be a number"}
		}
	}

	return nil
}

// CommandConfirmation acknowledges that a device executed a queued command.
type CommandConfirmation struct {
	DeviceID  string `json:"device_id"`
	CommandID int64  `json:"command_id"`
}

func (c CommandConfirmation) Validate() error {
	var missing []string
	if c.DeviceID == "" {
		missing = append(missing, "device_id")
	}
	if c.CommandID <= 0 {
		missing = append(missing, "command_id")
	}
	if len(missing) > 0 {
		return &ValidationError{Kind: ErrInvalidCommand, Fields: missing}
	}
	return nil
}

// Parameters is a free-form JSON object stored as JSONB.
type Parameters map[string]any

func (p *Parameters) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*p = Parameters{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Parameters", src)
	}

	out := Parameters{}
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("decode command parameters: %w", err)
	}
	*p = out
	return nil
}

func (p Parameters) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode command parameters: %w", err)
	}
	return string(b), nil
}
