package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "relay toggle", body: `{"device_id":"esp32-01","command_type":"relay_on","parameters":{"relay":1}}`},
		{name: "recharge", body: `{"device_id":"esp32-01","command_type":"recharge_energy","parameters":{"energy_amount":12.5}}`},
		{name: "no parameters needed", body: `{"device_id":"esp32-01","command_type":"reboot"}`},
		{name: "missing device", body: `{"command_type":"reboot"}`, wantErr: true},
		{name: "missing type", body: `{"device_id":"esp32-01"}`, wantErr: true},
		{name: "recharge without parameters", body: `{"device_id":"esp32-01","command_type":"recharge_energy"}`, wantErr: true},
		{name: "recharge with string amount", body: `{"device_id":"esp32-01","command_type":"recharge_energy","parameters":{"energy_amount":"12"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c NewCommand
			require.NoError(t, json.Unmarshal([]byte(tt.body), &c))

			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidCommand))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCommandConfirmation_Validate(t *testing.T) {
	assert.NoError(t, CommandConfirmation{DeviceID: "d", CommandID: 4}.Validate())

	err := CommandConfirmation{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCommand))
	assert.Contains(t, err.Error(), "device_id, command_id")
}

func TestParameters_ScanAndValue(t *testing.T) {
	var p Parameters
	require.NoError(t, p.Scan([]byte(`{"energy_amount": 5}`)))
	assert.Equal(t, 5.0, p["energy_amount"])

	require.NoError(t, p.Scan(`{"relay": 2}`))
	assert.Equal(t, 2.0, p["relay"])

	require.NoError(t, p.Scan(nil))
	assert.Empty(t, p)

	assert.Error(t, p.Scan(42))
	assert.Error(t, p.Scan([]byte(`not json`)))

	v, err := Parameters{"relay": 1}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{"relay":1}`, v.(string))

	v, err = Parameters(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)
}
