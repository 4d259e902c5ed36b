package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHouse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      NewHouse
		missing []string
	}{
		{"complete", NewHouse{DeviceID: "esp32-01", Name: "Maison Nord"}, nil},
		{"no device", NewHouse{Name: "Maison Nord"}, []string{"deviceId"}},
		{"no name", NewHouse{DeviceID: "esp32-01"}, []string{"nom"}},
		{"empty", NewHouse{}, []string{"deviceId", "nom"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.ErrorIs(t, err, ErrInvalidHouse)
			assert.Equal(t, tt.missing, verr.Fields)
		})
	}
}

func TestNewHouse_DecodesAppFieldNames(t *testing.T) {
	var in NewHouse
	require.NoError(t, json.Unmarshal([]byte(`{"deviceId":"esp32-01","nom":"Maison Nord","adresse":"12 rue des Lilas"}`), &in))

	assert.Equal(t, "esp32-01", in.DeviceID)
	assert.Equal(t, "Maison Nord", in.Name)
	require.NotNil(t, in.Address)
	assert.Equal(t, "12 rue des Lilas", *in.Address)
}
