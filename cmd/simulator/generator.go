package main

import (
	"math"
	"math/rand/v2"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

const (
	nominalVoltage = 230.0
	// one reading every few seconds; counters are in Wh
	hoursPerReading = 2.0 / 3600
)

// generator produces plausible readings for a single device. Energy counters
// accumulate from the simulated load, so they never decrease.
type generator struct {
	deviceID string
	rnd      *rand.Rand
	energy1  float64
	energy2  float64
}

func newGenerator(deviceID string, seed int64) *generator {
	return &generator{
		deviceID: deviceID,
		rnd:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
	}
}

func (g *generator) Next() domain.NewReading {
	voltage := round(nominalVoltage+g.rnd.NormFloat64()*3, 2)

	relay1 := domain.RelayStatus(g.rnd.Float64() < 0.8)
	relay2 := domain.RelayStatus(g.rnd.Float64() < 0.3)

	var current1, current2 float64
	if relay1 {
		current1 = round(1+g.rnd.Float64()*4, 3)
	}
	if relay2 {
		current2 = round(g.rnd.Float64()*2, 3)
	}

	g.energy1 = round(g.energy1+voltage*current1*hoursPerReading, 4)
	g.energy2 = round(g.energy2+voltage*current2*hoursPerReading, 4)

	deviceID := g.deviceID
	energy1, energy2 := g.energy1, g.energy2

	return domain.NewReading{
		DeviceID:     &deviceID,
		Voltage:      &voltage,
		Current1:     &current1,
		Current2:     &current2,
		Energy1:      &energy1,
		Energy2:      &energy2,
		Relay1Status: &relay1,
		Relay2Status: &relay2,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
