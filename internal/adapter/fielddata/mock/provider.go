package mock

import (
	"context"
	"time"

	"farmatro/internal/app/ports"
)

// Provider serves fixed satellite-style readings. Values mirror the public
// data products the game is themed around: SMAP volumetric soil moisture,
// MERRA-2 2m air temperature, GPM precipitation and a MODIS NDVI index.
type Provider struct {
	Fixed *ports.FieldReadings
}

func (p Provider) Readings(_ context.Context, _ ports.Location) (ports.FieldReadings, error) {
	if p.Fixed != nil {
		return *p.Fixed, nil
	}
	return ports.FieldReadings{
		SoilMoisture: ports.Measurement{Value: f(0.45), Unit: "m³/m³", Source: "SMAP L3 (0-5cm)"},
		Temperature:  ports.Measurement{Value: f(28), Unit: "°C", Source: "MERRA-2 air_temperature_2m"},
		Rainfall:     ports.Measurement{Value: f(0), Unit: "mm", Source: "GPM IMERG daily"},
		NDVI:         ports.Measurement{Value: f(0.2), Unit: "index", Source: "MODIS Terra/Aqua"},
		RetrievedAt:  time.Now(),
	}, nil
}

func f(v float64) *float64 { return &v }
