package ports

import (
	"context"
	"time"
)

type Location struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"`
}

// Measurement is one externally-sourced reading. Value is nil when the source
// had no data for the location; callers substitute their own fallback.
type Measurement struct {
	Value  *float64 `json:"value"`
	Unit   string   `json:"unit"`
	Source string   `json:"source"`
}

type FieldReadings struct {
	SoilMoisture Measurement `json:"soil_moisture"`
	Temperature  Measurement `json:"temperature"`
	Rainfall     Measurement `json:"rainfall"`
	NDVI         Measurement `json:"ndvi"`
	RetrievedAt  time.Time   `json:"retrieved_at"`
}

type FieldDataProvider interface {
	Readings(ctx context.Context, loc Location) (FieldReadings, error)
}
