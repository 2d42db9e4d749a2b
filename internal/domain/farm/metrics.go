package farm

import "math"

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// round1 and round2 fix display precision at the point of mutation so repeated
// float arithmetic never drifts the stored metrics.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CropHealthFrom derives crop health from productivity and moisture plus any
// direct crop-health delta applied this round. Crop health is never stored
// independently of this function.
func CropHealthFrom(productivityIndex, soilMoisture, directDelta float64) float64 {
	base := cropHealthBase + (productivityIndex/100)*(soilMoisture/100)*cropHealthScale
	return clamp(base+directDelta, -1, 1)
}

// ApplyCardEffects adds a resolved effect delta to the metrics, clamping each
// metric at its range and recomputing crop health with the delta's direct
// crop-health component.
func (m Metrics) ApplyCardEffects(e CardEffects) Metrics {
	next := m
	next.Sustainability = round1(clamp(m.Sustainability+e.Sustainability, 0, 100))
	next.ProductivityIndex = round1(clamp(m.ProductivityIndex+e.ProductivityIndex, 0, 100))
	next.SoilMoisture = round1(clamp(m.SoilMoisture+e.SoilMoisture, 0, 100))
	next.SoilPH = round2(clamp(m.SoilPH+e.SoilPH, 0, 14))
	next.CropHealth = round2(CropHealthFrom(next.ProductivityIndex, next.SoilMoisture, e.CropHealth))
	return next
}

// DiscardLimit is the number of discard actions allowed per round, a step
// function of current sustainability.
func DiscardLimit(sustainability float64) int {
	switch {
	case sustainability > 75:
		return 4
	case sustainability >= 50:
		return 3
	case sustainability >= 25:
		return 2
	default:
		return 1
	}
}

func (e CardEffects) add(o CardEffects) CardEffects {
	return CardEffects{
		Sustainability:    e.Sustainability + o.Sustainability,
		ProductivityIndex: e.ProductivityIndex + o.ProductivityIndex,
		SoilMoisture:      e.SoilMoisture + o.SoilMoisture,
		SoilPH:            e.SoilPH + o.SoilPH,
		CropHealth:        e.CropHealth + o.CropHealth,
	}
}
