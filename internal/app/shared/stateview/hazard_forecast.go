package stateview

import "farmatro/internal/domain/farm"

// HazardForecast projects the recurrent damage the current metrics will take
// at the next round boundary if nothing corrects them.
type HazardForecast struct {
	IsLosingGround     bool
	ProductivityLoss   float64
	SustainabilityLoss float64
	Causes             []string
}

func EstimateRecurrentDamage(m farm.Metrics) HazardForecast {
	var out HazardForecast

	add := func(pi, sus float64, cause string) {
		out.ProductivityLoss += pi
		out.SustainabilityLoss += sus
		out.Causes = append(out.Causes, cause)
	}

	if m.SoilMoisture > farm.MoistureHighThreshold {
		add(farm.RecurrentWaterloggingProductivityLoss, farm.RecurrentWaterloggingSustainabilityLoss, "WATERLOGGING")
	}
	if m.SoilMoisture < farm.MoistureLowThreshold {
		add(farm.RecurrentDroughtProductivityLoss, farm.RecurrentDroughtSustainabilityLoss, "DROUGHT")
	}
	if m.SoilPH > farm.PHHighThreshold {
		add(farm.RecurrentAlkalineProductivityLoss, 0, "ALKALINE")
	}
	if m.SoilPH < farm.PHLowThreshold {
		add(farm.RecurrentAcidityProductivityLoss, 0, "ACIDITY")
	}
	if m.CropHealth < farm.CropHealthLowThreshold {
		add(farm.RecurrentPoorHealthProductivityLoss, farm.RecurrentPoorHealthSustainabilityLoss, "POOR_HEALTH")
	}
	if m.Temperature < farm.TemperatureMin || m.Temperature > farm.TemperatureMax {
		add(farm.RecurrentTemperatureProductivityLoss, farm.RecurrentTemperatureSustainabilityLoss, "TEMPERATURE_STRESS")
	}
	if m.Rainfall < farm.RainfallMin || m.Rainfall > farm.RainfallMax {
		add(farm.RecurrentRainfallProductivityLoss, farm.RecurrentRainfallSustainabilityLoss, "RAINFALL_IMBALANCE")
	}

	out.IsLosingGround = out.ProductivityLoss > 0 || out.SustainabilityLoss > 0
	return out
}
