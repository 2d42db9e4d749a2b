package farm

func newWaterloggingPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilMoisture,
		Cause:       CauseWaterlogging,
		Title:       "Waterlogging",
		Description: "Root oxygen depletion causing severe damage! Excess moisture prevents roots from breathing properly.",
	}
}

func newInefficientIrrigationPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilMoisture,
		Cause:       CauseInefficientIrrigation,
		Title:       "Inefficient Irrigation",
		Description: "Dry soil absorbs poorly, causing 40% runoff! Water is wasted instead of reaching plant roots.",
	}
}

func newAlkalineLockoutPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilPH,
		Cause:       CauseAlkaline,
		Title:       "Alkaline Lockout",
		Description: "Iron and zinc becoming unavailable! High pH prevents essential nutrients from being absorbed.",
	}
}

func newAcidToxicityPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilPH,
		Cause:       CauseAcid,
		Title:       "Acid Toxicity",
		Description: "Aluminum poisoning roots! Low pH releases toxic aluminum that damages plant roots.",
	}
}

func newPhytotoxicityPenalty() Penalty {
	return Penalty{
		Metric:      MetricCropHealth,
		Cause:       CausePhytotoxicity,
		Title:       "Phytotoxicity",
		Description: "Excessive defensive measures stress crops! Using too many protective treatments in sequence reduces plant vigor and crop health.",
	}
}

func newRecurrentWaterloggingPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilMoisture,
		Cause:       CauseWaterlogging,
		Title:       "Recurrent Waterlogging",
		Description: "Continued root damage from excess moisture! Plants are suffocating from lack of oxygen.",
	}
}

func newRecurrentDroughtPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilMoisture,
		Cause:       CauseDrought,
		Title:       "Recurrent Drought",
		Description: "Crops stressed from insufficient water! Plants are wilting and growth is stunted.",
	}
}

func newRecurrentAlkalinePenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilPH,
		Cause:       CauseAlkaline,
		Title:       "Recurrent Alkaline",
		Description: "Nutrient lockout continues! Essential minerals remain unavailable to plants.",
	}
}

func newRecurrentAcidityPenalty() Penalty {
	return Penalty{
		Metric:      MetricSoilPH,
		Cause:       CauseAcid,
		Title:       "Recurrent Acidity",
		Description: "Aluminum toxicity persists! Toxic metals continue to damage root systems.",
	}
}

func newRecurrentPoorHealthPenalty() Penalty {
	return Penalty{
		Metric:      MetricCropHealth,
		Cause:       CausePoorHealth,
		Title:       "Recurrent Poor Health",
		Description: "Crops are struggling! Low crop health reduces productivity and sustainability.",
	}
}

func newRecurrentTemperatureStressPenalty() Penalty {
	return Penalty{
		Metric:      MetricTemperature,
		Cause:       CauseTemperatureStress,
		Title:       "Recurrent Temperature Stress",
		Description: "Extreme temperatures stress crops! Outside the ideal 15-30°C range, plants struggle to grow efficiently.",
	}
}

func newRecurrentRainfallImbalancePenalty() Penalty {
	return Penalty{
		Metric:      MetricRainfall,
		Cause:       CauseRainfallImbalance,
		Title:       "Recurrent Rainfall Imbalance",
		Description: "Inadequate or excessive rainfall! Outside the ideal 10-50mm range, water management becomes challenging.",
	}
}

// addPenalties appends badges to the active list, deduplicating by
// (Metric, Cause). The numeric damage for a repeated trigger has already been
// applied by the caller; only the badge is collapsed.
func addPenalties(active []Penalty, incoming []Penalty) []Penalty {
	out := active
	for _, p := range incoming {
		dup := false
		for _, a := range out {
			if a.Metric == p.Metric && a.Cause == p.Cause {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

// ApplyRecurrentPenalties charges the per-round damage for every hazard band
// the metrics currently sit in. Damage lands every round the condition holds;
// the badge is only added once per (Metric, Cause). Crop health is recomputed
// afterwards with no direct delta.
func ApplyRecurrentPenalties(g GameAggregate) GameAggregate {
	next := g
	var badges []Penalty

	if next.Metrics.SoilMoisture > MoistureHighThreshold {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentWaterloggingProductivityLoss)
		next.Metrics.Sustainability = max(0, next.Metrics.Sustainability-RecurrentWaterloggingSustainabilityLoss)
		badges = append(badges, newRecurrentWaterloggingPenalty())
	}
	if next.Metrics.SoilMoisture < MoistureLowThreshold {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentDroughtProductivityLoss)
		next.Metrics.Sustainability = max(0, next.Metrics.Sustainability-RecurrentDroughtSustainabilityLoss)
		badges = append(badges, newRecurrentDroughtPenalty())
	}
	if next.Metrics.SoilPH > PHHighThreshold {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentAlkalineProductivityLoss)
		badges = append(badges, newRecurrentAlkalinePenalty())
	}
	if next.Metrics.SoilPH < PHLowThreshold {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentAcidityProductivityLoss)
		badges = append(badges, newRecurrentAcidityPenalty())
	}
	if next.Metrics.CropHealth < CropHealthLowThreshold {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentPoorHealthProductivityLoss)
		next.Metrics.Sustainability = max(0, next.Metrics.Sustainability-RecurrentPoorHealthSustainabilityLoss)
		badges = append(badges, newRecurrentPoorHealthPenalty())
	}
	if next.Metrics.Temperature < TemperatureMin || next.Metrics.Temperature > TemperatureMax {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentTemperatureProductivityLoss)
		next.Metrics.Sustainability = max(0, next.Metrics.Sustainability-RecurrentTemperatureSustainabilityLoss)
		badges = append(badges, newRecurrentTemperatureStressPenalty())
	}
	if next.Metrics.Rainfall < RainfallMin || next.Metrics.Rainfall > RainfallMax {
		next.Metrics.ProductivityIndex = max(0, next.Metrics.ProductivityIndex-RecurrentRainfallProductivityLoss)
		next.Metrics.Sustainability = max(0, next.Metrics.Sustainability-RecurrentRainfallSustainabilityLoss)
		badges = append(badges, newRecurrentRainfallImbalancePenalty())
	}

	next.Metrics.CropHealth = round2(CropHealthFrom(next.Metrics.ProductivityIndex, next.Metrics.SoilMoisture, 0))
	next.ActivePenalties = addPenalties(next.ActivePenalties, badges)
	return next
}

// penaltyResolved reports whether a badge's hazard condition has lapsed.
// Misuse badges with no band (inefficient irrigation, phytotoxicity) never
// resolve on their own.
func penaltyResolved(p Penalty, m Metrics) bool {
	switch {
	case p.Metric == MetricSoilMoisture && p.Cause == CauseWaterlogging:
		return m.SoilMoisture <= MoistureHighThreshold
	case p.Metric == MetricSoilMoisture && p.Cause == CauseDrought:
		return m.SoilMoisture >= MoistureLowThreshold
	case p.Metric == MetricSoilPH && p.Cause == CauseAlkaline:
		return m.SoilPH <= PHHighThreshold
	case p.Metric == MetricSoilPH && p.Cause == CauseAcid:
		return m.SoilPH >= PHLowThreshold
	case p.Metric == MetricCropHealth && p.Cause == CausePoorHealth:
		return m.CropHealth >= CropHealthLowThreshold
	case p.Metric == MetricTemperature && p.Cause == CauseTemperatureStress:
		return m.Temperature >= TemperatureMin && m.Temperature <= TemperatureMax
	case p.Metric == MetricRainfall && p.Cause == CauseRainfallImbalance:
		return m.Rainfall >= RainfallMin && m.Rainfall <= RainfallMax
	}
	return false
}

// ClearResolvedPenalties drops every badge whose hazard band no longer holds.
func ClearResolvedPenalties(g GameAggregate) GameAggregate {
	next := g
	var kept []Penalty
	for _, p := range next.ActivePenalties {
		if !penaltyResolved(p, next.Metrics) {
			kept = append(kept, p)
		}
	}
	next.ActivePenalties = kept
	return next
}
