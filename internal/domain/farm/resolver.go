package farm

// HasPenalty reports whether a badge with the given identity is already
// active. Gating on this keeps a hazard from stacking its badge while the
// per-round damage still applies.
func (g GameAggregate) HasPenalty(metric MetricKey, cause PenaltyCause) bool {
	for _, p := range g.ActivePenalties {
		if p.Metric == metric && p.Cause == cause {
			return true
		}
	}
	return false
}

// perCardEffects resolves a single card against the current state, applying
// the conditional misuse penalties on top of the card's base effect. Misuse
// penalties are skipped entirely, effect and badge both, while their badge is
// already active; the adjacency phytotoxicity check is unconditional.
func perCardEffects(card CardInstance, g GameAggregate) (CardEffects, []Penalty) {
	effects := card.Effects
	var penalties []Penalty

	if card.Effects.SoilMoisture > 0 && g.Metrics.SoilMoisture > MoistureHighThreshold &&
		!g.HasPenalty(MetricSoilMoisture, CauseWaterlogging) {
		effects.ProductivityIndex -= waterloggingProductivityLoss
		effects.Sustainability -= waterloggingSustainabilityLoss
		effects.CropHealth -= waterloggingCropHealthLoss
		penalties = append(penalties, newWaterloggingPenalty())
	}

	if card.Effects.SoilMoisture > 0 && g.Metrics.SoilMoisture < MoistureLowThreshold &&
		!g.HasPenalty(MetricSoilMoisture, CauseInefficientIrrigation) {
		effects.Sustainability -= inefficientIrrigationSusLoss
		penalties = append(penalties, newInefficientIrrigationPenalty())
	}

	if card.Effects.SoilPH > 0 && g.Metrics.SoilPH > PHHighThreshold &&
		!g.HasPenalty(MetricSoilPH, CauseAlkaline) {
		effects.ProductivityIndex -= alkalineLockoutProductivityLoss
		penalties = append(penalties, newAlkalineLockoutPenalty())
	}

	if card.Effects.SoilPH < 0 && g.Metrics.SoilPH < PHLowThreshold &&
		!g.HasPenalty(MetricSoilPH, CauseAcid) {
		effects.ProductivityIndex -= acidToxicityProductivityLoss
		penalties = append(penalties, newAcidToxicityPenalty())
	}

	if IsDefensiveCard(card.Card) && g.LastCardPlayed != nil && IsDefensiveCard(g.LastCardPlayed.Card) {
		effects.CropHealth -= phytotoxicityCropHealthLoss
		penalties = append(penalties, newPhytotoxicityPenalty())
	}

	return effects, penalties
}

// suppressPositive zeroes the positive productivity, crop-health and
// sustainability components of a resolved effect. Plague and wind scenarios do
// this to defensive cards.
func suppressPositive(e CardEffects) CardEffects {
	if e.ProductivityIndex > 0 {
		e.ProductivityIndex = 0
	}
	if e.CropHealth > 0 {
		e.CropHealth = 0
	}
	if e.Sustainability > 0 {
		e.Sustainability = 0
	}
	return e
}

// ResolveCards computes the net effect of a played set of cards. Every card
// resolves against the state as it was before the play; effects do not
// cascade within a turn. The multi-defensive phytotoxicity check runs first
// so its badges lead the penalty list.
func ResolveCards(cards []CardInstance, g GameAggregate) (CardEffects, []Penalty) {
	var total CardEffects
	var penalties []Penalty

	defensive := 0
	for _, c := range cards {
		if IsDefensiveCard(c.Card) {
			defensive++
		}
	}
	for i := 1; i < defensive; i++ {
		total.CropHealth -= phytotoxicityCropHealthLoss
		penalties = append(penalties, newPhytotoxicityPenalty())
	}

	plagueOrWind := g.CurrentScenario != nil &&
		(g.CurrentScenario.Event.Type == EventPlague || g.CurrentScenario.Event.Type == EventWind)

	for _, c := range cards {
		effects, cardPenalties := perCardEffects(c, g)
		if plagueOrWind && IsDefensiveCard(c.Card) {
			effects = suppressPositive(effects)
		}
		total = total.add(effects)
		penalties = append(penalties, cardPenalties...)
	}

	return total, penalties
}
