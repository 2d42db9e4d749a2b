package farm

import (
	"math"
	"testing"
)

func mustInstance(t *testing.T, cardID, instanceID string) CardInstance {
	t.Helper()
	c, ok := CardByID(cardID)
	if !ok {
		t.Fatalf("unknown card %s", cardID)
	}
	return CardInstance{Card: c, InstanceID: instanceID}
}

func baseAggregate() GameAggregate {
	return GameAggregate{
		GameID: "g-1",
		Phase:  PhaseSelecting,
		Metrics: Metrics{
			Round:             1,
			Week:              1,
			Sustainability:    100,
			ProductivityIndex: 60,
			SoilMoisture:      45,
			SoilPH:            6.5,
			Temperature:       28,
			Rainfall:          20,
			CropHealth:        0.39,
		},
		CardsUsedCount: map[string]int{},
		Version:        1,
	}
}

func TestResolveCards_WaterloggingPenalty(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilMoisture = 80

	card := mustInstance(t, "light_irrigation", "i-1")
	effects, penalties := ResolveCards([]CardInstance{card}, g)

	wantPI := card.Effects.ProductivityIndex - 25
	wantSus := card.Effects.Sustainability - 30
	wantCH := card.Effects.CropHealth - 0.2
	if effects.ProductivityIndex != wantPI {
		t.Fatalf("productivity delta: got %v want %v", effects.ProductivityIndex, wantPI)
	}
	if effects.Sustainability != wantSus {
		t.Fatalf("sustainability delta: got %v want %v", effects.Sustainability, wantSus)
	}
	if math.Abs(effects.CropHealth-wantCH) > 1e-9 {
		t.Fatalf("crop health delta: got %v want %v", effects.CropHealth, wantCH)
	}
	if len(penalties) != 1 || penalties[0].Cause != CauseWaterlogging {
		t.Fatalf("expected one waterlogging penalty, got %+v", penalties)
	}
}

func TestResolveCards_WaterloggingBadgeOncePerPlay(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilMoisture = 80

	cards := []CardInstance{
		mustInstance(t, "light_irrigation", "i-1"),
		mustInstance(t, "moderate_irrigation", "i-2"),
	}
	_, penalties := ResolveCards(cards, g)

	count := 0
	for _, p := range penalties {
		if p.Cause == CauseWaterlogging {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected both cards to trigger, got %d", count)
	}

	active := addPenalties(nil, penalties)
	badges := 0
	for _, p := range active {
		if p.Cause == CauseWaterlogging {
			badges++
		}
	}
	if badges != 1 {
		t.Fatalf("expected one waterlogging badge after dedup, got %d", badges)
	}
}

func TestResolveCards_SkipsPenaltyWhileBadgeActive(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilMoisture = 80
	g.ActivePenalties = []Penalty{newWaterloggingPenalty()}

	card := mustInstance(t, "light_irrigation", "i-1")
	effects, penalties := ResolveCards([]CardInstance{card}, g)

	if effects != card.Effects {
		t.Fatalf("expected base effects only, got %+v", effects)
	}
	if len(penalties) != 0 {
		t.Fatalf("expected no new penalties, got %+v", penalties)
	}
}

func TestResolveCards_InefficientIrrigation(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilMoisture = 20

	card := mustInstance(t, "light_irrigation", "i-1")
	effects, penalties := ResolveCards([]CardInstance{card}, g)

	if effects.Sustainability != card.Effects.Sustainability-15 {
		t.Fatalf("sustainability delta: got %v", effects.Sustainability)
	}
	if len(penalties) != 1 || penalties[0].Cause != CauseInefficientIrrigation {
		t.Fatalf("expected inefficient irrigation penalty, got %+v", penalties)
	}
}

func TestResolveCards_AlkalineAndAcid(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilPH = 7.5

	lime := mustInstance(t, "lime_light", "i-1")
	effects, penalties := ResolveCards([]CardInstance{lime}, g)
	if effects.ProductivityIndex != lime.Effects.ProductivityIndex-20 {
		t.Fatalf("alkaline productivity delta: got %v", effects.ProductivityIndex)
	}
	if len(penalties) != 1 || penalties[0].Cause != CauseAlkaline {
		t.Fatalf("expected alkaline penalty, got %+v", penalties)
	}

	g.Metrics.SoilPH = 5.0
	herbicide := mustInstance(t, "spot_herbicide", "i-2")
	effects, penalties = ResolveCards([]CardInstance{herbicide}, g)
	if effects.ProductivityIndex != herbicide.Effects.ProductivityIndex-25 {
		t.Fatalf("acid productivity delta: got %v", effects.ProductivityIndex)
	}
	if len(penalties) != 1 || penalties[0].Cause != CauseAcid {
		t.Fatalf("expected acid penalty, got %+v", penalties)
	}
}

func TestResolveCards_DefensiveAdjacency(t *testing.T) {
	g := baseAggregate()
	last := mustInstance(t, "manual_weeding", "i-0")
	g.LastCardPlayed = &last

	card := mustInstance(t, "biocontrol", "i-1")
	effects, penalties := ResolveCards([]CardInstance{card}, g)

	if math.Abs(effects.CropHealth-(card.Effects.CropHealth-0.15)) > 1e-9 {
		t.Fatalf("crop health delta: got %v", effects.CropHealth)
	}
	if len(penalties) != 1 || penalties[0].Cause != CausePhytotoxicity {
		t.Fatalf("expected phytotoxicity penalty, got %+v", penalties)
	}
}

func TestResolveCards_MultiDefensivePenaltyLeadsList(t *testing.T) {
	g := baseAggregate()
	g.Metrics.SoilMoisture = 80

	cards := []CardInstance{
		mustInstance(t, "biocontrol", "i-1"),
		mustInstance(t, "manual_weeding", "i-2"),
		mustInstance(t, "light_irrigation", "i-3"),
	}
	effects, penalties := ResolveCards(cards, g)

	if len(penalties) < 2 {
		t.Fatalf("expected phytotoxicity plus waterlogging, got %+v", penalties)
	}
	if penalties[0].Cause != CausePhytotoxicity {
		t.Fatalf("expected multi-defensive penalty first, got %+v", penalties[0])
	}

	base := cards[0].Effects.CropHealth + cards[1].Effects.CropHealth + cards[2].Effects.CropHealth
	want := base - 0.15 - 0.2
	if math.Abs(effects.CropHealth-want) > 1e-9 {
		t.Fatalf("crop health delta: got %v want %v", effects.CropHealth, want)
	}
}

func TestResolveCards_PlagueSuppressesDefensivePositives(t *testing.T) {
	g := baseAggregate()
	g.CurrentScenario = ScenarioForRound(8)
	if g.CurrentScenario.Event.Type != EventPlague {
		t.Fatalf("round 8 should be a plague scenario")
	}

	card := mustInstance(t, "biocontrol", "i-1")
	effects, _ := ResolveCards([]CardInstance{card}, g)

	if effects.ProductivityIndex != 0 || effects.Sustainability != 0 || effects.CropHealth != 0 {
		t.Fatalf("expected positive defensive effects zeroed, got %+v", effects)
	}
}

func TestResolveCards_WindKeepsNegativeComponents(t *testing.T) {
	g := baseAggregate()
	g.CurrentScenario = ScenarioForRound(12)
	if g.CurrentScenario.Event.Type != EventWind {
		t.Fatalf("round 12 should be a wind scenario")
	}

	card := mustInstance(t, "broadcast_herbicide", "i-1")
	effects, _ := ResolveCards([]CardInstance{card}, g)

	if effects.ProductivityIndex != 0 || effects.CropHealth != 0 {
		t.Fatalf("expected positive components zeroed, got %+v", effects)
	}
	if effects.Sustainability != card.Effects.Sustainability {
		t.Fatalf("expected negative sustainability kept, got %v", effects.Sustainability)
	}
	if effects.SoilPH != card.Effects.SoilPH {
		t.Fatalf("expected pH delta untouched, got %v", effects.SoilPH)
	}
}

func TestResolveCards_NonDefensiveUnaffectedByPlague(t *testing.T) {
	g := baseAggregate()
	g.CurrentScenario = ScenarioForRound(8)

	card := mustInstance(t, "cover_crop", "i-1")
	effects, _ := ResolveCards([]CardInstance{card}, g)
	if effects != card.Effects {
		t.Fatalf("expected base effects, got %+v", effects)
	}
}
