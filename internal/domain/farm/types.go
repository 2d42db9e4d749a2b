package farm

import "time"

type MetricKey string

const (
	MetricSustainability    MetricKey = "sustainability"
	MetricProductivityIndex MetricKey = "productivityIndex"
	MetricSoilMoisture      MetricKey = "soilMoisture"
	MetricSoilPH            MetricKey = "soilPH"
	MetricTemperature       MetricKey = "temperature"
	MetricRainfall          MetricKey = "rainfall"
	MetricCropHealth        MetricKey = "cropHealth"
)

// Metrics is the continuous farm state tracked across a season. CropHealth is
// derived; it is only ever written through a recompute step.
type Metrics struct {
	Round             int     `json:"round"`
	Week              int     `json:"week"`
	Sustainability    float64 `json:"sustainability"`
	ProductivityIndex float64 `json:"productivity_index"`
	SoilMoisture      float64 `json:"soil_moisture"`
	SoilPH            float64 `json:"soil_ph"`
	Temperature       float64 `json:"temperature"`
	Rainfall          float64 `json:"rainfall"`
	CropHealth        float64 `json:"crop_health"`
}

// CardEffects is a net delta applied to the mutable metrics in one round.
type CardEffects struct {
	Sustainability    float64 `json:"sustainability"`
	ProductivityIndex float64 `json:"productivity_index"`
	SoilMoisture      float64 `json:"soil_moisture"`
	SoilPH            float64 `json:"soil_ph"`
	CropHealth        float64 `json:"crop_health"`
}

type CardType string

const (
	CardTypeData       CardType = "data"
	CardTypeAction     CardType = "action"
	CardTypeMultiplier CardType = "multiplier"
	CardTypeEmergency  CardType = "emergency"
)

type SatelliteInfo struct {
	Satellite   string `json:"satellite"`
	Measurement string `json:"measurement"`
	Resolution  string `json:"resolution"`
	Limitations string `json:"limitations"`
}

type Card struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Type             CardType       `json:"type"`
	Icon             string         `json:"icon"`
	Description      string         `json:"description"`
	Effects          CardEffects    `json:"effects"`
	ComboTips        []string       `json:"combo_tips,omitempty"`
	Satellite        *SatelliteInfo `json:"satellite,omitempty"`
	SpecialEffect    string         `json:"special_effect,omitempty"`
	TechnicalDetails string         `json:"technical_details,omitempty"`
}

// CardInstance is one physical copy of a catalog card inside a deck. The deck
// holds several copies of each catalog entry, so the instance ID is what
// distinguishes duplicates in hand.
type CardInstance struct {
	Card
	InstanceID string `json:"instance_id"`
}

type PenaltyCause string

const (
	CauseWaterlogging          PenaltyCause = "waterlogging"
	CauseInefficientIrrigation PenaltyCause = "inefficient_irrigation"
	CauseAlkaline              PenaltyCause = "alkaline"
	CauseAcid                  PenaltyCause = "acid"
	CausePhytotoxicity         PenaltyCause = "phytotoxicity"
	CauseDrought               PenaltyCause = "drought"
	CausePoorHealth            PenaltyCause = "poor_health"
	CauseTemperatureStress     PenaltyCause = "temperature_stress"
	CauseRainfallImbalance     PenaltyCause = "rainfall_imbalance"
)

// Penalty is a hazard badge. Identity for dedup and clearing is
// (Metric, Cause); Title and Description are display-only. The same cause can
// back differently-titled badges (e.g. the play-time and recurrent
// waterlogging badges), which keeps them mutually exclusive.
type Penalty struct {
	Metric      MetricKey    `json:"metric"`
	Cause       PenaltyCause `json:"cause"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

type EventType string

const (
	EventNone     EventType = "none"
	EventRain     EventType = "rain"
	EventHeatwave EventType = "heatwave"
	EventPests    EventType = "pests"
	EventPerfect  EventType = "perfect"
	EventPlague   EventType = "plague"
	EventWind     EventType = "wind"
)

// AutoEffects are scenario-driven metric changes applied when a round begins.
// Fields are pointers: an explicit zero (rainfall 0mm) is an assignment, a nil
// field means the scenario leaves the metric alone.
type AutoEffects struct {
	SoilMoisture      *float64 `json:"soil_moisture,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
	Rainfall          *float64 `json:"rainfall,omitempty"`
	CropHealth        *float64 `json:"crop_health,omitempty"`
	ProductivityIndex *float64 `json:"productivity_index,omitempty"`
}

type ScenarioEvent struct {
	Type  EventType `json:"type"`
	Alert string    `json:"alert,omitempty"`
	Icon  string    `json:"icon,omitempty"`
}

type Symptoms struct {
	Description string   `json:"description"`
	Warnings    []string `json:"warnings"`
}

type ScenarioDescriptor struct {
	Round       int           `json:"round"`
	Week        int           `json:"week"`
	Title       string        `json:"title"`
	Problem     string        `json:"problem"`
	Symptoms    Symptoms      `json:"symptoms"`
	Event       ScenarioEvent `json:"event"`
	AutoEffects *AutoEffects  `json:"auto_effects,omitempty"`
}

type RoundOutcome struct {
	Round         int            `json:"round"`
	ScenarioTitle string         `json:"scenario_title"`
	CardsPlayed   []CardInstance `json:"cards_played"`
	Effects       CardEffects    `json:"effects"`
}

// PendingPlay holds a resolved play between the "play" and "acknowledge"
// transitions: effects are shown to the player before they land on metrics.
type PendingPlay struct {
	Cards     []CardInstance `json:"cards"`
	Effects   CardEffects    `json:"effects"`
	Penalties []Penalty      `json:"penalties"`
}

type Phase string

const (
	PhaseSelecting    Phase = "selecting"
	PhaseEffectsShown Phase = "effects_shown"
	PhaseResults      Phase = "results"
)

type ResultCode string

const (
	ResultOK   ResultCode = "OK"
	ResultWin  ResultCode = "WIN"
	ResultLoss ResultCode = "LOSS"
)

type DomainEvent struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// SeedReadings are the four externally-sourced metric values a new game is
// seeded with; everything else is defaulted by the rules.
type SeedReadings struct {
	SoilMoisture float64 `json:"soil_moisture"`
	Temperature  float64 `json:"temperature"`
	Rainfall     float64 `json:"rainfall"`
	CropHealth   float64 `json:"crop_health"`
}

// GameAggregate is the whole live state of one season, persisted and reloaded
// between transitions. Exactly one transition mutates it at a time; saves are
// guarded by Version.
type GameAggregate struct {
	GameID                    string              `json:"game_id"`
	Phase                     Phase               `json:"phase"`
	Metrics                   Metrics             `json:"metrics"`
	Hand                      []CardInstance      `json:"hand"`
	Deck                      []CardInstance      `json:"deck"`
	DiscardPile               []CardInstance      `json:"discard_pile"`
	CardsUsedCount            map[string]int      `json:"cards_used_count"`
	ActivePenalties           []Penalty           `json:"active_penalties"`
	LastCardPlayed            *CardInstance       `json:"last_card_played,omitempty"`
	ConsecutiveDefensiveCards int                 `json:"consecutive_defensive_cards"`
	DiscardsUsedThisRound     int                 `json:"discards_used_this_round"`
	RoundOutcomes             []RoundOutcome      `json:"round_outcomes"`
	CurrentScenario           *ScenarioDescriptor `json:"current_scenario,omitempty"`
	Pending                   *PendingPlay        `json:"pending,omitempty"`
	LoseReason                string              `json:"lose_reason,omitempty"`
	LoseDetails               string              `json:"lose_details,omitempty"`
	Version                   int64               `json:"version"`
	UpdatedAt                 time.Time           `json:"updated_at"`
}
