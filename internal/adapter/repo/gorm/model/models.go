package model

import "time"

// GameState is one row per live season. Scalar metrics get real columns so
// they can be queried; the card piles and history ride along as JSONB.
type GameState struct {
	GameID                    string `gorm:"primaryKey;column:game_id"`
	Phase                     string
	Round                     int32
	Week                      int32
	Sustainability            float64
	ProductivityIndex         float64
	SoilMoisture              float64
	SoilPH                    float64 `gorm:"column:soil_ph"`
	Temperature               float64
	Rainfall                  float64
	CropHealth                float64
	Hand                      []byte `gorm:"type:jsonb"`
	Deck                      []byte `gorm:"type:jsonb"`
	DiscardPile               []byte `gorm:"type:jsonb"`
	CardsUsedCount            []byte `gorm:"type:jsonb"`
	ActivePenalties           []byte `gorm:"type:jsonb"`
	LastCardPlayed            []byte `gorm:"type:jsonb"`
	Pending                   []byte `gorm:"type:jsonb"`
	RoundOutcomes             []byte `gorm:"type:jsonb"`
	ConsecutiveDefensiveCards int32
	DiscardsUsedThisRound     int32
	CurrentScenarioRound      int32
	LoseReason                string
	LoseDetails               string
	Version                   int64
	UpdatedAt                 time.Time
}

func (GameState) TableName() string { return "game_states" }

type DomainEvent struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	GameID     string `gorm:"column:game_id;index"`
	Type       string
	OccurredAt time.Time
	Payload    []byte `gorm:"type:jsonb"`
}

func (DomainEvent) TableName() string { return "domain_events" }
