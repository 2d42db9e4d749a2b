package observe

import (
	"farmatro/internal/app/shared/stateview"
	"farmatro/internal/domain/farm"
)

type Request struct {
	GameID string `json:"game_id"`
}

type Response struct {
	Game             farm.GameAggregate    `json:"game"`
	MoistureStatus   stateview.StatusLabel `json:"moisture_status"`
	CropHealthStatus stateview.StatusLabel `json:"crop_health_status"`
	HazardForecast   HazardFeedback        `json:"hazard_forecast"`
	DiscardLimit     int                   `json:"discard_limit"`
	DiscardsLeft     int                   `json:"discards_left"`
	Results          *farm.FinalResults    `json:"results,omitempty"`
}

type HazardFeedback struct {
	IsLosingGround     bool     `json:"is_losing_ground"`
	ProductivityLoss   float64  `json:"productivity_loss"`
	SustainabilityLoss float64  `json:"sustainability_loss"`
	Causes             []string `json:"causes"`
}
