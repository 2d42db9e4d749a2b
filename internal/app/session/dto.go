package session

import (
	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

type StartRequest struct {
	GameID string `json:"game_id,omitempty"`
}

type StartResponse struct {
	Game farm.GameAggregate `json:"game"`
	Seed farm.SeedReadings  `json:"seed"`
}

type ReadingsResponse struct {
	Location ports.Location      `json:"location"`
	Readings ports.FieldReadings `json:"readings"`
	Seed     farm.SeedReadings   `json:"seed"`
}
