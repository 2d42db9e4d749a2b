package replay

import "farmatro/internal/domain/farm"

type Request struct {
	GameID       string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events     []farm.DomainEvent `json:"events"`
	Trajectory []farm.Metrics     `json:"trajectory"`
}
