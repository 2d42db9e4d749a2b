package play

import "farmatro/internal/domain/farm"

type IntentType string

const (
	IntentPlay    IntentType = "play"
	IntentDiscard IntentType = "discard"
	IntentAdvance IntentType = "advance"
)

type Intent struct {
	Type            IntentType `json:"type"`
	CardInstanceIDs []string   `json:"card_instance_ids,omitempty"`
}

type Request struct {
	GameID string `json:"game_id"`
	Intent Intent `json:"intent"`
}

type Response struct {
	Game       farm.GameAggregate `json:"game"`
	Events     []farm.DomainEvent `json:"events,omitempty"`
	ResultCode farm.ResultCode    `json:"result_code"`
}
