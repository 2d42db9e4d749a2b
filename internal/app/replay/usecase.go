package replay

import (
	"context"
	"errors"
	"strings"

	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

// Execute lists a game's event stream and rebuilds the metric trajectory from
// the post-round snapshots carried in the events.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	events, err := u.Events.ListByGameID(ctx, req.GameID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	return Response{Events: events, Trajectory: reconstruct(events)}, nil
}

func filterByTimeWindow(events []farm.DomainEvent, from, to int64) []farm.DomainEvent {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]farm.DomainEvent, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct pulls each round_advanced event's state_after snapshot. Events
// from the in-memory store carry the typed struct; events reloaded from the
// database carry a decoded JSON map.
func reconstruct(events []farm.DomainEvent) []farm.Metrics {
	var out []farm.Metrics
	for _, evt := range events {
		if evt.Type != "round_advanced" || evt.Payload == nil {
			continue
		}
		switch after := evt.Payload["state_after"].(type) {
		case farm.Metrics:
			out = append(out, after)
		case map[string]any:
			out = append(out, farm.Metrics{
				Round:             int(num(after["round"])),
				Week:              int(num(after["week"])),
				Sustainability:    num(after["sustainability"]),
				ProductivityIndex: num(after["productivity_index"]),
				SoilMoisture:      num(after["soil_moisture"]),
				SoilPH:            num(after["soil_ph"]),
				Temperature:       num(after["temperature"]),
				Rainfall:          num(after["rainfall"]),
				CropHealth:        num(after["crop_health"]),
			})
		}
	}
	return out
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
