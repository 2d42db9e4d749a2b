package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"farmatro/internal/app/observe"
	"farmatro/internal/app/play"
	"farmatro/internal/app/ports"
	"farmatro/internal/app/replay"
	"farmatro/internal/app/session"
	"farmatro/internal/domain/farm"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1700000000, 0).UTC()
	game := farm.GameAggregate{
		GameID: "g1",
		Phase:  farm.PhaseSelecting,
		Metrics: farm.Metrics{
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
		CardsUsedCount: map[string]int{"drip_irrigation": 1},
		Version:        1,
		UpdatedAt:      now,
	}
	event := farm.DomainEvent{
		Type:       "round_advanced",
		OccurredAt: now,
		Payload:    map[string]any{"round": 2},
	}

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name: "observe",
			payload: observe.Response{
				Game:         game,
				DiscardLimit: 4,
				DiscardsLeft: 4,
			},
			want:    []string{"game", "moisture_status", "crop_health_status", "hazard_forecast", "discard_limit", "discards_left"},
			notWant: []string{"Game", "MoistureStatus", "DiscardLimit", "results"},
		},
		{
			name:    "action",
			payload: play.Response{Game: game, Events: []farm.DomainEvent{event}, ResultCode: farm.ResultOK},
			want:    []string{"game", "events", "result_code"},
			notWant: []string{"Game", "Events", "ResultCode"},
		},
		{
			name:    "start",
			payload: session.StartResponse{Game: game, Seed: farm.SeedReadings{SoilMoisture: 45}},
			want:    []string{"game", "seed"},
			notWant: []string{"Game", "Seed"},
		},
		{
			name: "readings",
			payload: session.ReadingsResponse{
				Location: ports.Location{Lat: -9.3963, Lon: -40.5121, Name: "Northeast Brazil"},
				Readings: ports.FieldReadings{RetrievedAt: now},
			},
			want:    []string{"location", "readings", "seed"},
			notWant: []string{"Location", "Readings"},
		},
		{
			name:    "replay",
			payload: replay.Response{Events: []farm.DomainEvent{event}, Trajectory: []farm.Metrics{game.Metrics}},
			want:    []string{"events", "trajectory"},
			notWant: []string{"Events", "Trajectory"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			if tc.name == "observe" {
				gameMap := asMap(got["game"])
				if _, ok := gameMap["game_id"]; !ok {
					t.Fatalf("expected nested snake_case key game.game_id in %s", string(b))
				}
				metricsMap := asMap(gameMap["metrics"])
				if _, ok := metricsMap["productivity_index"]; !ok {
					t.Fatalf("expected nested snake_case key game.metrics.productivity_index in %s", string(b))
				}
				if _, ok := metricsMap["SoilPH"]; ok {
					t.Fatalf("unexpected nested key game.metrics.SoilPH in %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
