package session

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

// StartUseCase creates a fresh season. The four seed metrics come from the
// field-data provider; a provider failure falls back to fixed defaults rather
// than blocking the game.
type StartUseCase struct {
	TxManager ports.TxManager
	GameRepo  ports.GameRepository
	EventRepo ports.EventRepository
	FieldData ports.FieldDataProvider
	Rounds    *farm.RoundService
	Location  ports.Location
	Now       func() time.Time
}

func (u StartUseCase) Execute(ctx context.Context, req StartRequest) (StartResponse, error) {
	gameID := strings.TrimSpace(req.GameID)
	if gameID == "" {
		gameID = uuid.NewString()
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	seed := SeedFromReadings(u.fetchReadings(ctx))
	game := u.Rounds.NewGame(gameID, seed, nowFn())

	var out StartResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := u.GameRepo.SaveWithVersion(txCtx, game, 0); err != nil {
			return err
		}
		event := farm.DomainEvent{
			Type:       "season_started",
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"game_id": gameID,
				"seed":    seed,
			},
		}
		if err := u.EventRepo.Append(txCtx, gameID, []farm.DomainEvent{event}); err != nil {
			return err
		}
		out = StartResponse{Game: game, Seed: seed}
		return nil
	})
	if err != nil {
		return StartResponse{}, err
	}
	return out, nil
}

func (u StartUseCase) fetchReadings(ctx context.Context) ports.FieldReadings {
	if u.FieldData == nil {
		return ports.FieldReadings{}
	}
	readings, err := u.FieldData.Readings(ctx, u.Location)
	if err != nil {
		log.Printf("field data unavailable, using fallback seed: %v", err)
		return ports.FieldReadings{}
	}
	return readings
}

// SeedFromReadings converts raw field measurements into game metrics. Soil
// moisture arrives as a volumetric fraction and becomes a percentage; a
// missing measurement takes the fixed fallback for that metric alone.
func SeedFromReadings(r ports.FieldReadings) farm.SeedReadings {
	seed := farm.SeedReadings{
		SoilMoisture: farm.FallbackSoilMoisture,
		Temperature:  farm.FallbackTemperature,
		Rainfall:     farm.FallbackRainfall,
		CropHealth:   farm.FallbackCropHealth,
	}
	if v := r.SoilMoisture.Value; v != nil {
		seed.SoilMoisture = math.Round(*v * 100)
	}
	if v := r.Temperature.Value; v != nil {
		seed.Temperature = math.Round(*v)
	}
	if v := r.Rainfall.Value; v != nil {
		seed.Rainfall = math.Round(*v)
	}
	if v := r.NDVI.Value; v != nil {
		seed.CropHealth = math.Round(*v*100) / 100
	}
	return seed
}

// ReadingsUseCase exposes the current field measurements without touching any
// game, for the pre-game briefing screen.
type ReadingsUseCase struct {
	FieldData ports.FieldDataProvider
	Location  ports.Location
}

func (u ReadingsUseCase) Execute(ctx context.Context) (ReadingsResponse, error) {
	readings, err := u.FieldData.Readings(ctx, u.Location)
	if err != nil {
		return ReadingsResponse{}, err
	}
	return ReadingsResponse{
		Location: u.Location,
		Readings: readings,
		Seed:     SeedFromReadings(readings),
	}, nil
}
