package observe

import (
	"context"
	"errors"
	"strings"

	"farmatro/internal/app/ports"
	"farmatro/internal/app/shared/stateview"
	"farmatro/internal/domain/farm"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	GameRepo ports.GameRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	game, err := u.GameRepo.GetByID(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	limit := farm.DiscardLimit(game.Metrics.Sustainability)
	left := limit - game.DiscardsUsedThisRound
	if left < 0 {
		left = 0
	}

	resp := Response{
		Game:             game,
		MoistureStatus:   stateview.MoistureStatus(game.Metrics.SoilMoisture),
		CropHealthStatus: stateview.CropHealthStatus(game.Metrics.CropHealth),
		HazardForecast:   toHazardFeedback(stateview.EstimateRecurrentDamage(game.Metrics)),
		DiscardLimit:     limit,
		DiscardsLeft:     left,
	}
	if game.Phase == farm.PhaseResults {
		results := farm.ComputeResults(game)
		resp.Results = &results
	}
	return resp, nil
}

func toHazardFeedback(in stateview.HazardForecast) HazardFeedback {
	return HazardFeedback{
		IsLosingGround:     in.IsLosingGround,
		ProductivityLoss:   in.ProductivityLoss,
		SustainabilityLoss: in.SustainabilityLoss,
		Causes:             in.Causes,
	}
}
