package play

import (
	"context"
	"errors"
	"strings"
	"time"

	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

var (
	ErrInvalidRequest = errors.New("invalid play request")
)

// UseCase applies one of the three in-game transitions. Each execution loads
// the aggregate, runs the transition and saves the result under the loaded
// version, all inside one transaction.
type UseCase struct {
	TxManager ports.TxManager
	GameRepo  ports.GameRepository
	EventRepo ports.EventRepository
	Metrics   ports.ActionMetrics
	Rounds    *farm.RoundService
	Now       func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.GameID = strings.TrimSpace(req.GameID)
	req.Intent.Type = IntentType(strings.TrimSpace(string(req.Intent.Type)))
	if req.GameID == "" || !isSupportedIntentType(req.Intent.Type) {
		return Response{}, ErrInvalidRequest
	}

	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		game, err := u.GameRepo.GetByID(txCtx, req.GameID)
		if err != nil {
			return err
		}
		loadedVersion := game.Version

		var (
			updated farm.GameAggregate
			events  []farm.DomainEvent
			code    = farm.ResultOK
		)
		switch req.Intent.Type {
		case IntentPlay:
			updated, err = u.Rounds.ResolvePlay(game, req.Intent.CardInstanceIDs, nowFn())
		case IntentDiscard:
			updated, err = u.Rounds.DiscardCards(game, req.Intent.CardInstanceIDs, nowFn())
		case IntentAdvance:
			var settled farm.SettledRound
			settled, err = u.Rounds.AdvanceRound(game, nowFn())
			if err == nil {
				updated = settled.Updated
				events = settled.Events
				code = settled.ResultCode
			}
		}
		if err != nil {
			return err
		}

		if err := u.GameRepo.SaveWithVersion(txCtx, updated, loadedVersion); err != nil {
			return err
		}
		if len(events) > 0 {
			for i := range events {
				if events[i].Payload == nil {
					events[i].Payload = map[string]any{}
				}
				events[i].Payload["game_id"] = req.GameID
			}
			if err := u.EventRepo.Append(txCtx, req.GameID, events); err != nil {
				return err
			}
		}

		out = Response{Game: updated, Events: events, ResultCode: code}
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(out.ResultCode)
	}
	return out, nil
}

func isSupportedIntentType(t IntentType) bool {
	switch t {
	case IntentPlay, IntentDiscard, IntentAdvance:
		return true
	default:
		return false
	}
}
