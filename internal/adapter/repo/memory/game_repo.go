package memory

import (
	"context"

	"farmatro/internal/app/ports"
	"farmatro/internal/domain/farm"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) GetByID(_ context.Context, gameID string) (farm.GameAggregate, error) {
	game, ok := r.store.games[gameID]
	if !ok {
		return farm.GameAggregate{}, ports.ErrNotFound
	}
	return game, nil
}

func (r GameRepo) SaveWithVersion(_ context.Context, game farm.GameAggregate, expectedVersion int64) error {
	current, ok := r.store.games[game.GameID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[game.GameID] = game
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[game.GameID] = game
	return nil
}
