package memory

import (
	"context"

	"farmatro/internal/domain/farm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, gameID string, events []farm.DomainEvent) error {
	r.store.events[gameID] = append(r.store.events[gameID], events...)
	return nil
}

func (r EventRepo) ListByGameID(_ context.Context, gameID string, limit int) ([]farm.DomainEvent, error) {
	events := r.store.events[gameID]
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	out := make([]farm.DomainEvent, len(events))
	copy(out, events)
	return out, nil
}
