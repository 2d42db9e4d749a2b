package ports

import (
	"context"

	"farmatro/internal/domain/farm"
)

type GameRepository interface {
	GetByID(ctx context.Context, gameID string) (farm.GameAggregate, error)
	// SaveWithVersion persists the aggregate only if the stored version still
	// matches expectedVersion; expectedVersion 0 creates a new row.
	SaveWithVersion(ctx context.Context, game farm.GameAggregate, expectedVersion int64) error
}

type EventRepository interface {
	Append(ctx context.Context, gameID string, events []farm.DomainEvent) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]farm.DomainEvent, error)
}
