package memory

import (
	"sync"

	"farmatro/internal/domain/farm"
)

type Store struct {
	mu     sync.RWMutex
	games  map[string]farm.GameAggregate
	events map[string][]farm.DomainEvent
}

func NewStore() *Store {
	return &Store{
		games:  make(map[string]farm.GameAggregate),
		events: make(map[string][]farm.DomainEvent),
	}
}

func (s *Store) SeedGame(game farm.GameAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.GameID] = game
}
