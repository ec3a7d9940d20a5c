package glicko

import (
	. "github.com/cricklet/glicko2/internal/helpers"
)

// playerStore maps ids to players. order keeps insertion order so that
// iteration, and everything printed from it, is deterministic.
type playerStore[ID comparable] struct {
	players map[ID]player
	order   []ID
}

func newPlayerStore[ID comparable]() playerStore[ID] {
	return playerStore[ID]{
		players: map[ID]player{},
		order:   []ID{},
	}
}

func (s *playerStore[ID]) create(id ID, p player) Error {
	if _, ok := s.players[id]; ok {
		return Errorf("%w: %v", ErrDuplicatePlayer, id)
	}
	s.players[id] = p
	s.order = append(s.order, id)
	return NilError
}

func (s *playerStore[ID]) remove(id ID) Error {
	if _, ok := s.players[id]; !ok {
		return Errorf("%w: %v", ErrPlayerNotFound, id)
	}
	delete(s.players, id)
	s.order = FilterSlice(s.order, func(other ID) bool {
		return other != id
	})
	return NilError
}

func (s *playerStore[ID]) get(id ID) (player, bool) {
	p, ok := s.players[id]
	return p, ok
}

func (s *playerStore[ID]) lookup(id ID) (player, Error) {
	p, ok := s.players[id]
	if !ok {
		return p, Errorf("%w: %v", ErrPlayerNotFound, id)
	}
	return p, NilError
}

func (s *playerStore[ID]) put(id ID, p player) {
	s.players[id] = p
}

func (s *playerStore[ID]) ids() []ID {
	return append([]ID{}, s.order...)
}

func (s *playerStore[ID]) len() int {
	return len(s.order)
}

func (s *playerStore[ID]) adoptNewValues() {
	for id, p := range s.players {
		p.adoptNewValues()
		s.players[id] = p
	}
}
