package leaderboard

import (
	"github.com/cricklet/glicko2/internal/glicko"
	elo "github.com/kortemy/elo-go"
)

const initialElo = 1500

// EloBaseline rates the same games with plain Elo, one game at a time, so
// Glicko-2 ratings can be compared against it.
type EloBaseline[ID comparable] struct {
	e       *elo.Elo
	ratings map[ID]int
	games   map[ID]int
}

func NewEloBaseline[ID comparable]() *EloBaseline[ID] {
	return &EloBaseline[ID]{
		e:       elo.NewElo(),
		ratings: map[ID]int{},
		games:   map[ID]int{},
	}
}

func (b *EloBaseline[ID]) Rating(id ID) int {
	if rating, ok := b.ratings[id]; ok {
		return rating
	}
	return initialElo
}

func (b *EloBaseline[ID]) Games(id ID) int {
	return b.games[id]
}

func (b *EloBaseline[ID]) Record(game glicko.Game[ID]) {
	if game.Player1 == game.Player2 {
		return
	}

	score := 0.5
	switch game.Result {
	case glicko.Player1Win:
		score = 1
	case glicko.Player2Win:
		score = 0
	}

	outcome1, outcome2 := b.e.Outcome(b.Rating(game.Player1), b.Rating(game.Player2), score)
	b.ratings[game.Player1] = outcome1.Rating
	b.ratings[game.Player2] = outcome2.Rating
	b.games[game.Player1]++
	b.games[game.Player2]++
}

func (b *EloBaseline[ID]) RecordAll(games []glicko.Game[ID]) {
	for _, game := range games {
		b.Record(game)
	}
}
