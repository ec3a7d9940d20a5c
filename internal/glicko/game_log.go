package glicko

import "fmt"

type GameResult int

const (
	Player1Win GameResult = iota
	Draw
	Player2Win
)

func (r GameResult) String() string {
	switch r {
	case Player1Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Player2Win:
		return "0-1"
	}
	return fmt.Sprintf("GameResult(%d)", int(r))
}

// Inverted is the same result seen with the players swapped.
func (r GameResult) Inverted() GameResult {
	switch r {
	case Player1Win:
		return Player2Win
	case Player2Win:
		return Player1Win
	}
	return r
}

type Game[ID comparable] struct {
	Player1 ID
	Player2 ID
	Result  GameResult
}

func (g Game[ID]) String() string {
	return fmt.Sprintf("%v %v %v", g.Player1, g.Result, g.Player2)
}

// Swapped describes the same game with the sides exchanged.
func (g Game[ID]) Swapped() Game[ID] {
	return Game[ID]{Player1: g.Player2, Player2: g.Player1, Result: g.Result.Inverted()}
}

// scoreFor returns the opponent of id and id's score: 1 win, 0.5 draw, 0 loss.
func (g Game[ID]) scoreFor(id ID) (ID, float64) {
	score := 0.5
	switch g.Result {
	case Player1Win:
		score = 1
	case Player2Win:
		score = 0
	}
	if id == g.Player1 {
		return g.Player2, score
	}
	return g.Player1, 1 - score
}

// GameLog holds the games of the current rating period.
type GameLog[ID comparable] struct {
	games []Game[ID]
}

func (l *GameLog[ID]) Add(game Game[ID]) {
	l.games = append(l.games, game)
}

func (l *GameLog[ID]) Len() int {
	return len(l.games)
}

func (l *GameLog[ID]) Games() []Game[ID] {
	return append([]Game[ID]{}, l.games...)
}

func (l *GameLog[ID]) Clear() {
	l.games = nil
}

// byPlayer groups games under each participant. A game against oneself
// says nothing about strength and is left out.
func (l *GameLog[ID]) byPlayer() map[ID][]Game[ID] {
	result := map[ID][]Game[ID]{}
	for _, game := range l.games {
		if game.Player1 == game.Player2 {
			continue
		}
		result[game.Player1] = append(result[game.Player1], game)
		result[game.Player2] = append(result[game.Player2], game)
	}
	return result
}
