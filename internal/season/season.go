// Package season reads a season file (players and the games of each rating
// period) and replays it through a rating system.
package season

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
)

var ErrUnknownResult = errors.New("unknown game result")

type Player struct {
	ID         string   `json:"id"`
	Rating     *float64 `json:"rating,omitempty"`
	Deviation  *float64 `json:"deviation,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
}

type Game struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
	Result  string `json:"result"`
}

type Season struct {
	Tau        *float64 `json:"tau,omitempty"`
	Volatility *float64 `json:"volatility,omitempty"`
	Players    []Player `json:"players"`
	Periods    [][]Game `json:"periods"`
}

func ParseResult(s string) (glicko.GameResult, Error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1-0", "player1", "win":
		return glicko.Player1Win, NilError
	case "1/2-1/2", "½-½", "draw", "tie":
		return glicko.Draw, NilError
	case "0-1", "player2", "loss":
		return glicko.Player2Win, NilError
	}
	return glicko.Draw, Errorf("%w: %q", ErrUnknownResult, s)
}

func Parse(input []byte) (*Season, Error) {
	s := &Season{}
	err := json.Unmarshal(input, s)
	if !IsNil(err) {
		return nil, Wrap(err)
	}
	return s, s.validate()
}

func Load(path string) (*Season, Error) {
	input, err := os.ReadFile(path)
	if !IsNil(err) {
		return nil, Wrap(err)
	}
	return Parse(input)
}

func (s *Season) validate() Error {
	for i, period := range s.Periods {
		for _, game := range period {
			_, err := ParseResult(game.Result)
			if !IsNil(err) {
				return Errorf("period %d, %v vs %v: %w", i+1, game.Player1, game.Player2, err)
			}
		}
	}
	return NilError
}

// NewSystem creates a rating system with the season's tau and volatility,
// falling back to the given defaults.
func (s *Season) NewSystem(defaultVolatility, defaultTau float64, opts ...glicko.Option) (*glicko.RatingSystem[string], Error) {
	volatility := defaultVolatility
	if s.Volatility != nil {
		volatility = *s.Volatility
	}
	tau := defaultTau
	if s.Tau != nil {
		tau = *s.Tau
	}
	return glicko.NewRatingSystem[string](volatility, tau, opts...)
}

func (s *Season) createPlayers(system *glicko.RatingSystem[string]) Error {
	for _, p := range s.Players {
		if p.Rating == nil && p.Deviation == nil && p.Volatility == nil {
			if err := system.CreatePlayer(p.ID); !IsNil(err) {
				return err
			}
			continue
		}

		rating, deviation, volatility := glicko.InitialRating, glicko.InitialDeviation, system.DefaultVolatility()
		if p.Rating != nil {
			rating = *p.Rating
		}
		if p.Deviation != nil {
			deviation = *p.Deviation
		}
		if p.Volatility != nil {
			volatility = *p.Volatility
		}
		if err := system.CreatePlayerWith(p.ID, rating, deviation, volatility); !IsNil(err) {
			return err
		}
	}
	return NilError
}

// Period converts the games of period i.
func (s *Season) Period(i int) ([]glicko.Game[string], Error) {
	games := []glicko.Game[string]{}
	for _, game := range s.Periods[i] {
		result, err := ParseResult(game.Result)
		if !IsNil(err) {
			return nil, err
		}
		games = append(games, glicko.Game[string]{Player1: game.Player1, Player2: game.Player2, Result: result})
	}
	return games, NilError
}

// Replay creates the season's players in system and rates each period in
// turn. onPeriod, if set, runs after every period with that period's games.
func (s *Season) Replay(system *glicko.RatingSystem[string], onPeriod func(i int, games []glicko.Game[string])) Error {
	err := s.createPlayers(system)
	if !IsNil(err) {
		return err
	}

	for i := range s.Periods {
		games, err := s.Period(i)
		if !IsNil(err) {
			return err
		}
		for _, game := range games {
			system.AddGame(game.Player1, game.Player2, game.Result)
		}
		system.ComputeRatings()

		if onPeriod != nil {
			onPeriod(i, games)
		}
	}
	return NilError
}
