// Package tournament simulates round-robin rating periods between players of
// known hidden strength.
package tournament

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
	combinations "github.com/mxschmitt/golang-combinations"
)

// drawBand is the probability mass around the expected score that becomes a
// draw instead of a decisive result.
const drawBand = 0.2

type Tournament struct {
	system    *glicko.RatingSystem[string]
	strengths map[string]float64
	names     []string
	pairings  [][]string
	rng       *rand.Rand

	DrawBand float64
}

// New registers every player of strengths that the system does not know yet.
// strengths are on the public rating scale.
func New(system *glicko.RatingSystem[string], strengths map[string]float64, seed int64) (*Tournament, Error) {
	names := make([]string, 0, len(strengths))
	for name := range strengths {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if system.HasPlayer(name) {
			continue
		}
		if err := system.CreatePlayer(name); !IsNil(err) {
			return nil, err
		}
	}

	// with fewer than two players Combinations hands back smaller subsets
	pairings := FilterSlice(combinations.Combinations(names, 2), func(pair []string) bool {
		return len(pair) == 2
	})

	return &Tournament{
		system:    system,
		strengths: strengths,
		names:     names,
		pairings:  pairings,
		rng:       rand.New(rand.NewSource(seed)),
		DrawBand:  drawBand,
	}, NilError
}

func (t *Tournament) NumGamesPerPeriod() int {
	return len(t.pairings)
}

// winProbability follows the logistic Elo curve on hidden strengths.
func winProbability(strength, opponentStrength float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentStrength-strength)/400))
}

func (t *Tournament) play(player1, player2 string) glicko.GameResult {
	p := winProbability(t.strengths[player1], t.strengths[player2])
	u := t.rng.Float64()
	switch {
	case u < p-t.DrawBand/2:
		return glicko.Player1Win
	case u < p+t.DrawBand/2:
		return glicko.Draw
	}
	return glicko.Player2Win
}

// PlayPeriod plays every pairing once, rates the period and returns its games.
func (t *Tournament) PlayPeriod() []glicko.Game[string] {
	games := make([]glicko.Game[string], 0, len(t.pairings))
	for _, pair := range t.pairings {
		player1, player2 := pair[0], pair[1]
		if t.rng.Intn(2) == 0 {
			player1, player2 = player2, player1
		}
		game := glicko.Game[string]{Player1: player1, Player2: player2, Result: t.play(player1, player2)}
		t.system.AddGame(game.Player1, game.Player2, game.Result)
		games = append(games, game)
	}
	t.system.ComputeRatings()
	return games
}

// Run plays n periods. onPeriod, if set, sees each period's games after they
// were rated.
func (t *Tournament) Run(periods int, progress ProgressBar, onPeriod func(i int, games []glicko.Game[string])) {
	defer progress.Close()
	for i := 0; i < periods; i++ {
		games := t.PlayPeriod()
		if onPeriod != nil {
			onPeriod(i, games)
		}
		progress.Add(1)
	}
}

// Strengths spreads n players evenly over [center-spread, center+spread],
// naming them player01, player02, ...
func Strengths(n int, center, spread float64) map[string]float64 {
	result := map[string]float64{}
	for i := 0; i < n; i++ {
		strength := center
		if n > 1 {
			strength = center - spread + 2*spread*float64(i)/float64(n-1)
		}
		result[playerName(i+1, n)] = strength
	}
	return result
}

func playerName(i int, n int) string {
	digits := MaxInt(2, len(fmt.Sprint(n)))
	return fmt.Sprintf("player%0*d", digits, i)
}
