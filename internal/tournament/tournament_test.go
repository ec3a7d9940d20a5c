package tournament

import (
	"testing"

	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTournament(t *testing.T, players int, seed int64) (*Tournament, *glicko.RatingSystem[string]) {
	system, err := glicko.NewRatingSystem[string](0.06, 0.5)
	require.True(t, IsNil(err), err)

	tournament, err := New(system, Strengths(players, 1500, 400), seed)
	require.True(t, IsNil(err), err)
	return tournament, system
}

func TestStrengths(t *testing.T) {
	strengths := Strengths(3, 1500, 200)
	assert.Equal(t, map[string]float64{
		"player01": 1300,
		"player02": 1500,
		"player03": 1700,
	}, strengths)

	assert.Equal(t, map[string]float64{"player01": 1500}, Strengths(1, 1500, 200))
	assert.Contains(t, Strengths(120, 1500, 200), "player120")
	assert.Contains(t, Strengths(120, 1500, 200), "player007")
}

func TestPlayPeriod(t *testing.T) {
	tournament, system := newTournament(t, 5, 1)
	assert.Equal(t, 5, system.NumPlayers())
	assert.Equal(t, 10, tournament.NumGamesPerPeriod())

	games := tournament.PlayPeriod()
	assert.Len(t, games, 10)
	assert.Equal(t, 0, system.NumPendingGames())

	played := map[string]int{}
	for _, game := range games {
		assert.NotEqual(t, game.Player1, game.Player2)
		played[game.Player1]++
		played[game.Player2]++
	}
	for _, id := range system.PlayerIDs() {
		assert.Equal(t, 4, played[id], id)
	}
}

func TestSameSeedSameRatings(t *testing.T) {
	a, systemA := newTournament(t, 6, 42)
	b, systemB := newTournament(t, 6, 42)

	a.Run(5, SilentProgressBar, nil)
	b.Run(5, SilentProgressBar, nil)

	assert.Equal(t, systemA.Snapshot(), systemB.Snapshot())
}

func TestRatingsFollowStrength(t *testing.T) {
	tournament, system := newTournament(t, 6, 7)

	periods := 0
	tournament.Run(40, SilentProgressBar, func(i int, games []glicko.Game[string]) {
		assert.Equal(t, periods, i)
		periods++
	})
	assert.Equal(t, 40, periods)

	weakest, err := system.Get("player01")
	assert.True(t, IsNil(err), err)
	strongest, err := system.Get("player06")
	assert.True(t, IsNil(err), err)

	assert.Greater(t, strongest.Rating, weakest.Rating)
	assert.Less(t, strongest.Deviation, 350.0)
}

func TestExistingPlayersAreKept(t *testing.T) {
	system, err := glicko.NewRatingSystem[string](0.06, 0.5)
	require.True(t, IsNil(err), err)
	require.True(t, IsNil(system.CreatePlayerWith("player01", 2000, 50, 0.06)))

	_, err = New(system, Strengths(2, 1500, 100), 1)
	assert.True(t, IsNil(err), err)

	rating, err := system.GetRating("player01")
	assert.True(t, IsNil(err), err)
	assert.InDelta(t, 2000, rating, 1e-9)
	assert.Equal(t, 2, system.NumPlayers())
}

func TestSinglePlayerHasNoGames(t *testing.T) {
	tournament, _ := newTournament(t, 1, 1)
	assert.Equal(t, 0, tournament.NumGamesPerPeriod())
	assert.Len(t, tournament.PlayPeriod(), 0)
}
