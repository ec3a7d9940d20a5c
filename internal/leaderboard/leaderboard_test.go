package leaderboard

import (
	"strings"
	"testing"

	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSystem(t *testing.T) *glicko.RatingSystem[string] {
	system, err := glicko.NewRatingSystem[string](0.06, 0.5)
	require.True(t, IsNil(err), err)

	players := []struct {
		id        string
		rating    float64
		deviation float64
	}{
		{"carol", 1550, 100},
		{"alice", 1700, 300},
		{"dave", 1400, 30},
		{"bob", 1700, 50},
		{"erin", 1500, 200},
	}
	for _, p := range players {
		require.True(t, IsNil(system.CreatePlayerWith(p.id, p.rating, p.deviation, 0.06)))
	}
	return system
}

func TestRows(t *testing.T) {
	rows := Rows(testSystem(t))

	assert.Equal(t, []string{"carol", "alice", "dave", "bob", "erin"},
		MapSlice(rows, func(r Row[string]) string { return r.ID }))

	carol := rows[0]
	assert.InDelta(t, 1550, carol.Rating, 1e-9)
	assert.InDelta(t, 1550-196, carol.Low, 1e-9)
	assert.InDelta(t, 1550+196, carol.High, 1e-9)
	assert.Equal(t, 0.06, carol.Volatility)
}

func TestTop(t *testing.T) {
	tests := []struct {
		n        int
		expected []string
	}{
		{0, []string{}},
		{1, []string{"bob"}},
		{3, []string{"bob", "alice", "carol"}},
		{5, []string{"bob", "alice", "carol", "erin", "dave"}},
		{10, []string{"bob", "alice", "carol", "erin", "dave"}},
	}

	for _, test := range tests {
		rows := Top(Rows(testSystem(t)), test.n)
		assert.Equal(t, test.expected, MapSlice(rows, func(r Row[string]) string { return r.ID }), test.n)
	}
}

func TestEloBaseline(t *testing.T) {
	baseline := NewEloBaseline[string]()
	assert.Equal(t, 1500, baseline.Rating("alice"))

	baseline.Record(glicko.Game[string]{Player1: "alice", Player2: "bob", Result: glicko.Draw})
	assert.Equal(t, 1500, baseline.Rating("alice"))
	assert.Equal(t, 1500, baseline.Rating("bob"))

	baseline.RecordAll([]glicko.Game[string]{
		{Player1: "alice", Player2: "bob", Result: glicko.Player1Win},
		{Player1: "carol", Player2: "alice", Result: glicko.Player2Win},
		{Player1: "carol", Player2: "carol", Result: glicko.Player1Win},
	})
	assert.Greater(t, baseline.Rating("alice"), 1500)
	assert.Less(t, baseline.Rating("bob"), 1500)
	assert.Less(t, baseline.Rating("carol"), 1500)

	assert.Equal(t, 3, baseline.Games("alice"))
	assert.Equal(t, 2, baseline.Games("bob"))
	assert.Equal(t, 1, baseline.Games("carol"))

	rows := WithElo(Rows(testSystem(t)), baseline)
	assert.Equal(t, baseline.Rating("alice"), rows[1].Elo)
	assert.Equal(t, 1500, rows[2].Elo)
}

func TestRender(t *testing.T) {
	rows := Top(Rows(testSystem(t)), 2)
	table := Render(rows, RenderOptions{Width: 100})

	lines := strings.Split(strings.TrimSpace(table), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "rating")
	assert.NotContains(t, lines[0], "elo")
	assert.Contains(t, lines[1], "bob")
	assert.Contains(t, lines[1], "1,700.00")
	assert.Contains(t, lines[1], "[1,602.00, 1,798.00]")
	assert.Contains(t, lines[2], "alice")
	assert.Contains(t, lines[2], "0.06000")
}

func TestRenderFitsWidth(t *testing.T) {
	system, err := glicko.NewRatingSystem[string](0.06, 0.5)
	require.True(t, IsNil(err), err)
	require.True(t, IsNil(system.CreatePlayer(strings.Repeat("long-name-", 10))))

	for _, color := range []bool{false, true} {
		table := Render(Rows(system), RenderOptions{Width: 80, ShowElo: true, Color: color})
		for _, line := range strings.Split(strings.TrimSpace(table), "\n") {
			assert.LessOrEqual(t, VisibleWidth(line), 80, line)
		}
		assert.Contains(t, table, "…")
	}
}
