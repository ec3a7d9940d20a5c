// Package leaderboard turns a rating system into ranked, printable rows.
package leaderboard

import (
	"sort"

	"github.com/bluele/psort"
	"github.com/cricklet/glicko2/internal/glicko"
)

type Row[ID comparable] struct {
	ID         ID
	Rating     float64
	Deviation  float64
	Volatility float64
	Low        float64
	High       float64
	Elo        int
}

// Rows lists every player in creation order with a 95% interval.
func Rows[ID comparable](system *glicko.RatingSystem[ID]) []Row[ID] {
	snapshot := system.Snapshot()
	rows := make([]Row[ID], 0, len(snapshot))
	for _, id := range system.PlayerIDs() {
		rating := snapshot[id]
		low, high := rating.Interval()
		rows = append(rows, Row[ID]{
			ID:         id,
			Rating:     rating.Rating,
			Deviation:  rating.Deviation,
			Volatility: rating.Volatility,
			Low:        low,
			High:       high,
		})
	}
	return rows
}

func better[ID comparable](a, b Row[ID]) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Deviation < b.Deviation
}

// Top returns the n best rows, best first. rows is reordered in place.
func Top[ID comparable](rows []Row[ID], n int) []Row[ID] {
	if n <= 0 {
		return []Row[ID]{}
	}
	less := func(i, j int) bool {
		return better(rows[i], rows[j])
	}
	if n >= len(rows) {
		sort.Slice(rows, less)
		return rows
	}
	psort.Slice(rows, less, n)
	return rows[:n]
}

// WithElo fills the Elo column from a baseline.
func WithElo[ID comparable](rows []Row[ID], baseline *EloBaseline[ID]) []Row[ID] {
	for i := range rows {
		rows[i].Elo = baseline.Rating(rows[i].ID)
	}
	return rows
}
