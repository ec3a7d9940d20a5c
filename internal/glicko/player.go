package glicko

import (
	"fmt"
	"math"
)

// Rating is a player's standing on the public scale.
type Rating struct {
	Rating     float64
	Deviation  float64
	Volatility float64
}

// Interval is the 95% confidence interval around the rating.
func (r Rating) Interval() (low float64, high float64) {
	return r.Rating - 1.96*r.Deviation, r.Rating + 1.96*r.Deviation
}

func (r Rating) String() string {
	return fmt.Sprintf("%.2f ±%.2f (σ %.5f)", r.Rating, r.Deviation, r.Volatility)
}

// player holds Glicko-2 scale values. The new* fields stage the next period's
// values so other players computed in the same period still see the old ones.
type player struct {
	rating     float64
	deviation  float64
	volatility float64

	newRating     float64
	newDeviation  float64
	newVolatility float64
}

func newPlayer(rating, deviation, volatility float64) player {
	return player{
		rating:        rating,
		deviation:     deviation,
		volatility:    volatility,
		newRating:     rating,
		newDeviation:  deviation,
		newVolatility: volatility,
	}
}

func playerFromRating(r Rating) player {
	return newPlayer(RatingToInternal(r.Rating), DeviationToInternal(r.Deviation), r.Volatility)
}

func (p *player) stage(rating, deviation, volatility float64) {
	p.newRating = rating
	p.newDeviation = deviation
	p.newVolatility = volatility
}

func (p *player) adoptNewValues() {
	p.rating = p.newRating
	p.deviation = p.newDeviation
	p.volatility = p.newVolatility
}

func (p player) public() Rating {
	return Rating{
		Rating:     RatingFromInternal(p.rating),
		Deviation:  DeviationFromInternal(p.deviation),
		Volatility: p.volatility,
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func validateRating(r Rating) bool {
	return isFinite(r.Rating) && isFinite(r.Deviation) && isFinite(r.Volatility) &&
		r.Deviation > 0 && r.Volatility > 0
}
