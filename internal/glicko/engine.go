package glicko

import "math"

// outcome is one game seen from the rated player's side.
type outcome struct {
	g     float64 // weight of the opponent's deviation
	e     float64 // expected score
	score float64
}

func g(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

func expectedScore(mu, opponentMu, opponentG float64) float64 {
	return 1 / (1 + math.Exp(-opponentG*(mu-opponentMu)))
}

// outcomesFor resolves the opponents of id in games. Games against players
// that are no longer in the store are skipped.
func (r *RatingSystem[ID]) outcomesFor(id ID, p player, games []Game[ID]) []outcome {
	outcomes := make([]outcome, 0, len(games))
	for _, game := range games {
		opponentID, score := game.scoreFor(id)
		opponent, ok := r.players.get(opponentID)
		if !ok {
			continue
		}
		gj := g(opponent.deviation)
		outcomes = append(outcomes, outcome{
			g:     gj,
			e:     expectedScore(p.rating, opponent.rating, gj),
			score: score,
		})
	}
	return outcomes
}

type periodResult struct {
	rating     float64
	deviation  float64
	volatility float64

	variance   float64
	delta      float64
	iterations int
}

// ratePeriod computes a player's next values from the games of one period.
// Without games only the deviation grows.
func ratePeriod(p player, outcomes []outcome, tau float64) periodResult {
	inactive := periodResult{
		rating:     p.rating,
		deviation:  math.Sqrt(p.deviation*p.deviation + p.volatility*p.volatility),
		volatility: p.volatility,
	}
	if len(outcomes) == 0 {
		return inactive
	}

	sumInformation := 0.0
	sumImprovement := 0.0
	for _, o := range outcomes {
		sumInformation += o.g * o.g * o.e * (1 - o.e)
		sumImprovement += o.g * (o.score - o.e)
	}
	if sumInformation == 0 {
		// every expected score rounded to exactly 0 or 1
		return inactive
	}
	v := 1 / sumInformation
	delta := v * sumImprovement

	volatility, iterations := SolveVolatility(VolatilityParams{
		Delta:      delta,
		Deviation:  p.deviation,
		Variance:   v,
		Volatility: p.volatility,
		Tau:        tau,
	})

	phiStar := math.Sqrt(p.deviation*p.deviation + volatility*volatility)
	deviation := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	rating := p.rating + deviation*deviation*delta/v

	return periodResult{
		rating:     rating,
		deviation:  deviation,
		volatility: volatility,
		variance:   v,
		delta:      delta,
		iterations: iterations,
	}
}
