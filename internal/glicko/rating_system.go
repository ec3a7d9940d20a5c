// Package glicko rates players with the Glicko-2 system.
//
// A RatingSystem collects the games of a rating period and updates every
// player at once in ComputeRatings. Each player's update depends only on the
// state before the period, so neither the order of games nor the order of
// players changes the result.
//
// A RatingSystem is not safe for concurrent use.
package glicko

import (
	. "github.com/cricklet/glicko2/internal/helpers"
)

type options struct {
	logger Logger
}

type Option func(*options)

// WithLogger receives one line per player rated by ComputeRatings.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

type RatingSystem[ID comparable] struct {
	players playerStore[ID]
	games   GameLog[ID]

	defaultVolatility float64
	tau               float64

	logger Logger
}

// NewRatingSystem creates an empty system. defaultVolatility is given to
// players created without explicit values (typically 0.06); tau constrains how
// fast volatility changes (typically 0.3 to 1.2).
func NewRatingSystem[ID comparable](defaultVolatility float64, tau float64, opts ...Option) (*RatingSystem[ID], Error) {
	if !isFinite(defaultVolatility) || defaultVolatility <= 0 {
		return nil, Errorf("%w: default volatility %v must be positive", ErrInvalidParameter, defaultVolatility)
	}
	if !isFinite(tau) || tau <= 0 {
		return nil, Errorf("%w: tau %v must be positive", ErrInvalidParameter, tau)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = &SilentLogger
	}

	return &RatingSystem[ID]{
		players:           newPlayerStore[ID](),
		defaultVolatility: defaultVolatility,
		tau:               tau,
		logger:            o.logger,
	}, NilError
}

func (r *RatingSystem[ID]) Tau() float64 {
	return r.tau
}

func (r *RatingSystem[ID]) DefaultVolatility() float64 {
	return r.defaultVolatility
}

// CreatePlayer adds a player at 1500 ±350 with the default volatility.
func (r *RatingSystem[ID]) CreatePlayer(id ID) Error {
	return r.players.create(id, playerFromRating(Rating{
		Rating:     InitialRating,
		Deviation:  InitialDeviation,
		Volatility: r.defaultVolatility,
	}))
}

// CreatePlayerWith adds a player with public-scale rating and deviation.
func (r *RatingSystem[ID]) CreatePlayerWith(id ID, rating, deviation, volatility float64) Error {
	initial := Rating{Rating: rating, Deviation: deviation, Volatility: volatility}
	if !validateRating(initial) {
		return Errorf("%w: %v for %v", ErrInvalidParameter, initial, id)
	}
	return r.players.create(id, playerFromRating(initial))
}

func (r *RatingSystem[ID]) RemovePlayer(id ID) Error {
	return r.players.remove(id)
}

func (r *RatingSystem[ID]) HasPlayer(id ID) bool {
	_, ok := r.players.get(id)
	return ok
}

func (r *RatingSystem[ID]) NumPlayers() int {
	return r.players.len()
}

// PlayerIDs lists players in creation order.
func (r *RatingSystem[ID]) PlayerIDs() []ID {
	return r.players.ids()
}

func (r *RatingSystem[ID]) Get(id ID) (Rating, Error) {
	p, err := r.players.lookup(id)
	if !IsNil(err) {
		return Rating{}, err
	}
	return p.public(), NilError
}

func (r *RatingSystem[ID]) GetRating(id ID) (float64, Error) {
	rating, err := r.Get(id)
	return rating.Rating, err
}

func (r *RatingSystem[ID]) GetDeviation(id ID) (float64, Error) {
	rating, err := r.Get(id)
	return rating.Deviation, err
}

func (r *RatingSystem[ID]) GetVolatility(id ID) (float64, Error) {
	rating, err := r.Get(id)
	return rating.Volatility, err
}

func (r *RatingSystem[ID]) Snapshot() map[ID]Rating {
	result := make(map[ID]Rating, r.players.len())
	for _, id := range r.players.ids() {
		p, _ := r.players.get(id)
		result[id] = p.public()
	}
	return result
}

// AddGame records a game for the current period. Players are not checked
// here; games against a missing opponent are ignored by ComputeRatings.
func (r *RatingSystem[ID]) AddGame(player1 ID, player2 ID, result GameResult) {
	r.games.Add(Game[ID]{Player1: player1, Player2: player2, Result: result})
}

func (r *RatingSystem[ID]) NumPendingGames() int {
	return r.games.Len()
}

func (r *RatingSystem[ID]) PendingGames() []Game[ID] {
	return r.games.Games()
}

// ComputeRatings closes the rating period: every player is rated against the
// pre-period state of the population, then all new values are adopted and
// the pending games are discarded.
func (r *RatingSystem[ID]) ComputeRatings() {
	gamesByPlayer := r.games.byPlayer()

	for _, id := range r.players.ids() {
		p, _ := r.players.get(id)
		outcomes := r.outcomesFor(id, p, gamesByPlayer[id])

		result := ratePeriod(p, outcomes, r.tau)
		p.stage(result.rating, result.deviation, result.volatility)
		r.players.put(id, p)

		if len(outcomes) > 0 {
			r.logger.Printf("%v: %d games, v=%.5f Δ=%.5f, σ'=%.6f after %d iterations\n",
				id, len(outcomes), result.variance, result.delta, result.volatility, result.iterations)
		}
	}

	r.players.adoptNewValues()
	r.games.Clear()
}
