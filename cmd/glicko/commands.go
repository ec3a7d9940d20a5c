package main

import (
	"fmt"

	"github.com/cricklet/glicko2/internal/config"
	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/cricklet/glicko2/internal/leaderboard"
	"github.com/cricklet/glicko2/internal/season"
	"github.com/cricklet/glicko2/internal/tournament"
)

func runExample(cfg config.Config) (*glicko.RatingSystem[string], Error) {
	system, err := glicko.NewRatingSystem[string](0.06, 0.5, systemOptions(cfg)...)
	if !IsNil(err) {
		return nil, err
	}

	players := []struct {
		id        string
		rating    float64
		deviation float64
	}{
		{"player1", 1500, 200},
		{"player2", 1400, 30},
		{"player3", 1550, 100},
		{"player4", 1700, 300},
	}
	for _, p := range players {
		err = system.CreatePlayerWith(p.id, p.rating, p.deviation, 0.06)
		if !IsNil(err) {
			return nil, err
		}
	}

	system.AddGame("player1", "player2", glicko.Player1Win)
	system.AddGame("player1", "player3", glicko.Player2Win)
	system.AddGame("player1", "player4", glicko.Player2Win)

	fmt.Println(HintText("before"))
	printTable(system, nil, len(players))

	baseline := leaderboard.NewEloBaseline[string]()
	baseline.RecordAll(system.PendingGames())
	system.ComputeRatings()

	fmt.Println(HintText("after one rating period"))
	printTable(system, baseline, len(players))
	return system, NilError
}

func runReplay(cfg config.Config, args []string) (*glicko.RatingSystem[string], Error) {
	if len(args) == 0 {
		return nil, Errorf("replay needs a season file")
	}

	s, err := season.Load(args[0])
	if !IsNil(err) {
		return nil, err
	}
	system, err := s.NewSystem(cfg.Volatility, cfg.Tau, systemOptions(cfg)...)
	if !IsNil(err) {
		return nil, err
	}

	baseline := leaderboard.NewEloBaseline[string]()
	progress := CreateProgressBar(len(s.Periods), "periods")
	err = s.Replay(system, func(i int, games []glicko.Game[string]) {
		baseline.RecordAll(games)
		progress.Add(1)
	})
	progress.Close()
	if !IsNil(err) {
		return nil, err
	}

	logger.Printf("replayed %d periods for %d players\n", len(s.Periods), system.NumPlayers())
	printTable(system, baseline, cfg.Top)
	return system, NilError
}

func intArg(args []string, key string, fallback int) (int, Error) {
	value := ArgValue(args, key)
	if value.IsEmpty() {
		return fallback, NilError
	}
	n, err := ParseInt(value.Value())
	if !IsNil(err) {
		return 0, Errorf("%v: %w", key, err)
	}
	if n <= 0 {
		return 0, Errorf("%v must be positive, got %d", key, n)
	}
	return n, NilError
}

func runSimulation(cfg config.Config, args []string) (*glicko.RatingSystem[string], Error) {
	players, err := intArg(args, "players", 8)
	if !IsNil(err) {
		return nil, err
	}
	periods, err := intArg(args, "periods", 20)
	if !IsNil(err) {
		return nil, err
	}
	seed, err := intArg(args, "seed", 1)
	if !IsNil(err) {
		return nil, err
	}

	system, err := glicko.NewRatingSystem[string](cfg.Volatility, cfg.Tau, systemOptions(cfg)...)
	if !IsNil(err) {
		return nil, err
	}
	strengths := tournament.Strengths(players, 1500, 400)
	t, err := tournament.New(system, strengths, int64(seed))
	if !IsNil(err) {
		return nil, err
	}

	baseline := leaderboard.NewEloBaseline[string]()
	t.Run(periods, CreateProgressBar(periods, "periods"), func(i int, games []glicko.Game[string]) {
		baseline.RecordAll(games)
	})

	logger.Printf("simulated %d periods, %d games each\n", periods, t.NumGamesPerPeriod())
	printTable(system, baseline, cfg.Top)
	return system, NilError
}
