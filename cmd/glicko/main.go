package main

import (
	"fmt"
	"os"

	"github.com/cricklet/glicko2/internal/config"
	"github.com/cricklet/glicko2/internal/glicko"
	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/cricklet/glicko2/internal/leaderboard"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/profile"
)

const usage = `usage: glicko <command> [args] [profile] [dump]

commands:
  example                      rate the four-player example from the Glicko-2 paper
  replay <season.json>         replay a season file, one rating period at a time
  simulate [players=8] [periods=20] [seed=1]
                               simulate round-robin periods between players of known strength

switches:
  profile   write a cpu profile to ./data/profile
  dump      dump the final ratings

environment (also read from .env): GLICKO_TAU, GLICKO_VOLATILITY, GLICKO_TOP, GLICKO_DEBUG
`

var logger Logger = &DefaultLogger

func main() {
	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("data/profile"), profile.Quiet)
		defer p.Stop()
	}
	dump := Contains(args, "dump")
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile" && arg != "dump"
	})

	if len(args) == 0 || args[0] == "help" {
		fmt.Print(usage)
		return
	}

	cfg, err := config.Load()
	if !IsNil(err) {
		logger.Println(err.String())
		os.Exit(1)
	}

	var system *glicko.RatingSystem[string]
	switch args[0] {
	case "example":
		system, err = runExample(cfg)
	case "replay":
		system, err = runReplay(cfg, args[1:])
	case "simulate":
		system, err = runSimulation(cfg, args[1:])
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
	if !IsNil(err) {
		logger.Println(err.String())
		os.Exit(1)
	}

	if dump {
		spew.Dump(system.Snapshot())
	}
}

func systemOptions(cfg config.Config) []glicko.Option {
	return []glicko.Option{
		glicko.WithLogger(DebugLogger(cfg.Debug)),
	}
}

func printTable(system *glicko.RatingSystem[string], baseline *leaderboard.EloBaseline[string], top int) {
	rows := leaderboard.Rows(system)
	if baseline != nil {
		rows = leaderboard.WithElo(rows, baseline)
	}
	fmt.Print(leaderboard.Render(leaderboard.Top(rows, top), leaderboard.RenderOptions{
		ShowElo: baseline != nil,
		Color:   true,
	}))
}
