package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	. "github.com/cricklet/glicko2/internal/helpers"
	"github.com/joho/godotenv"
)

type Config struct {
	Tau        float64
	Volatility float64
	Top        int
	Debug      bool
}

var Defaults = Config{
	Tau:        0.5,
	Volatility: 0.06,
	Top:        10,
	Debug:      false,
}

// Load reads the given .env files (".env" when none are given) into the
// environment, then builds the Config from it. Missing files are fine;
// variables already set in the environment win over the files.
func Load(filenames ...string) (Config, Error) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, filename := range filenames {
		err := godotenv.Load(filename)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, Errorf("loading %v: %w", filename, err)
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, Error) {
	c := Defaults
	var err Error

	c.Tau, err = floatVar(getenv, "GLICKO_TAU", c.Tau)
	if !IsNil(err) {
		return c, err
	}
	c.Volatility, err = floatVar(getenv, "GLICKO_VOLATILITY", c.Volatility)
	if !IsNil(err) {
		return c, err
	}
	if value := strings.TrimSpace(getenv("GLICKO_TOP")); value != "" {
		c.Top, err = ParseInt(value)
		if !IsNil(err) {
			return c, Errorf("GLICKO_TOP: %w", err)
		}
	}
	if value := strings.TrimSpace(getenv("GLICKO_DEBUG")); value != "" {
		c.Debug, err = WrapReturn(strconv.ParseBool(value))
		if !IsNil(err) {
			return c, Errorf("GLICKO_DEBUG: %w", err)
		}
	}

	return c, c.Validate()
}

func floatVar(getenv func(string) string, name string, fallback float64) (float64, Error) {
	value := strings.TrimSpace(getenv(name))
	if value == "" {
		return fallback, NilError
	}
	f, err := ParseFloat(value)
	if !IsNil(err) {
		return fallback, Errorf("%v: %w", name, err)
	}
	return f, NilError
}

func (c Config) Validate() Error {
	if c.Tau <= 0 {
		return Errorf("GLICKO_TAU must be positive, got %v", c.Tau)
	}
	if c.Volatility <= 0 {
		return Errorf("GLICKO_VOLATILITY must be positive, got %v", c.Volatility)
	}
	if c.Top <= 0 {
		return Errorf("GLICKO_TOP must be positive, got %v", c.Top)
	}
	return NilError
}
