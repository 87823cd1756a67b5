package aoc

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the runner configuration. It is read from the environment,
// which may be seeded from a .env file in the working directory.
type Config struct {
	// InputDir holds the real inputs, one day{N}.txt per day.
	InputDir string
	LogLevel string
}

const (
	defaultInputDir = "resources"
	defaultLogLevel = "info"
)

// LoadConfig loads .env if present and reads AOC_INPUT_DIR and
// AOC_LOG_LEVEL. Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return configFromEnv(os.Getenv), nil
}

func configFromEnv(getenv func(string) string) Config {
	return Config{
		InputDir: Or(strings.TrimSpace(getenv("AOC_INPUT_DIR")), defaultInputDir),
		LogLevel: Or(strings.ToLower(strings.TrimSpace(getenv("AOC_LOG_LEVEL"))), defaultLogLevel),
	}
}
