// Package config loads game settings from the environment, an optional .env file
// and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"labyrinth/pkg/game/generator"
)

// Environment variable names
const (
	EnvSize     = "LABYRINTH_SIZE"
	EnvStart    = "LABYRINTH_START"
	EnvEnd      = "LABYRINTH_END"
	EnvSeed     = "LABYRINTH_SEED"
	EnvLogLevel = "LABYRINTH_LOG_LEVEL"
	EnvNoColor  = "LABYRINTH_NO_COLOR"
	EnvReveal   = "LABYRINTH_REVEAL"
	EnvDump     = "LABYRINTH_DUMP"
)

// DefaultSize is the maze side length used when nothing else is configured
const DefaultSize = 5

// ErrInvalidConfig is returned for values that cannot be parsed
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings for one game
type Config struct {
	Size     int                   // Side length of the maze
	Start    generator.StartPolicy // Where the player starts
	End      generator.EndPolicy   // Which rooms are exits
	Seed     int64                 // Random seed, 0 picks one from the clock
	LogLevel log.Level             // Diagnostic log level (stderr)
	NoColor  bool                  // Disable coloured output
	Reveal   bool                  // Print the maze plan before playing
	Dump     string                // Write a debug dump of the maze here when the game ends
}

// LoadEnvFile loads a .env file from the working directory if there is one
func LoadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}
}

// Load parses args (without the program name) on top of the environment.
// Usage is printed to stderr when the flags are wrong or help is asked for.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv, os.Stderr)
}

func load(args []string, lookup func(string) (string, bool), usage io.Writer) (Config, error) {
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(usage)

	size := fs.Int("size", DefaultSize, "side length of the maze (at least 2) ["+EnvSize+"]")
	start := fs.String("start", generator.StartOrigin.String(), "start room: origin or center ["+EnvStart+"]")
	end := fs.String("end", generator.EndOppositeCorner.String(), "exit rooms: corner or border ["+EnvEnd+"]")
	seed := fs.Int64("seed", 0, "random seed, 0 for a new maze every run ["+EnvSeed+"]")
	level := fs.String("log-level", log.WarnLevel.String(), "diagnostic log level ["+EnvLogLevel+"]")
	noColor := fs.Bool("no-color", false, "disable coloured output ["+EnvNoColor+"]")
	reveal := fs.Bool("reveal", false, "print the maze plan before playing ["+EnvReveal+"]")
	dump := fs.String("dump", "", "write a debug dump of the maze to this file when the game ends ["+EnvDump+"]")

	// Environment values become the flag defaults, so explicit flags still win.
	envs := []struct{ name, env string }{
		{"size", EnvSize},
		{"start", EnvStart},
		{"end", EnvEnd},
		{"seed", EnvSeed},
		{"log-level", EnvLogLevel},
		{"no-color", EnvNoColor},
		{"reveal", EnvReveal},
		{"dump", EnvDump},
	}
	for _, e := range envs {
		value, ok := lookup(e.env)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := fs.Set(e.name, strings.TrimSpace(value)); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, e.env, value, err)
		}
	}

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Config{
		Size:    *size,
		Seed:    *seed,
		NoColor: *noColor,
		Reveal:  *reveal,
		Dump:    *dump,
	}

	var err error
	if cfg.Start, err = generator.ParseStartPolicy(*start); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.End, err = generator.ParseEndPolicy(*end); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.LogLevel, err = log.ParseLevel(*level); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Size < generator.MinSize {
		return Config{}, fmt.Errorf("%w: size %d is below %d", ErrInvalidConfig, cfg.Size, generator.MinSize)
	}

	return cfg, nil
}
