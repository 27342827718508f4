package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"labyrinth/pkg/engine/input"
	"labyrinth/pkg/game/config"
	"labyrinth/pkg/game/devtools"
	"labyrinth/pkg/game/gameplay"
	"labyrinth/pkg/game/generator"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/renderer/tui"
)

func main() {
	config.LoadEnvFile()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run plays one game and returns the process exit code
func run(args []string, in io.Reader, out io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.WithError(err).Error("cannot start the game")
		return 1
	}

	initLogging(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("seeding random source")

	g, err := gameplay.BuildGame(generator.Options{
		Size:  cfg.Size,
		Start: cfg.Start,
		End:   cfg.End,
		Rand:  rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		log.WithError(err).Error("cannot generate the maze")
		return 1
	}

	screen := tui.New(out, cfg.NoColor)
	renderer.SetRenderer(screen)
	renderer.Init()

	if cfg.Reveal {
		screen.Plan(g.Maze.String())
	}

	gameplay.Welcome(g)
	reader := input.NewReader(in)

	for !g.Finished {
		renderer.RenderFrame(g)
		renderer.Prompt()

		cmd, err := reader.ReadCommand()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.WithError(err).Error("cannot read input")
			}
			fmt.Fprintln(out)
			break
		}

		gameplay.ProcessCommand(g, cmd)
	}

	renderer.RenderFrame(g)
	renderer.ShowMessage(gameplay.Goodbye())

	log.WithFields(log.Fields{"maze": g.Maze.ID, "moves": g.Moves, "won": g.Won}).Info("game over")

	if cfg.Dump != "" {
		path, err := devtools.DumpMazeToFile(g, cfg.Dump)
		if err != nil {
			log.WithError(err).Error("maze dump failed")
			return 1
		}
		log.WithField("path", path).Info("maze dumped")
	}
	return 0
}

func initLogging(level log.Level) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(level)
}
