package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/searcher/agent"
)

func usage(w io.Writer) {
	io.WriteString(w, "usage: othello <command> [flags]\n")
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "move - read a board (JSON list of rows of 0/1/2) on stdin and print the chosen move as \"row col\", or \"pass\"\n")
	io.WriteString(w, "experiment <pruning|caching|ordering|baseline|throughput> - play self-play match ups and write CSV records\n")
	io.WriteString(w, "run `othello move -h` for flags\n")
}

func main() {
	// Logs go to stderr; stdout only carries moves
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "move":
		err = runMove(os.Args[2:], os.Stdin, os.Stdout)
	case "experiment":
		err = runExperiment(os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

func loadConfig(args []string) (*config.Config, error) {
	cfg := &config.Config{}
	if err := cfg.Load(args); err != nil {
		return nil, err
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return cfg, nil
}

func runMove(args []string, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	var board game.Board
	if err := json.NewDecoder(in).Decode(&board); err != nil {
		return fmt.Errorf("failed to read board: %w", err)
	}

	a := agent.NewSearchAgent(cfg.Settings(), cfg.SearchOptions()...)
	move, metric, err := a.FindMove(board, cfg.Player())
	if engine.IsPass(err) {
		_, err = fmt.Fprintln(out, "pass")
		return err
	}
	if err != nil {
		return err
	}

	log.Info().
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("cache_hits", metric.CacheHits).
		Msg("search complete")
	_, err = fmt.Fprintln(out, move.String())
	return err
}

func runExperiment(args []string) error {
	if len(args) < 1 {
		return errors.New("experiment name required")
	}
	name := args[0]
	cfg, err := loadConfig(args[1:])
	if err != nil {
		return err
	}
	if cfg.Limit < 0 {
		return errors.New("experiments need a depth limit, pass -limit")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := experiments.Options{
		BoardSize:   cfg.BoardSize,
		Games:       cfg.Games,
		Parallelism: cfg.Parallelism,
		OutputDir:   cfg.OutputDir,
		Seed:        cfg.Seed,
	}

	var dir string
	switch name {
	case "pruning":
		dir, err = experiments.RunPruningExperiment(ctx, opts, cfg.Limit)
	case "caching":
		dir, err = experiments.RunCachingExperiment(ctx, opts, cfg.Limit)
	case "ordering":
		dir, err = experiments.RunOrderingExperiment(ctx, opts, cfg.Limit)
	case "baseline":
		dir, err = experiments.RunBaselineExperiment(ctx, opts, cfg.Settings())
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(ctx, opts, cfg.Limit)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment records written")
	return nil
}
