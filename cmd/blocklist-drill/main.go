package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/blocklist/internal/drill"
)

func main() {
	log := logger.New(logger.DefaultConfig)

	config, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Error("Invalid arguments", zap.Error(err))
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := drill.Run(ctx, config); err != nil {
		log.Error("Drill failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func parseConfig(args []string) (drill.Config, error) {
	config := drill.DefaultConfig
	flags := pflag.NewFlagSet("blocklist-drill", pflag.ContinueOnError)
	flags.IntVar(&config.Workers, "workers", config.Workers, "Number of lists exercised concurrently")
	flags.IntVar(&config.Rounds, "rounds", config.Rounds, "Number of fresh lists per worker")
	flags.IntVar(&config.Ops, "ops", config.Ops, "Number of random operations applied to each list")
	flags.Int64Var(&config.Seed, "seed", config.Seed, "Seed of the first worker")

	if err := flags.Parse(args); err != nil {
		return drill.Config{}, errors.WithStack(err)
	}
	return config, nil
}
