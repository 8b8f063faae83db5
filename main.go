package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"lumstat/pkg/statfunctions"
)

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func loadObservations(cfg Config) (Observations, error) {
	if cfg.Source == sourcePostgres {
		return loadObservationsDB(cfg.Table)
	}
	return loadObservationsFile(cfg.DataFile, cfg.Columns)
}

func meanOrder(cfg Config, in io.Reader, out io.Writer) (statfunctions.MeanOrder, error) {
	if cfg.MeanOrder != "" {
		return parseMeanOrder(cfg.MeanOrder)
	}
	return promptMeanOrder(in, out)
}

func run(cfg Config, log zerolog.Logger, stdin io.Reader, stdout io.Writer) error {
	obs, err := loadObservations(cfg)
	if err != nil {
		return err
	}
	log.Info().Str("source", cfg.Source).Int("rows", obs.Len()).Msg("loaded observations")

	switch cfg.Command {
	case commandRegress:
		return runRegression(stdout, log, obs, cfg.PlotFile)
	default:
		order, err := meanOrder(cfg, stdin, stdout)
		if err != nil {
			return err
		}
		return runDescribe(stdout, log, obs, order)
	}
}

func main() {
	// Load environment from .env files for local development.
	_ = godotenv.Load(".env")

	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}
	reporter := newErrorReporter(cfg.SentryDSN, log)

	if err := run(cfg, log, os.Stdin, os.Stdout); err != nil {
		reporter.report(err, cfg)
		log.Fatal().Err(err).Str("command", cfg.Command).Msg("failed")
	}
}
