package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	sourceFile     = "file"
	sourcePostgres = "postgres"

	commandDescribe = "describe"
	commandRegress  = "regress"
)

type Config struct {
	Command   string
	Source    string
	DataFile  string
	Columns   columns
	Table     string
	MeanOrder string
	PlotFile  string
	LogLevel  string
	SentryDSN string
}

// columns selects the magnitude, magnitude error and velocity fields of a row.
type columns [3]int

var defaultColumns = columns{1, 2, 3}

func (c columns) String() string {
	return fmt.Sprintf("%d,%d,%d", c[0], c[1], c[2])
}

func parseColumns(s string) (columns, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return columns{}, fmt.Errorf("columns %q: want 3 comma separated indexes", s)
	}
	var c columns
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return columns{}, fmt.Errorf("columns %q: %w", s, err)
		}
		if v < 0 {
			return columns{}, fmt.Errorf("columns %q: negative index %d", s, v)
		}
		c[i] = v
	}
	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadConfig reads the environment and then lets command line flags override it.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{
		Command:   commandDescribe,
		Source:    envOr("STATS_SOURCE", sourceFile),
		DataFile:  envOr("STATS_DATA_FILE", "Data/velocity_luminosity.txt"),
		Table:     envOr("STATS_TABLE", "observations"),
		MeanOrder: os.Getenv("STATS_MEAN_ORDER"),
		PlotFile:  os.Getenv("STATS_PLOT_FILE"),
		LogLevel:  envOr("LOG_LEVEL", "info"),
		SentryDSN: os.Getenv("SENTRY_DSN"),
	}
	cols := envOr("STATS_COLUMNS", defaultColumns.String())

	fs := flag.NewFlagSet("lumstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lumstat [flags] [describe|regress]\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Source, "source", cfg.Source, "where observations are read from: file or postgres")
	fs.StringVar(&cfg.DataFile, "data", cfg.DataFile, "delimited text file with a header row")
	fs.StringVar(&cols, "columns", cols, "zero based indexes of the magnitude, magnitude error and velocity columns")
	fs.StringVar(&cfg.Table, "table", cfg.Table, "Postgres table holding magnitude, magnitude_error and velocity")
	fs.StringVar(&cfg.MeanOrder, "mean-order", cfg.MeanOrder, "generalized mean order (1 arithmetic, 2 quadratic, -1 harmonic); prompts when empty")
	fs.StringVar(&cfg.PlotFile, "plot", cfg.PlotFile, "write an HTML chart of the regression to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Command = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))
	}
	if cfg.Command != commandDescribe && cfg.Command != commandRegress {
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if cfg.Source != sourceFile && cfg.Source != sourcePostgres {
		return Config{}, fmt.Errorf("unknown source %q", cfg.Source)
	}
	if cfg.Source == sourceFile && cfg.DataFile == "" {
		return Config{}, errors.New("data file not set; use -data or STATS_DATA_FILE")
	}

	c, err := parseColumns(cols)
	if err != nil {
		return Config{}, err
	}
	cfg.Columns = c
	return cfg, nil
}
