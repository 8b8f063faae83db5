package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"lumstat/pkg/statfunctions"
)

type description struct {
	Order      statfunctions.MeanOrder
	Mean       float64
	Variance   float64
	Covariance float64
	Columns    map[string]Summary
}

func describe(obs Observations, order statfunctions.MeanOrder) (description, error) {
	d := description{Order: order, Columns: make(map[string]Summary, 3)}

	var err error
	if d.Mean, err = statfunctions.GeneralizedMean(obs.Magnitude, order); err != nil {
		return description{}, fmt.Errorf("generalized mean of M: %w", err)
	}
	if d.Variance, err = statfunctions.Variance(obs.Magnitude); err != nil {
		return description{}, fmt.Errorf("variance of M: %w", err)
	}
	if d.Covariance, err = statfunctions.Covariance(obs.Magnitude, obs.Velocity); err != nil {
		return description{}, fmt.Errorf("covariance of M and V: %w", err)
	}

	for name, col := range map[string][]float64{
		"M":     obs.Magnitude,
		"M_err": obs.MagnitudeErr,
		"V":     obs.Velocity,
	} {
		s, err := calculateStatistics(col)
		if err != nil {
			return description{}, fmt.Errorf("summary of %s: %w", name, err)
		}
		d.Columns[name] = s
	}
	return d, nil
}

func runDescribe(w io.Writer, log zerolog.Logger, obs Observations, order statfunctions.MeanOrder) error {
	log.Debug().Int("rows", obs.Len()).Stringer("order", order).Msg("describing observations")

	d, err := describe(obs, order)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generalized mean of M (%s): %g\n", d.Order, d.Mean)
	fmt.Fprintf(w, "Variance of M: %g\n", d.Variance)
	fmt.Fprintf(w, "Covariance of M and V: %g\n", d.Covariance)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-6s %4s %10s %10s %10s %10s %10s %10s %10s\n", "column", "n", "mean", "min", "q1", "median", "q3", "max", "stddev")
	for _, name := range []string{"M", "M_err", "V"} {
		s := d.Columns[name]
		fmt.Fprintf(w, "%-6s %4d %10.4g %10.4g %10.4g %10.4g %10.4g %10.4g %10.4g\n",
			name, s.N, s.Mean, s.Min, s.Q1, s.Median, s.Q3, s.Max, s.StdDev)
	}
	return nil
}
