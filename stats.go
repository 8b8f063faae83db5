package main

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"

	"lumstat/pkg/statfunctions"
)

type Summary struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Q1     float64
	Q3     float64
	StdDev float64
}

var errEmptySample = errors.New("empty sample")

// calculateStatistics summarizes samples without reordering them. StdDev is
// NaN for a single value.
func calculateStatistics(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, errEmptySample
	}
	s := stats.Sample{Xs: append([]float64(nil), samples...)}
	s.Sort()
	n := len(s.Xs)

	mean, err := statfunctions.Mean(s.Xs)
	if err != nil {
		return Summary{}, err
	}
	stddev := math.NaN()
	if n > 1 {
		if stddev, err = statfunctions.StdDev(s.Xs); err != nil {
			return Summary{}, err
		}
	}

	return Summary{
		N:      n,
		Min:    s.Xs[0],
		Max:    s.Xs[n-1],
		Mean:   mean,
		Median: s.Quantile(0.5),
		Q1:     s.Quantile(0.25),
		Q3:     s.Quantile(0.75),
		StdDev: stddev,
	}, nil
}
