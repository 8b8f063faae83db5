package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"lumstat/pkg/regression"
)

// fitLuminosity fits the absolute magnitude against log10 of the velocity.
func fitLuminosity(obs Observations) (logV []float64, line regression.Line, err error) {
	logV, err = regression.Log10(obs.Velocity)
	if err != nil {
		return nil, regression.Line{}, fmt.Errorf("log velocity: %w", err)
	}
	line, err = regression.Fit(logV, obs.Magnitude)
	if err != nil {
		return nil, regression.Line{}, fmt.Errorf("fit M against log(V): %w", err)
	}
	return logV, line, nil
}

func runRegression(w io.Writer, log zerolog.Logger, obs Observations, plotFile string) error {
	logV, line, err := fitLuminosity(obs)
	if err != nil {
		return err
	}
	log.Debug().Int("rows", line.N).Float64("r", line.RValue).Msg("fitted magnitude against log velocity")

	fmt.Fprintf(w, "M = %.4f + %.4f * log(V)\n", line.Intercept, line.Slope)
	fmt.Fprintf(w, "slope std error: %g\n", line.SlopeStdErr)
	fmt.Fprintf(w, "intercept std error: %g\n", line.InterceptStdErr)
	fmt.Fprintf(w, "r: %g  p: %g\n", line.RValue, line.PValue)
	fmt.Fprintf(w, "residual std error: %g on %d degrees of freedom\n", line.ResidualStdError, line.DegreesOfFreedom)

	if plotFile == "" {
		return nil
	}
	f, err := os.Create(plotFile)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	if err := writeFitChart(f, logV, obs, line); err != nil {
		f.Close()
		return fmt.Errorf("render plot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	log.Info().Str("file", plotFile).Msg("wrote regression plot")
	return nil
}
