// Package regression fits a straight line to paired observations by
// ordinary least squares.
package regression

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"lumstat/pkg/statfunctions"
)

// Line is a least-squares fit y = Intercept + Slope*x together with its
// goodness-of-fit estimates.
type Line struct {
	Slope     float64
	Intercept float64

	// RValue is the Pearson correlation coefficient of x and y.
	RValue float64
	// PValue is the two-sided p-value of the null hypothesis that the
	// slope is zero, using a t distribution with DegreesOfFreedom.
	PValue float64

	SlopeStdErr      float64
	InterceptStdErr  float64
	ResidualStdError float64

	DegreesOfFreedom int
	N                int
}

// Fit returns the least-squares line of y against x. It needs at least three
// pairs, since two parameters are estimated and the residual error is scaled
// by n-2.
func Fit(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("fit of samples with lengths %d and %d: %w", len(x), len(y), statfunctions.ErrInvalidArgument)
	}
	n := len(x)
	if n < 3 {
		return Line{}, fmt.Errorf("fit needs at least 3 pairs, got %d: %w", n, statfunctions.ErrInvalidArgument)
	}

	varX, err := statfunctions.Variance(x)
	if err != nil {
		return Line{}, err
	}
	if varX == 0 {
		return Line{}, fmt.Errorf("fit of constant x: %w", statfunctions.ErrDomain)
	}
	varY, err := statfunctions.Variance(y)
	if err != nil {
		return Line{}, err
	}
	cov, err := statfunctions.Covariance(x, y)
	if err != nil {
		return Line{}, err
	}
	meanX, err := statfunctions.Mean(x)
	if err != nil {
		return Line{}, err
	}
	meanY, err := statfunctions.Mean(y)
	if err != nil {
		return Line{}, err
	}

	l := Line{
		Slope:            cov / varX,
		DegreesOfFreedom: n - 2,
		N:                n,
	}
	l.Intercept = meanY - l.Slope*meanX

	if varY != 0 {
		l.RValue = clamp(cov/math.Sqrt(varX*varY), -1, 1)
	}

	res, err := l.Residuals(x, y)
	if err != nil {
		return Line{}, err
	}
	var sse float64
	for _, r := range res {
		sse += r * r
	}
	df := float64(l.DegreesOfFreedom)
	l.ResidualStdError = math.Sqrt(sse / df)

	l.SlopeStdErr = math.Sqrt((1 - l.RValue*l.RValue) * varY / varX / df)
	var sumSq float64
	for _, v := range x {
		sumSq += v * v
	}
	l.InterceptStdErr = l.SlopeStdErr * math.Sqrt(sumSq/float64(n))

	l.PValue = pValue(l.RValue, df)
	return l, nil
}

// Predict evaluates the line at x.
func (l Line) Predict(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// PredictAll evaluates the line at every element of xs.
func (l Line) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.Predict(x)
	}
	return out
}

// Residuals returns y_i - Predict(x_i) for every pair.
func (l Line) Residuals(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("residuals of samples with lengths %d and %d: %w", len(x), len(y), statfunctions.ErrInvalidArgument)
	}
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - l.Predict(x[i])
	}
	return out, nil
}

func pValue(r, df float64) float64 {
	if math.Abs(r) == 1 {
		return 0
	}
	t := r * math.Sqrt(df/((1-r)*(1+r)))
	dist := stats.TDist{V: df}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Log10 returns the base-10 logarithm of every element of x.
func Log10(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i, v := range x {
		if v <= 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("log10 of element %d (%g): %w", i, v, statfunctions.ErrDomain)
		}
		out[i] = math.Log10(v)
	}
	return out, nil
}
