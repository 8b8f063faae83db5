// Package statfunctions implements the descriptive estimators used by the
// velocity/luminosity analysis: generalized means, residuals, sample variance
// and sample covariance. Every function is pure and leaves its input slices
// untouched.
package statfunctions

import (
	"fmt"
	"math"
)

// MeanOrder is the exponent m of the generalized (power) mean.
type MeanOrder float64

// The named orders of the original prompt.
const (
	Harmonic   MeanOrder = -1 // n / sum(1/x_i)
	Arithmetic MeanOrder = 1  // sum(x_i) / n
	Quadratic  MeanOrder = 2  // root mean square
)

// String names the harmonic, arithmetic and quadratic orders and prints any
// other order as a number.
func (m MeanOrder) String() string {
	switch m {
	case Harmonic:
		return "harmonic"
	case Arithmetic:
		return "arithmetic"
	case Quadratic:
		return "quadratic"
	}
	return fmt.Sprintf("order %g", float64(m))
}

func (m MeanOrder) isInteger() bool {
	return float64(m) == math.Trunc(float64(m))
}

func (m MeanOrder) isOddInteger() bool {
	return m.isInteger() && math.Mod(float64(m), 2) != 0
}

// GeneralizedMean returns (mean(x_i^m))^(1/m).
//
// Negative elements are only accepted for integer orders; a non-integer
// power of a negative number has no real value and yields ErrDomain instead
// of NaN. When the averaged powers are negative, odd integer orders take the
// real odd root and every other order fails with ErrDomain.
//
// Overflow is not an error: powers beyond the float64 range follow IEEE
// arithmetic, so the quadratic mean of {1e200} is +Inf and a zero element
// under a negative order contributes +Inf and drives the mean to 0.
func GeneralizedMean(x []float64, m MeanOrder) (float64, error) {
	if len(x) == 0 {
		return 0, fmt.Errorf("generalized mean of empty sample: %w", ErrInvalidArgument)
	}
	if m == 0 {
		return 0, fmt.Errorf("generalized mean of order 0 is undefined: %w: %w", ErrInvalidArgument, ErrDomain)
	}
	if math.IsNaN(float64(m)) || math.IsInf(float64(m), 0) {
		return 0, fmt.Errorf("generalized mean of order %g: %w", float64(m), ErrDomain)
	}

	exp := float64(m)
	var sum float64
	for i, v := range x {
		if v < 0 && !m.isInteger() {
			return 0, fmt.Errorf("element %d (%g) raised to non-integer order %g: %w", i, v, exp, ErrDomain)
		}
		sum += math.Pow(v, exp)
	}
	avg := sum / float64(len(x))

	if m == Arithmetic {
		return avg, nil
	}
	if avg < 0 {
		if !m.isOddInteger() {
			return 0, fmt.Errorf("root of order %g of negative average %g: %w", exp, avg, ErrDomain)
		}
		return -math.Pow(-avg, 1/exp), nil
	}
	return math.Pow(avg, 1/exp), nil
}

// Mean is the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	return GeneralizedMean(x, Arithmetic)
}

// Residual returns x_i - referenceMean for every element, in a new slice.
func Residual(x []float64, referenceMean float64) []float64 {
	res := make([]float64, len(x))
	for i, v := range x {
		res[i] = v - referenceMean
	}
	return res
}

// Variance returns the Bessel-corrected sample variance of x.
func Variance(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("variance needs at least 2 values, got %d: %w", len(x), ErrInvalidArgument)
	}
	mean, err := Mean(x)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, d := range Residual(x, mean) {
		sum += d * d
	}
	return sum / float64(len(x)-1), nil
}

// StdDev returns the square root of Variance.
func StdDev(x []float64) (float64, error) {
	v, err := Variance(x)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Covariance returns the Bessel-corrected sample covariance of the paired
// samples x and y. Each residual is taken against the arithmetic mean of its
// own sample.
func Covariance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("covariance of samples with lengths %d and %d: %w", len(x), len(y), ErrInvalidArgument)
	}
	n := len(x)
	if n < 2 {
		return 0, fmt.Errorf("covariance needs at least 2 pairs, got %d: %w", n, ErrInvalidArgument)
	}
	meanX, err := Mean(x)
	if err != nil {
		return 0, err
	}
	meanY, err := Mean(y)
	if err != nil {
		return 0, err
	}
	resX := Residual(x, meanX)
	resY := Residual(y, meanY)

	var sum float64
	for i := 0; i < n; i++ {
		sum += resX[i] * resY[i]
	}
	return sum / float64(n-1), nil
}
