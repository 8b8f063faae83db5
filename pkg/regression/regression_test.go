package regression

import (
	"math"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"lumstat/pkg/statfunctions"
)

func near(t *testing.T, got, want, tol float64) {
	t.Helper()
	assert.Assert(t, math.Abs(got-want) <= tol, "got %v, want %v", got, want)
}

func TestFitExactLine(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	l, err := Fit(x, y)
	assert.NilError(t, err)
	near(t, l.Slope, 2, 1e-12)
	near(t, l.Intercept, 1, 1e-12)
	near(t, l.RValue, 1, 1e-12)
	near(t, l.ResidualStdError, 0, 1e-12)
	near(t, l.PValue, 0, 1e-9)
	assert.Equal(t, l.DegreesOfFreedom, 2)
	assert.Equal(t, l.N, 4)
}

func TestFitNoisyLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	l, err := Fit(x, y)
	assert.NilError(t, err)
	near(t, l.Slope, 0.6, 1e-12)
	near(t, l.Intercept, 2.2, 1e-12)
	near(t, l.RValue, 1.5/math.Sqrt(3.75), 1e-12)
	near(t, l.ResidualStdError, math.Sqrt(0.8), 1e-12)
	near(t, l.SlopeStdErr, math.Sqrt(0.08), 1e-12)
	near(t, l.InterceptStdErr, math.Sqrt(0.08)*math.Sqrt(11), 1e-12)
	near(t, l.PValue, 0.124, 1e-3)
}

func TestFitNegativeSlope(t *testing.T) {
	l, err := Fit([]float64{2.0, 2.2, 2.4, 2.6}, []float64{-18.1, -19.0, -20.2, -20.9})
	assert.NilError(t, err)
	assert.Assert(t, l.Slope < 0)
	assert.Assert(t, l.RValue < -0.9)
	assert.Assert(t, l.PValue > 0 && l.PValue < 0.05, "p = %v", l.PValue)
}

func TestFitErrors(t *testing.T) {
	_, err := Fit([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, statfunctions.ErrInvalidArgument)

	_, err = Fit([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, statfunctions.ErrInvalidArgument)

	_, err = Fit([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, statfunctions.ErrDomain)
}

func TestFitConstantY(t *testing.T) {
	l, err := Fit([]float64{1, 2, 3}, []float64{4, 4, 4})
	assert.NilError(t, err)
	assert.Equal(t, l.Slope, 0.0)
	assert.Equal(t, l.Intercept, 4.0)
	assert.Equal(t, l.RValue, 0.0)
	near(t, l.PValue, 1, 1e-9)
}

func TestPredictAndResiduals(t *testing.T) {
	l := Line{Slope: -2, Intercept: 1}
	assert.Equal(t, l.Predict(3), -5.0)
	assert.Check(t, is.DeepEqual(l.PredictAll([]float64{0, 1}), []float64{1, -1}))

	res, err := l.Residuals([]float64{0, 1}, []float64{2, -1})
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(res, []float64{1, 0}))
}

func TestResidualsLengthMismatch(t *testing.T) {
	res, err := Line{Slope: 1}.Residuals([]float64{1, 2, 3}, []float64{1})
	assert.ErrorIs(t, err, statfunctions.ErrInvalidArgument)
	assert.Check(t, is.Nil(res))
}

func TestLog10(t *testing.T) {
	got, err := Log10([]float64{1, 10, 1000})
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(got, []float64{0, 1, 3}))

	_, err = Log10([]float64{10, 0})
	assert.ErrorIs(t, err, statfunctions.ErrDomain)

	_, err = Log10([]float64{-5})
	assert.ErrorIs(t, err, statfunctions.ErrDomain)
}
