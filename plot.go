package main

import (
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"lumstat/pkg/regression"
)

// writeFitChart renders the observations, their magnitude error bounds and
// the fitted line as a standalone HTML page.
func writeFitChart(w io.Writer, logV []float64, obs Observations, line regression.Line) error {
	points := make([]opts.ScatterData, len(logV))
	upper := make([]opts.ScatterData, len(logV))
	lower := make([]opts.ScatterData, len(logV))
	for i, x := range logV {
		m, e := obs.Magnitude[i], obs.MagnitudeErr[i]
		points[i] = opts.ScatterData{Value: []interface{}{x, m}, Symbol: "circle", SymbolSize: 8}
		upper[i] = opts.ScatterData{Value: []interface{}{x, m + e}, Symbol: "diamond", SymbolSize: 4}
		lower[i] = opts.ScatterData{Value: []interface{}{x, m - e}, Symbol: "diamond", SymbolSize: 4}
	}

	xs := append([]float64(nil), logV...)
	sort.Float64s(xs)
	fit := make([]opts.LineData, len(xs))
	for i, x := range xs {
		fit[i] = opts.LineData{Value: []interface{}{x, line.Predict(x)}}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Velocity-luminosity relation"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "log(V) [km/s]", Type: "value", Min: "dataMin", Max: "dataMax"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "M_B", Type: "value", Min: "dataMin", Max: "dataMax"}),
	)
	scatter.AddSeries("M", points).
		AddSeries("M + err", upper).
		AddSeries("M - err", lower)

	fitted := charts.NewLine()
	fitted.AddSeries("fit", fit)
	scatter.Overlap(fitted)

	return scatter.Render(w)
}
