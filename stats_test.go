package main

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateStatisticsEvenSample(t *testing.T) {
	samples := []float64{40.0, 10.0, 30.0, 20.0}
	stats, err := calculateStatistics(samples)
	if err != nil {
		t.Fatalf("calculateStatistics returned error: %v", err)
	}

	if stats.N != 4 {
		t.Fatalf("expected n 4, got %d", stats.N)
	}
	if stats.Min != 10.0 || stats.Max != 40.0 {
		t.Fatalf("unexpected min/max: %#v", stats)
	}
	if stats.Mean != 25.0 {
		t.Fatalf("expected mean 25, got %v", stats.Mean)
	}
	if math.Abs(stats.Median-25.0) > 1e-9 {
		t.Fatalf("expected median 25, got %v", stats.Median)
	}
	if !(stats.Min < stats.Q1 && stats.Q1 < stats.Median && stats.Median < stats.Q3 && stats.Q3 < stats.Max) {
		t.Fatalf("quartiles out of order: %#v", stats)
	}
	if diff := math.Abs(stats.StdDev - 12.909944487); diff > 1e-9 {
		t.Fatalf("unexpected stddev: %v", stats.StdDev)
	}
}

func TestCalculateStatisticsOddSample(t *testing.T) {
	stats, err := calculateStatistics([]float64{3, 1, 2})
	if err != nil {
		t.Fatalf("calculateStatistics returned error: %v", err)
	}
	if stats.Min != 1 || stats.Max != 3 {
		t.Fatalf("unexpected min/max: %#v", stats)
	}
	if stats.Mean != 2 {
		t.Fatalf("expected mean 2, got %v", stats.Mean)
	}
	if math.Abs(stats.Median-2) > 1e-9 {
		t.Fatalf("expected median 2, got %v", stats.Median)
	}
	if stats.StdDev != 1 {
		t.Fatalf("expected stddev 1, got %v", stats.StdDev)
	}
}

func TestCalculateStatisticsDoesNotSortInput(t *testing.T) {
	samples := []float64{3, 1, 2}
	if _, err := calculateStatistics(samples); err != nil {
		t.Fatalf("calculateStatistics returned error: %v", err)
	}
	if samples[0] != 3 || samples[1] != 1 || samples[2] != 2 {
		t.Fatalf("input was reordered: %v", samples)
	}
}

func TestCalculateStatisticsSingleValue(t *testing.T) {
	stats, err := calculateStatistics([]float64{7})
	if err != nil {
		t.Fatalf("calculateStatistics returned error: %v", err)
	}
	if stats.Min != 7 || stats.Max != 7 || stats.Median != 7 {
		t.Fatalf("unexpected summary: %#v", stats)
	}
	if !math.IsNaN(stats.StdDev) {
		t.Fatalf("expected NaN stddev, got %v", stats.StdDev)
	}
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	if _, err := calculateStatistics(nil); !errors.Is(err, errEmptySample) {
		t.Fatalf("expected errEmptySample, got %v", err)
	}
}
