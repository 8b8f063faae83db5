package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Observations holds the three measured columns of the dataset. All slices
// have the same length.
type Observations struct {
	Magnitude    []float64
	MagnitudeErr []float64
	Velocity     []float64
}

func (o Observations) Len() int {
	return len(o.Magnitude)
}

var errNoObservations = errors.New("no observations")

func loadObservationsFile(path string, cols columns) (Observations, error) {
	f, err := os.Open(path)
	if err != nil {
		return Observations{}, err
	}
	defer f.Close()

	obs, err := readObservations(f, cols)
	if err != nil {
		return Observations{}, fmt.Errorf("%s: %w", path, err)
	}
	return obs, nil
}

func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
}

// readObservations parses a delimited table whose first row is a header.
// Blank lines and lines starting with '#' are ignored; any other line must
// have as many fields as the header and a number in every selected column.
func readObservations(r io.Reader, cols columns) (Observations, error) {
	var obs Observations
	need := max(cols[0], cols[1], cols[2]) + 1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	width := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := splitFields(line)
		if width == 0 {
			if len(fields) < need {
				return Observations{}, fmt.Errorf("line %d: header has %d fields, want at least %d", lineNo, len(fields), need)
			}
			width = len(fields)
			continue
		}
		if len(fields) != width {
			return Observations{}, fmt.Errorf("line %d: got %d fields, header has %d", lineNo, len(fields), width)
		}
		var row [3]float64
		for i, c := range cols {
			v, err := strconv.ParseFloat(fields[c], 64)
			if err != nil {
				return Observations{}, fmt.Errorf("line %d, column %d: %w", lineNo, c, err)
			}
			row[i] = v
		}
		obs.Magnitude = append(obs.Magnitude, row[0])
		obs.MagnitudeErr = append(obs.MagnitudeErr, row[1])
		obs.Velocity = append(obs.Velocity, row[2])
	}
	if err := scanner.Err(); err != nil {
		return Observations{}, err
	}
	if obs.Len() == 0 {
		return Observations{}, errNoObservations
	}
	return obs, nil
}
