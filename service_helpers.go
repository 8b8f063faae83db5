package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lumstat/pkg/statfunctions"
)

var meanOrderNames = map[string]statfunctions.MeanOrder{
	"arithmetic": statfunctions.Arithmetic,
	"quadratic":  statfunctions.Quadratic,
	"rms":        statfunctions.Quadratic,
	"harmonic":   statfunctions.Harmonic,
}

// parseMeanOrder accepts either a number ("2", "-1", "0.5") or one of the
// names of the common orders.
func parseMeanOrder(s string) (statfunctions.MeanOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty mean order")
	}
	if m, ok := meanOrderNames[s]; ok {
		return m, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unsupported mean order: %q", s)
	}
	if v == 0 {
		return 0, fmt.Errorf("mean order 0 is undefined")
	}
	return statfunctions.MeanOrder(v), nil
}

const meanOrderPrompt = "Mean type? \n 1: arithmetic \n 2: quadratic \n -1: harmonic \n"

// promptMeanOrder asks for a mean order until a valid one is entered or
// the input ends.
func promptMeanOrder(in io.Reader, out io.Writer) (statfunctions.MeanOrder, error) {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(out, meanOrderPrompt); err != nil {
			return 0, err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.New("no mean order given")
		}
		m, err := parseMeanOrder(scanner.Text())
		if err == nil {
			return m, nil
		}
		fmt.Fprintf(out, "%v\n", err)
	}
}
