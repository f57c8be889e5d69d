package domain

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n values evenly spaced over the closed interval [a, b].
// The i-th value is a + i*(b-a)/(n-1), so the first sample is a and the
// last is b. The interval may be descending or degenerate.
//
// For n == 1 the result is [a] and for n == 0 it is empty; neither case
// divides by n-1. A negative n is an ErrInvalidArgument.
func Linspace(a, b float64, n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative sample count %d", ErrInvalidArgument, n)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{a}, nil
	}

	samples := floats.Span(make([]float64, n), a, b)
	// Span accumulates a+step*i; the endpoint is pinned to b.
	samples[n-1] = b
	return samples, nil
}

// Step returns the spacing between consecutive samples of Linspace(a, b, n).
// It is undefined for fewer than two samples.
func Step(a, b float64, n int) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("%w: step needs at least 2 samples, got %d", ErrInvalidArgument, n)
	}
	return (b - a) / float64(n-1), nil
}
