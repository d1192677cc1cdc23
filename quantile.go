// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

import (
	"math"
	"slices"
)

// Quantile returns one interpolated quantile of xs per probability in
// ps, in request order. Quantiles are computed by linear
// interpolation of adjacent order statistics (the Hyndman and Fan
// "R-7" method, as used by R's quantile and NumPy's percentile
// defaults): for a sample of n sorted values, probability p maps to
// the 1-based real position h = 1 + p*(n-1) and the result
// interpolates between the values at floor(h) and floor(h)+1.
//
// p = 0 is exactly the minimum and p = 1 exactly the maximum. For
// fixed xs the result is non-decreasing in p. Probabilities need not
// be sorted or distinct; an empty ps yields an empty result.
//
// Quantile returns ErrEmptyInput if xs is empty and ErrDomain if any
// probability lies outside [0, 1]. Both are checked before any
// interpolation, so a failed call computes nothing.
func Quantile[T Real](xs []T, ps []float64) ([]float64, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	for _, p := range ps {
		if !(0 <= p && p <= 1) {
			return nil, ErrDomain
		}
	}
	if len(ps) == 0 {
		return nil, nil
	}

	sorted := make([]float64, len(xs))
	for i, x := range xs {
		sorted[i] = float64(x)
	}
	slices.Sort(sorted)

	res := make([]float64, len(ps))
	for i, p := range ps {
		h := 1 + p*float64(len(sorted)-1)
		lo := int(math.Floor(h))
		frac := h - math.Floor(h)
		if lo >= len(sorted) {
			// p = 1: the upper order statistic does not
			// exist, but frac is 0 anyway.
			res[i] = sorted[len(sorted)-1]
			continue
		}
		res[i] = sorted[lo-1] + frac*(sorted[lo]-sorted[lo-1])
	}
	return res, nil
}

// Median returns the 0.5 quantile of xs.
func Median[T Real](xs []T) (float64, error) {
	qs, err := Quantile(xs, []float64{0.5})
	if err != nil {
		return 0, err
	}
	return qs[0], nil
}

// FiveNum returns the five-number summary of xs: minimum, lower
// quartile, median, upper quartile, maximum.
func FiveNum[T Real](xs []T) ([]float64, error) {
	return Quantile(xs, []float64{0, 0.25, 0.5, 0.75, 1})
}

// Quartile returns the three quartiles of xs (p = .25, .5, .75).
func Quartile[T Real](xs []T) ([]float64, error) {
	return Quantile(xs, []float64{0.25, 0.5, 0.75})
}

// Quintile returns the four quintiles of xs (p = .2, .4, .6, .8).
func Quintile[T Real](xs []T) ([]float64, error) {
	return Quantile(xs, []float64{0.2, 0.4, 0.6, 0.8})
}

// Decile returns the nine deciles of xs (p = .1 through .9).
func Decile[T Real](xs []T) ([]float64, error) {
	return Quantile(xs, Linspace(0.1, 0.9, 9))
}

// Percentile returns the ninety-nine percentiles of xs (p = .01
// through .99).
func Percentile[T Real](xs []T) ([]float64, error) {
	return Quantile(xs, Linspace(0.01, 0.99, 99))
}

// IQR returns the interquartile range of xs, the width of the
// interval between the lower and upper quartiles.
func IQR[T Real](xs []T) (float64, error) {
	qs, err := Quantile(xs, []float64{0.25, 0.75})
	if err != nil {
		return 0, err
	}
	return qs[1] - qs[0], nil
}
