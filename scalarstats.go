// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

// Single-pass reductions: moments, dispersion, and extremes.

import "math"

// Bounds returns the minimum and maximum values of xs in one pass, or
// ErrEmptyInput if xs is empty.
func Bounds[T Real](xs []T) (min, max T, err error) {
	if len(xs) == 0 {
		return 0, 0, ErrEmptyInput
	}
	min, max = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max, nil
}

// Span returns the range of xs, max - min.
func Span[T Real](xs []T) (T, error) {
	min, max, err := Bounds(xs)
	if err != nil {
		return 0, err
	}
	return max - min, nil
}

// Midrange returns the midpoint of the range of xs, (min + max)/2.
func Midrange[T Real](xs []T) (float64, error) {
	min, max, err := Bounds(xs)
	if err != nil {
		return 0, err
	}
	return (float64(min) + float64(max)) / 2, nil
}

// Mean returns the arithmetic mean of xs.
func Mean[T Real](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs)), nil
}

// Variance returns the sample variance of xs, with the n-1
// denominator. It returns ErrSampleSize if xs has fewer than two
// values.
func Variance[T Real](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	if len(xs) < 2 {
		return 0, ErrSampleSize
	}
	mean, _ := Mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := float64(x) - mean
		ss += d * d
	}
	return ss / float64(len(xs)-1), nil
}

// StdDev returns the sample standard deviation of xs.
func StdDev[T Real](xs []T) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Variation returns the coefficient of variation of xs, the sample
// standard deviation divided by the mean.
func Variation[T Real](xs []T) (float64, error) {
	sd, err := StdDev(xs)
	if err != nil {
		return 0, err
	}
	mean, _ := Mean(xs)
	return sd / mean, nil
}

// SEM returns the standard error of the mean of xs, the sample
// standard deviation divided by sqrt(n).
func SEM[T Real](xs []T) (float64, error) {
	sd, err := StdDev(xs)
	if err != nil {
		return 0, err
	}
	return sd / math.Sqrt(float64(len(xs))), nil
}

// MAD returns the median absolute deviation of xs, the median of the
// absolute deviations from the median. MAD centers a working copy of
// the sample; the input is never modified.
func MAD[T Real](xs []T) (float64, error) {
	med, err := Median(xs)
	if err != nil {
		return 0, err
	}
	dev := make([]float64, len(xs))
	for i, x := range xs {
		dev[i] = math.Abs(float64(x) - med)
	}
	return Median(dev)
}

// moments returns the second, third, and fourth central moments of
// xs, each with the population (1/n) denominator.
func moments[T Real](xs []T) (m2, m3, m4 float64, err error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, x := range xs {
		d := float64(x) - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	n := float64(len(xs))
	return m2 / n, m3 / n, m4 / n, nil
}

// Skewness returns the standardized third central moment of xs,
// m3 / m2^1.5, with population moments.
func Skewness[T Real](xs []T) (float64, error) {
	m2, m3, _, err := moments(xs)
	if err != nil {
		return 0, err
	}
	return m3 / math.Pow(m2, 1.5), nil
}

// Kurtosis returns the excess kurtosis of xs, m4 / m2^2 - 3, with
// population moments. A normal sample has excess kurtosis near 0.
func Kurtosis[T Real](xs []T) (float64, error) {
	m2, _, m4, err := moments(xs)
	if err != nil {
		return 0, err
	}
	return m4/(m2*m2) - 3, nil
}
