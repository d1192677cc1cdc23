// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statsbase is a grab bag of descriptive statistics: moment
// and dispersion measures, order statistics and quantiles, tie-aware
// ranking, frequency tables, and a six-number summary report.
//
// Every function takes its sample by slice and never mutates it;
// routines that need sorted data work on an internal copy. Samples
// may hold any integer or floating-point element type; derived
// quantities (means, quantiles, ranks) are always float64.
package statsbase

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Real is the element constraint for numeric samples.
type Real interface {
	constraints.Integer | constraints.Float
}

var (
	// ErrEmptyInput is returned by reductions, order statistics,
	// quantiles, and mode finding when the sample has no values.
	// Ranking and frequency tabulation are exempt: both are
	// well-defined no-ops on an empty sample.
	ErrEmptyInput = errors.New("sample has no values")

	// ErrDomain is returned when a quantile probability lies
	// outside [0, 1].
	ErrDomain = errors.New("probability outside [0, 1]")

	// ErrSampleSize is returned by dispersion measures that need
	// at least two values.
	ErrSampleSize = errors.New("sample is too small")
)
