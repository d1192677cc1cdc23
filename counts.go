// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

// Table returns the frequency table of xs: the number of occurrences
// of each distinct value. The counts sum to len(xs). Table works on
// any comparable element type, not just numbers.
func Table[T comparable](xs []T) map[T]int {
	counts := make(map[T]int)
	for _, x := range xs {
		counts[x]++
	}
	return counts
}

// Mode returns the most frequent value of xs. When several values are
// tied for the maximal count, Mode returns whichever of them occurs
// first in xs; callers that need every tie should use Modes. Mode
// returns ErrEmptyInput if xs is empty.
func Mode[T comparable](xs []T) (T, error) {
	modes, err := Modes(xs)
	if err != nil {
		var zero T
		return zero, err
	}
	return modes[0], nil
}

// Modes returns every value of xs tied for the maximal occurrence
// count, in order of first appearance. Modes returns ErrEmptyInput if
// xs is empty.
func Modes[T comparable](xs []T) ([]T, error) {
	if len(xs) == 0 {
		return nil, ErrEmptyInput
	}
	counts := Table(xs)
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	var modes []T
	seen := make(map[T]bool)
	for _, x := range xs {
		if counts[x] == max && !seen[x] {
			modes = append(modes, x)
			seen[x] = true
		}
	}
	return modes, nil
}
