// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

import (
	"cmp"
	"slices"
)

// sortPerm returns a permutation p of the indexes of xs such that
// xs[p[0]], xs[p[1]], ... is non-decreasing. The sort is stable, but
// callers must not depend on the relative order of tied elements.
func sortPerm[T Real](xs []T) []int {
	p := make([]int, len(xs))
	for i := range p {
		p[i] = i
	}
	slices.SortStableFunc(p, func(a, b int) int {
		return cmp.Compare(xs[a], xs[b])
	})
	return p
}

// TiedRank returns the rank of each element of xs, where the smallest
// element has rank 1 and the largest has rank len(xs). Runs of
// exactly equal values all receive the mean of the rank positions the
// run spans, so ranks are not necessarily integral. The result is
// positional: rank i corresponds to xs[i], whatever the sorted order.
//
// The ranks of any sample sum to n(n+1)/2. An empty sample yields an
// empty rank vector.
func TiedRank[T Real](xs []T) []float64 {
	ranks := make([]float64, len(xs))
	perm := sortPerm(xs)
	for i := 0; i < len(perm); {
		// Find the run of values tied with xs[perm[i]].
		j := i + 1
		for j < len(perm) && xs[perm[j]] == xs[perm[i]] {
			j++
		}
		if j == i+1 {
			ranks[perm[i]] = float64(i + 1)
		} else {
			// The run spans sorted positions i+1..j
			// (1-based); every member gets their mean.
			r := float64(i+1+j) / 2
			for k := i; k < j; k++ {
				ranks[perm[k]] = r
			}
		}
		i = j
	}
	return ranks
}

// TiedRank2D ranks a two-dimensional sample as a whole. The rows are
// flattened in row-major order, ranked with TiedRank, and the ranks
// are reshaped back to the shape of xs. Rows need not have equal
// lengths.
func TiedRank2D[T Real](xs [][]T) [][]float64 {
	n := 0
	for _, row := range xs {
		n += len(row)
	}
	flat := make([]T, 0, n)
	for _, row := range xs {
		flat = append(flat, row...)
	}
	ranks := TiedRank(flat)
	res := make([][]float64, len(xs))
	for i, row := range xs {
		res[i] = ranks[:len(row):len(row)]
		ranks = ranks[len(row):]
	}
	return res
}
