// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiedRank(t *testing.T) {
	// Ranks correspond to input positions, not sorted positions.
	assert.Equal(t, []float64{3, 1.5, 4, 1.5, 5}, TiedRank([]float64{3, 1, 4, 1, 5}))

	// Distinct values rank as the permutation 1..n.
	assert.Equal(t, []float64{2, 3, 1}, TiedRank([]int{20, 30, 10}))

	// All-equal values all get the mean rank (n+1)/2.
	assert.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, TiedRank([]float64{7, 7, 7, 7}))

	// A single element ranks 1; an empty sample ranks to nothing.
	assert.Equal(t, []float64{1}, TiedRank([]float64{42}))
	assert.Empty(t, TiedRank([]float64{}))
}

func TestTiedRankSum(t *testing.T) {
	// For any sample the ranks sum to n(n+1)/2, ties or not.
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 100; iter++ {
		n := rng.Intn(50) + 1
		xs := make([]int, n)
		for i := range xs {
			// A small value range forces plenty of ties.
			xs[i] = rng.Intn(8)
		}
		sum := 0.0
		for _, r := range TiedRank(xs) {
			sum += r
		}
		want := float64(n*(n+1)) / 2
		if sum != want {
			t.Fatalf("rank sum of %v = %v, want %v", xs, sum, want)
		}
	}
}

func TestTiedRankDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	xs := rng.Perm(100)
	ranks := TiedRank(xs)
	sorted := append([]float64(nil), ranks...)
	sort.Float64s(sorted)
	for i, r := range sorted {
		if r != float64(i+1) {
			t.Fatalf("ranks of distinct values are not 1..n: %v", sorted)
		}
	}
	// With 0..n-1 as values, each rank is the value plus one.
	for i, x := range xs {
		assert.Equal(t, float64(x+1), ranks[i])
	}
}

func TestTiedRankTieInvariance(t *testing.T) {
	// Every member of a tied group gets the same rank no matter
	// where it sits in the input.
	assert.Equal(t, []float64{4, 2, 2, 2, 5}, TiedRank([]float64{5, 2, 2, 2, 9}))
	assert.Equal(t, []float64{2, 4, 2, 5, 2}, TiedRank([]float64{2, 5, 2, 9, 2}))
}

func TestTiedRank2D(t *testing.T) {
	got := TiedRank2D([][]int{{3, 1}, {4, 1, 5}})
	assert.Equal(t, [][]float64{{3, 1.5}, {4, 1.5, 5}}, got)

	// Flattening is row-major: ranks agree with ranking the
	// concatenated rows.
	xs := [][]float64{{9, 2, 2}, {7}, {}, {2, 9}}
	flat := TiedRank([]float64{9, 2, 2, 7, 2, 9})
	got = TiedRank2D(xs)
	i := 0
	for r, row := range got {
		if len(row) != len(xs[r]) {
			t.Fatalf("row %d reshaped to length %d, want %d", r, len(row), len(xs[r]))
		}
		for _, rank := range row {
			assert.Equal(t, flat[i], rank)
			i++
		}
	}

	assert.Empty(t, TiedRank2D([][]float64{}))
}

func BenchmarkTiedRank_1e4(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 10_000)
	for i := range xs {
		xs[i] = float64(rng.Intn(100))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TiedRank(xs)
	}
}
