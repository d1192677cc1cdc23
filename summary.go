// Copyright 2026 The StatsBase Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package statsbase

import (
	"fmt"
	"io"
)

// A Summary holds the six-number summary of a sample: the mean plus
// the five-number summary. All fields are float64 whatever the
// sample's element type.
type Summary struct {
	Mean   float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// SummaryStats returns the six-number summary of xs, or ErrEmptyInput
// if xs is empty.
func SummaryStats[T Real](xs []T) (Summary, error) {
	mean, err := Mean(xs)
	if err != nil {
		return Summary{}, err
	}
	qs, err := FiveNum(xs)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Mean:   mean,
		Min:    qs[0],
		Q25:    qs[1],
		Median: qs[2],
		Q75:    qs[3],
		Max:    qs[4],
	}, nil
}

// String renders s as six labeled lines with six decimal digits.
func (s Summary) String() string {
	return fmt.Sprintf(
		"mean:          %.6f\n"+
			"minimum:       %.6f\n"+
			"1st quartile:  %.6f\n"+
			"median:        %.6f\n"+
			"3rd quartile:  %.6f\n"+
			"maximum:       %.6f\n",
		s.Mean, s.Min, s.Q25, s.Median, s.Q75, s.Max)
}

// Describe writes the six-number summary of xs to w.
func Describe[T Real](w io.Writer, xs []T) error {
	s, err := SummaryStats(xs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s.String())
	return err
}
