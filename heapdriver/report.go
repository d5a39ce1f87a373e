// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Stats records the number of times each operation was performed and
// the total time spent performing it.
type Stats struct {
	Name    string
	Count   [numOps]int
	Total   [numOps]time.Duration
	Skipped int
}

func (s *Stats) record(k OpKind, d time.Duration) {
	s.Count[k]++
	s.Total[k] += d
}

// Calls returns the number of times that k was performed.
func (s *Stats) Calls(k OpKind) int {
	return s.Count[k]
}

// Average returns the average duration of k, or zero if it was never
// performed.
func (s *Stats) Average(k OpKind) time.Duration {
	if s.Count[k] == 0 {
		return 0
	}
	return s.Total[k] / time.Duration(s.Count[k])
}

// Report writes the timing information for each of stats in text form.
func Report(wr io.Writer, stats ...*Stats) error {
	var out strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&out, "Timing Info for %v\n", s.Name)
		for _, k := range Kinds() {
			avg := float64(s.Average(k).Nanoseconds()) / 1000
			fmt.Fprintf(&out, "\t%v\n", k)
			fmt.Fprintf(&out, "\t\tNumber of Times Called: %v\n", s.Count[k])
			fmt.Fprintf(&out, "\t\tAverage Time (microseconds): %.3f\n", avg)
		}
		if s.Skipped > 0 {
			fmt.Fprintf(&out, "\tSkipped: %v\n", s.Skipped)
		}
		out.WriteString("\n")
	}
	_, err := io.WriteString(wr, out.String())
	return err
}
