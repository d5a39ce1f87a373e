// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cmp"
	"fmt"
	"strings"
)

// Policy determines the ordering of a heap. It returns true if a and b
// are correctly ordered with a above b, ie. a is strictly more extreme
// than b. The policy is fixed for the lifetime of a heap.
type Policy[K any] func(a, b K) bool

// Max returns the Policy for a max-heap.
func Max[K cmp.Ordered]() Policy[K] {
	return func(a, b K) bool { return a > b }
}

// Min returns the Policy for a min-heap.
func Min[K cmp.Ordered]() Policy[K] {
	return func(a, b K) bool { return a < b }
}

// Order determines if the heap is maintained in ascending or descending
// order.
type Order bool

// Values for Order.
const (
	Ascending  Order = false
	Descending Order = true
)

// PolicyFor returns the Policy corresponding to the specified Order,
// Min for Ascending and Max for Descending.
func PolicyFor[K cmp.Ordered](o Order) Policy[K] {
	if o == Descending {
		return Max[K]()
	}
	return Min[K]()
}

// String implements fmt.Stringer.
func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Set implements flag.Value. It accepts ascending/min and descending/max.
func (o *Order) Set(v string) error {
	switch strings.ToLower(v) {
	case "ascending", "min":
		*o = Ascending
	case "descending", "max":
		*o = Descending
	default:
		return fmt.Errorf("unrecognised order: %q, use one of ascending, descending, min or max", v)
	}
	return nil
}

// UnmarshalYAML allows Order to be used in YAML configuration files.
func (o *Order) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return o.Set(s)
}

// Delta returns v with its sign adjusted so that adding it to a key moves
// that key towards the top of a heap with order o.
func Delta[K ArithmeticTypes](o Order, v K) K {
	if o == Ascending {
		return -v
	}
	return v
}

// rejects returns true if replacing old with k would move the key away
// from the top of the heap. Equal keys are accepted.
func (p Policy[K]) rejects(old, k K) bool {
	return p(old, k)
}
