// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

type options[K any] struct {
	sliceCap int
	keys     []K
	callback func(ik, jk K, i, j int)
}

// Option represents the options that can be passed to the heap
// constructors.
type Option[K any] func(*options[K])

// WithSliceCap sets the initial capacity of the slice used to hold the
// keys of a Binary heap, or the number of nodes preallocated for
// the Fibonacci and Pairing heaps.
func WithSliceCap[K any](n int) Option[K] {
	return func(o *options[K]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. A Binary heap takes
// ownership of keys and reorders them in place in O(n). The Fibonacci and
// Pairing heaps insert each key in turn, their handles can be obtained
// by traversing the heap with ExtractTop.
func WithData[K any](keys []K) Option[K] {
	return func(o *options[K]) {
		o.keys = keys
	}
}

// WithCallback provides a callback function that is called by a Binary
// heap whenever two elements exchange positions, with ik now at index i
// and jk at index j. It allows for callers to maintain an external
// mapping of indices, for example, when an element is removed it is
// first swapped with the last element which is then discarded. It is
// ignored by the Fibonacci and Pairing heaps whose handles are stable.
func WithCallback[K any](fn func(ik, jk K, i, j int)) Option[K] {
	return func(o *options[K]) {
		o.callback = fn
	}
}

func newOptions[K any](opts []Option[K]) options[K] {
	var o options[K]
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
