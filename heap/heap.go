// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap contains mergeable priority queue implementations that
// support insertion, access to and extraction of the top-most element,
// in-place key updates and removal of arbitrary elements.
//
// Three engines are provided, all of which implement Queue:
//
//   - Binary: an array backed implicit binary heap addressed by index.
//   - Fibonacci: a forest of heap ordered trees with lazy consolidation
//     and cascading cuts, addressed by FibonacciHandle.
//   - Pairing: a single multi-way tree with two-pass sibling merging,
//     addressed by PairingHandle.
//
// The ordering of every engine is determined by the Policy supplied when
// it is created, Max and Min are provided for ordered types. None of the
// engines are safe for concurrent use.
package heap

// ArithmeticTypes represents the set of types whose keys can be adjusted
// by a delta via DeltaKey.
type ArithmeticTypes interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// Queue represents the operations common to all of the heap engines.
// K is the key type and H the type used to address individual elements.
//
// Top and ExtractTop return ErrUnderflow for an empty heap. AugmentKey
// returns ErrInvalidKey if the new key is less extreme than the existing
// one, that is, keys may only move towards the top of the heap.
type Queue[K any, H comparable] interface {
	// Insert adds k to the heap and returns the handle that addresses it.
	Insert(k K) H
	// Top returns the handle and key of the top-most element.
	Top() (H, K, error)
	// ExtractTop removes and returns the top-most element. The returned
	// handle is no longer valid for use with the heap.
	ExtractTop() (H, K, error)
	// AugmentKey replaces the key addressed by h with k.
	AugmentKey(h H, k K) error
	// Remove removes the element addressed by h and returns its key.
	Remove(h H) (K, error)
	// Key returns the key addressed by h.
	Key(h H) (K, error)
	// Len returns the number of elements in the heap.
	Len() int
	// Empty returns true if the heap contains no elements.
	Empty() bool
}

// DeltaKey adds delta to the key addressed by h, ie. it is equivalent to
// calling AugmentKey with the current key plus delta.
func DeltaKey[K ArithmeticTypes, H comparable](q Queue[K, H], h H, delta K) error {
	k, err := q.Key(h)
	if err != nil {
		return err
	}
	return q.AugmentKey(h, k+delta)
}

var (
	_ Queue[int, int]                  = (*Binary[int])(nil)
	_ Queue[int, FibonacciHandle[int]] = (*Fibonacci[int])(nil)
	_ Queue[int, PairingHandle[int]]   = (*Pairing[int])(nil)
)
