// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

// Binary is an array backed binary heap. Elements are addressed by their
// current index in the underlying slice.
//
// Note that an index returned by Insert is only valid until the next
// operation that changes the structure of the heap: Insert, ExtractTop,
// Remove and AugmentKey may all relocate elements. Callers that need to
// track elements across such operations must use WithCallback.
type Binary[K any] struct {
	keys      []K
	satisfies Policy[K]
	callback  func(ik, jk K, i, j int)
}

// NewBinary returns a new Binary heap ordered by p.
func NewBinary[K any](p Policy[K], opts ...Option[K]) *Binary[K] {
	o := newOptions(opts)
	h := &Binary[K]{
		satisfies: p,
		callback:  o.callback,
	}
	if o.keys != nil {
		h.keys = o.keys
		h.heapify()
		return h
	}
	h.keys = make([]K, 0, o.sliceCap)
	return h
}

// NewMaxBinary returns a new Binary max-heap.
func NewMaxBinary[K cmp.Ordered](opts ...Option[K]) *Binary[K] {
	return NewBinary(Max[K](), opts...)
}

// NewMinBinary returns a new Binary min-heap.
func NewMinBinary[K cmp.Ordered](opts ...Option[K]) *Binary[K] {
	return NewBinary(Min[K](), opts...)
}

func (h *Binary[K]) heapify() {
	n := len(h.keys)
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// Len returns the number of elements in the heap.
func (h *Binary[K]) Len() int {
	return len(h.keys)
}

// Empty returns true if the heap is empty.
func (h *Binary[K]) Empty() bool {
	return len(h.keys) == 0
}

// Insert appends k and moves it up the heap. It returns the index
// that k occupies once the heap order has been restored.
func (h *Binary[K]) Insert(k K) int {
	h.keys = append(h.keys, k)
	return h.up(len(h.keys) - 1)
}

// Top returns the top-most key, which is always at index 0.
func (h *Binary[K]) Top() (int, K, error) {
	if len(h.keys) == 0 {
		var k K
		return 0, k, ErrUnderflow
	}
	return 0, h.keys[0], nil
}

// ExtractTop removes and returns the top-most key. The last element is
// moved to index 0 and then moved down the heap.
func (h *Binary[K]) ExtractTop() (int, K, error) {
	if len(h.keys) == 0 {
		var k K
		return 0, k, ErrUnderflow
	}
	n := len(h.keys) - 1
	h.swap(0, n)
	k := h.pop()
	if n > 0 {
		h.down(0)
	}
	return 0, k, nil
}

// Key returns the key at index i.
func (h *Binary[K]) Key(i int) (K, error) {
	if i < 0 || i >= len(h.keys) {
		var k K
		return k, invalidIndex(i, len(h.keys))
	}
	return h.keys[i], nil
}

// AugmentKey replaces the key at index i with k and moves it up the heap.
// The key may only move towards the top of the heap.
func (h *Binary[K]) AugmentKey(i int, k K) error {
	if i < 0 || i >= len(h.keys) {
		return invalidIndex(i, len(h.keys))
	}
	if h.satisfies.rejects(h.keys[i], k) {
		return invalidKey(h.keys[i], k)
	}
	h.keys[i] = k
	h.up(i)
	return nil
}

// Remove removes and returns the key at index i. The last element
// is moved into index i and then moved up or down as required.
func (h *Binary[K]) Remove(i int) (K, error) {
	if i < 0 || i >= len(h.keys) {
		var k K
		return k, invalidIndex(i, len(h.keys))
	}
	if i == 0 {
		_, k, err := h.ExtractTop()
		return k, err
	}
	n := len(h.keys) - 1
	h.swap(i, n)
	k := h.pop()
	if i == n || n < 2 {
		return k, nil
	}
	if h.satisfies(h.keys[i], h.keys[parent(i)]) {
		h.up(i)
		return k, nil
	}
	h.down(i)
	return k, nil
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (2 * i) + 1 }

func (h *Binary[K]) up(i int) int {
	for i > 0 {
		p := parent(i)
		if !h.satisfies(h.keys[i], h.keys[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
	return i
}

// down moves the element at i down the heap, exchanging it with the more
// extreme of its children until neither child is more extreme than it.
// The left child is preferred unless the right child is strictly more
// extreme.
func (h *Binary[K]) down(i int) {
	n := len(h.keys)
	for {
		target := i
		l := left(i)
		if l < 0 { // overflow
			return
		}
		if l < n && h.satisfies(h.keys[l], h.keys[target]) {
			target = l
		}
		if r := l + 1; r < n && h.satisfies(h.keys[r], h.keys[target]) {
			target = r
		}
		if target == i {
			return
		}
		h.swap(i, target)
		i = target
	}
}

func (h *Binary[K]) swap(i, j int) {
	if i == j {
		return
	}
	h.keys[i], h.keys[j] = h.keys[j], h.keys[i]
	if h.callback != nil {
		h.callback(h.keys[i], h.keys[j], i, j)
	}
}

func (h *Binary[K]) pop() K {
	n := len(h.keys) - 1
	k := h.keys[n]
	var zero K
	h.keys[n] = zero
	h.keys = h.keys[:n]
	return k
}
