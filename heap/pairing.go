// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "cmp"

type pairNode[K any] struct {
	left  *pairNode[K] // previous sibling, or the parent for a first child.
	right *pairNode[K] // next sibling.
	child *pairNode[K] // first child.
	gen   uint32
	owner *owner
	key   K
}

// PairingHandle addresses an element in a Pairing heap. The zero
// value is the null handle. A handle becomes stale once its element is
// extracted or removed and any subsequent use of it returns
// ErrStaleHandle.
type PairingHandle[K any] struct {
	n   *pairNode[K]
	gen uint32
}

// IsZero returns true for the null handle.
func (ph PairingHandle[K]) IsZero() bool {
	return ph.n == nil
}

// Pairing is a pairing heap, a single heap ordered multi-way tree.
// Insert, Top, Merge and AugmentKey run in O(1) time, ExtractTop and
// Remove in O(log n) amortized time using a two-pass merge of the
// removed node's children.
type Pairing[K any] struct {
	satisfies Policy[K]
	top       *pairNode[K]
	count     int
	id        *owner
	free      []*pairNode[K]
	// scratch holds the intermediate trees produced by the first pass
	// of twoPass, its length is doubled as the heap grows.
	scratch []*pairNode[K]
}

const pairingInitialScratch = 20

// NewPairing returns a new Pairing heap ordered by p.
func NewPairing[K any](p Policy[K], opts ...Option[K]) *Pairing[K] {
	o := newOptions(opts)
	h := &Pairing[K]{
		satisfies: p,
		id:        &owner{},
		scratch:   make([]*pairNode[K], 0, pairingInitialScratch),
	}
	h.free = preallocate[pairNode[K]](o.sliceCap)
	for _, k := range o.keys {
		h.Insert(k)
	}
	return h
}

// NewMaxPairing returns a new Pairing max-heap.
func NewMaxPairing[K cmp.Ordered](opts ...Option[K]) *Pairing[K] {
	return NewPairing(Max[K](), opts...)
}

// NewMinPairing returns a new Pairing min-heap.
func NewMinPairing[K cmp.Ordered](opts ...Option[K]) *Pairing[K] {
	return NewPairing(Min[K](), opts...)
}

// Len returns the number of elements in the heap.
func (h *Pairing[K]) Len() int {
	return h.count
}

// Empty returns true if the heap is empty.
func (h *Pairing[K]) Empty() bool {
	return h.count == 0
}

func (h *Pairing[K]) handle(n *pairNode[K]) PairingHandle[K] {
	return PairingHandle[K]{n: n, gen: n.gen}
}

func (h *Pairing[K]) node(ph PairingHandle[K]) (*pairNode[K], error) {
	if ph.n == nil {
		return nil, ErrNullHandle
	}
	if ph.n.gen != ph.gen || ph.n.owner == nil {
		return nil, ErrStaleHandle
	}
	ph.n.owner = resolve(ph.n.owner)
	if ph.n.owner != h.id {
		return nil, ErrForeignHandle
	}
	return ph.n, nil
}

func (h *Pairing[K]) alloc(k K) *pairNode[K] {
	if l := len(h.free); l > 0 {
		n := h.free[l-1]
		h.free[l-1] = nil
		h.free = h.free[:l-1]
		n.key = k
		n.owner = h.id
		return n
	}
	return &pairNode[K]{key: k, owner: h.id}
}

func (h *Pairing[K]) release(n *pairNode[K]) K {
	k := n.key
	gen := n.gen + 1
	*n = pairNode[K]{gen: gen}
	h.free = append(h.free, n)
	return k
}

func (h *Pairing[K]) grow() {
	if h.count < cap(h.scratch) {
		return
	}
	size := cap(h.scratch) * 2
	for size <= h.count {
		size *= 2
	}
	h.scratch = make([]*pairNode[K], 0, size)
}

// Insert merges k with the current top in O(1) time.
func (h *Pairing[K]) Insert(k K) PairingHandle[K] {
	n := h.alloc(k)
	h.top = h.meld(h.top, n)
	h.count++
	h.grow()
	return h.handle(n)
}

// Top returns the handle and key of the top-most element.
func (h *Pairing[K]) Top() (PairingHandle[K], K, error) {
	if h.top == nil {
		var k K
		return PairingHandle[K]{}, k, ErrUnderflow
	}
	return h.handle(h.top), h.top.key, nil
}

// Key returns the key addressed by ph.
func (h *Pairing[K]) Key(ph PairingHandle[K]) (K, error) {
	n, err := h.node(ph)
	if err != nil {
		var k K
		return k, err
	}
	return n.key, nil
}

// ExtractTop removes the top-most element and replaces it with the
// two-pass merge of its children.
func (h *Pairing[K]) ExtractTop() (PairingHandle[K], K, error) {
	if h.top == nil {
		var k K
		return PairingHandle[K]{}, k, ErrUnderflow
	}
	t := h.top
	ph := h.handle(t)
	h.top = nil
	return ph, h.removeAndMeld(t), nil
}

// AugmentKey replaces the key addressed by ph with k. Any node other
// than the top is detached, along with its subtree, and merged
// with the top.
func (h *Pairing[K]) AugmentKey(ph PairingHandle[K], k K) error {
	n, err := h.node(ph)
	if err != nil {
		return err
	}
	if h.satisfies.rejects(n.key, k) {
		return invalidKey(n.key, k)
	}
	n.key = k
	if n != h.top {
		detach(n)
		h.top = h.meld(h.top, n)
	}
	return nil
}

// Remove removes the element addressed by ph, its children are
// merged into a single tree which is then merged with the top.
func (h *Pairing[K]) Remove(ph PairingHandle[K]) (K, error) {
	n, err := h.node(ph)
	if err != nil {
		var k K
		return k, err
	}
	if n == h.top {
		h.top = nil
	}
	return h.removeAndMeld(n), nil
}

func (h *Pairing[K]) removeAndMeld(n *pairNode[K]) K {
	detach(n)
	var children *pairNode[K]
	if n.child != nil {
		children = h.twoPass(n.child)
	}
	h.top = h.meld(h.top, children)
	h.count--
	return h.release(n)
}

// Merge moves all of the elements of other into h in O(1) time, leaving
// other empty. Handles obtained from other remain valid for use with h.
func (h *Pairing[K]) Merge(other *Pairing[K]) {
	if other == h || other.top == nil {
		return
	}
	h.top = h.meld(h.top, other.top)
	h.count += other.count
	absorb(other.id, h.id)
	other.id = &owner{}
	other.top = nil
	other.count = 0
	h.grow()
}

// meld makes the less extreme of a and b the first child of the other
// and returns the resulting root. Both a and b must be roots.
func (h *Pairing[K]) meld(a, b *pairNode[K]) *pairNode[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.satisfies(b.key, a.key) {
		a, b = b, a
	}
	b.left = a
	b.right = a.child
	if a.child != nil {
		a.child.left = b
	}
	a.child = b
	return a
}

// detach removes n, and its subtree, from its parent's list of children.
func detach[K any](n *pairNode[K]) {
	if n.left == nil {
		return
	}
	if n.left.child == n {
		n.left.child = n.right
	} else {
		n.left.right = n.right
	}
	if n.right != nil {
		n.right.left = n.left
	}
	n.left, n.right = nil, nil
}

// twoPass merges the list of siblings starting at first into a single
// tree. The first pass merges pairs from left to right, with a trailing
// odd tree merged into the last pair, and the second pass folds the
// results from right to left.
func (h *Pairing[K]) twoPass(first *pairNode[K]) *pairNode[K] {
	if first.right == nil {
		first.left = nil
		return first
	}
	pairs := h.scratch[:0]
	for n := first; n != nil; {
		if n.right == nil {
			n.left = nil
			pairs[len(pairs)-1] = h.meld(pairs[len(pairs)-1], n)
			break
		}
		m := n.right
		next := m.right
		n.left, n.right = nil, nil
		m.left, m.right = nil, nil
		pairs = append(pairs, h.meld(n, m))
		n = next
	}
	tree := pairs[len(pairs)-1]
	for i := len(pairs) - 2; i >= 0; i-- {
		tree = h.meld(tree, pairs[i])
	}
	clear(pairs)
	h.scratch = pairs[:0]
	return tree
}
