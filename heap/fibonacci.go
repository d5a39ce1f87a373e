// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"cmp"
	"math/bits"
)

type fibNode[K any] struct {
	left, right *fibNode[K] // circular sibling ring, never nil.
	parent      *fibNode[K]
	child       *fibNode[K] // any one member of the child ring.
	degree      int
	mark        bool // lost a child since becoming a child itself.
	gen         uint32
	owner       *owner
	key         K
}

// FibonacciHandle addresses an element in a Fibonacci heap. The zero
// value is the null handle. A handle becomes stale once its element is
// extracted or removed and any subsequent use of it returns
// ErrStaleHandle.
type FibonacciHandle[K any] struct {
	n   *fibNode[K]
	gen uint32
}

// IsZero returns true for the null handle.
func (fh FibonacciHandle[K]) IsZero() bool {
	return fh.n == nil
}

// Fibonacci is a Fibonacci heap, that is, a forest of heap ordered trees
// whose roots are kept in a circular list. Insert, Top, Merge and
// AugmentKey run in O(1) amortized time, ExtractTop and Remove in
// O(log n) amortized time.
type Fibonacci[K any] struct {
	satisfies Policy[K]
	top       *fibNode[K]
	count     int
	id        *owner
	free      []*fibNode[K]
	// buckets is scratch space for consolidate, indexed by degree and sized
	// according to tracked which is doubled as the heap grows.
	buckets []*fibNode[K]
	tracked int
}

const fibInitialTracked = 50

// NewFibonacci returns a new Fibonacci heap ordered by p.
func NewFibonacci[K any](p Policy[K], opts ...Option[K]) *Fibonacci[K] {
	o := newOptions(opts)
	h := &Fibonacci[K]{
		satisfies: p,
		id:        &owner{},
		tracked:   fibInitialTracked,
	}
	h.free = preallocate[fibNode[K]](o.sliceCap)
	h.resizeBuckets()
	for _, k := range o.keys {
		h.Insert(k)
	}
	return h
}

// NewMaxFibonacci returns a new Fibonacci max-heap.
func NewMaxFibonacci[K cmp.Ordered](opts ...Option[K]) *Fibonacci[K] {
	return NewFibonacci(Max[K](), opts...)
}

// NewMinFibonacci returns a new Fibonacci min-heap.
func NewMinFibonacci[K cmp.Ordered](opts ...Option[K]) *Fibonacci[K] {
	return NewFibonacci(Min[K](), opts...)
}

func preallocate[N any](n int) []*N {
	if n <= 0 {
		return nil
	}
	slab := make([]N, n)
	free := make([]*N, n)
	for i := range slab {
		free[i] = &slab[i]
	}
	return free
}

// Len returns the number of elements in the heap.
func (h *Fibonacci[K]) Len() int {
	return h.count
}

// Empty returns true if the heap is empty.
func (h *Fibonacci[K]) Empty() bool {
	return h.count == 0
}

func (h *Fibonacci[K]) handle(n *fibNode[K]) FibonacciHandle[K] {
	return FibonacciHandle[K]{n: n, gen: n.gen}
}

func (h *Fibonacci[K]) node(fh FibonacciHandle[K]) (*fibNode[K], error) {
	if fh.n == nil {
		return nil, ErrNullHandle
	}
	if fh.n.gen != fh.gen || fh.n.owner == nil {
		return nil, ErrStaleHandle
	}
	fh.n.owner = resolve(fh.n.owner)
	if fh.n.owner != h.id {
		return nil, ErrForeignHandle
	}
	return fh.n, nil
}

func (h *Fibonacci[K]) alloc(k K) *fibNode[K] {
	var n *fibNode[K]
	if l := len(h.free); l > 0 {
		n = h.free[l-1]
		h.free[l-1] = nil
		h.free = h.free[:l-1]
	} else {
		n = &fibNode[K]{}
	}
	n.left, n.right = n, n
	n.key = k
	n.owner = h.id
	return n
}

// release invalidates all handles to n and makes it available for reuse.
func (h *Fibonacci[K]) release(n *fibNode[K]) K {
	k := n.key
	gen := n.gen + 1
	*n = fibNode[K]{gen: gen}
	h.free = append(h.free, n)
	return k
}

func (h *Fibonacci[K]) resizeBuckets() {
	h.buckets = make([]*fibNode[K], bits.Len(uint(h.tracked)))
}

// Insert adds k to the root list in O(1) time.
func (h *Fibonacci[K]) Insert(k K) FibonacciHandle[K] {
	n := h.alloc(k)
	h.top = h.splice(h.top, n)
	h.count++
	h.track()
	return h.handle(n)
}

func (h *Fibonacci[K]) track() {
	if h.count <= h.tracked {
		return
	}
	for h.count > h.tracked {
		h.tracked *= 2
	}
	h.resizeBuckets()
}

// Top returns the handle and key of the top-most element.
func (h *Fibonacci[K]) Top() (FibonacciHandle[K], K, error) {
	if h.top == nil {
		var k K
		return FibonacciHandle[K]{}, k, ErrUnderflow
	}
	return h.handle(h.top), h.top.key, nil
}

// Key returns the key addressed by fh.
func (h *Fibonacci[K]) Key(fh FibonacciHandle[K]) (K, error) {
	n, err := h.node(fh)
	if err != nil {
		var k K
		return k, err
	}
	return n.key, nil
}

// ExtractTop removes the top-most element, its children are added
// to the root list which is then consolidated.
func (h *Fibonacci[K]) ExtractTop() (FibonacciHandle[K], K, error) {
	if h.top == nil {
		var k K
		return FibonacciHandle[K]{}, k, ErrUnderflow
	}
	fh := h.handle(h.top)
	return fh, h.extractTop(), nil
}

func (h *Fibonacci[K]) extractTop() K {
	z := h.top
	if c := z.child; c != nil {
		for n := c; ; {
			n.parent = nil
			if n = n.right; n == c {
				break
			}
		}
		h.splice(z, c)
	}
	if z.right == z {
		h.top = nil
	} else {
		unlink(z)
		h.top = z.right
		h.consolidate()
	}
	h.count--
	return h.release(z)
}

// splice joins the rings containing a and b and returns whichever
// of a and b is more extreme.
func (h *Fibonacci[K]) splice(a, b *fibNode[K]) *fibNode[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.satisfies(b.key, a.key) {
		a, b = b, a
	}
	ar, bl := a.right, b.left
	a.right = b
	b.left = a
	ar.left = bl
	bl.right = ar
	return a
}

// unlink removes n from its ring, n's own links are left unchanged.
func unlink[K any](n *fibNode[K]) {
	n.left.right = n.right
	n.right.left = n.left
}

// consolidate links roots of equal degree until all roots in the root
// list have distinct degrees and then locates the new top. Every root
// present when it is called is visited exactly once.
func (h *Fibonacci[K]) consolidate() {
	clear(h.buckets)
	roots := 0
	for n := h.top; ; {
		roots++
		if n = n.right; n == h.top {
			break
		}
	}
	next := h.top
	for ; roots > 0; roots-- {
		x := next
		next = x.right
		d := x.degree
		for {
			if d >= len(h.buckets) {
				h.buckets = append(h.buckets, make([]*fibNode[K], d+1-len(h.buckets))...)
			}
			y := h.buckets[d]
			if y == nil {
				break
			}
			if h.satisfies(y.key, x.key) {
				x, y = y, x
			}
			h.makeChild(y, x)
			h.buckets[d] = nil
			d++
		}
		h.buckets[d] = x
	}
	// The remaining roots are exactly the non-nil buckets.
	h.top = nil
	for _, n := range h.buckets {
		if n != nil && (h.top == nil || h.satisfies(n.key, h.top.key)) {
			h.top = n
		}
	}
}

// makeChild removes child from the root list and adds it to parent's
// children.
func (h *Fibonacci[K]) makeChild(child, parent *fibNode[K]) {
	unlink(child)
	child.left, child.right = child, child
	child.parent = parent
	parent.child = h.splice(parent.child, child)
	child.mark = false
	parent.degree++
}

// AugmentKey replaces the key addressed by fh with k. If the node now
// violates the heap order with respect to its parent it is cut from its
// parent and moved to the root list.
func (h *Fibonacci[K]) AugmentKey(fh FibonacciHandle[K], k K) error {
	n, err := h.node(fh)
	if err != nil {
		return err
	}
	if h.satisfies.rejects(n.key, k) {
		return invalidKey(n.key, k)
	}
	n.key = k
	h.promote(n, false)
	return nil
}

// promote restores the heap order after n's key has moved towards the
// top. If force is set n is moved to the root list and made the top
// regardless of its key.
func (h *Fibonacci[K]) promote(n *fibNode[K], force bool) {
	if p := n.parent; p != nil && (force || h.satisfies(n.key, p.key)) {
		h.cut(n, p)
		h.cascadingCut(p)
	}
	if force || h.satisfies(n.key, h.top.key) {
		h.top = n
	}
}

// cut moves child from parent's children to the root list.
func (h *Fibonacci[K]) cut(child, parent *fibNode[K]) {
	if child.right == child {
		parent.child = nil
	} else {
		unlink(child)
		if parent.child == child {
			parent.child = child.right
		}
	}
	parent.degree--
	child.left, child.right = child, child
	h.splice(h.top, child)
	child.parent = nil
	child.mark = false
}

// cascadingCut marks n if it is unmarked, otherwise it cuts n from
// its parent and repeats for that parent.
func (h *Fibonacci[K]) cascadingCut(n *fibNode[K]) {
	for {
		p := n.parent
		if p == nil {
			return
		}
		if !n.mark {
			n.mark = true
			return
		}
		h.cut(n, p)
		n = p
	}
}

// Remove removes the element addressed by fh. A node other than the top
// is first moved to the root list and made the top before being
// extracted.
func (h *Fibonacci[K]) Remove(fh FibonacciHandle[K]) (K, error) {
	n, err := h.node(fh)
	if err != nil {
		var k K
		return k, err
	}
	if n != h.top {
		h.promote(n, true)
	}
	return h.extractTop(), nil
}

// Merge moves all of the elements of other into h in O(1) time, leaving
// other empty. Handles obtained from other remain valid for use with h.
func (h *Fibonacci[K]) Merge(other *Fibonacci[K]) {
	if other == h || other.top == nil {
		return
	}
	h.top = h.splice(h.top, other.top)
	h.count += other.count
	absorb(other.id, h.id)
	other.id = &owner{}
	other.top = nil
	other.count = 0
	h.track()
}
