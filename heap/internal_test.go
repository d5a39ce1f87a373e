// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap //nolint:revive // intentional shadowing

import (
	"fmt"
	"testing"
)

func (h *Binary[K]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *Binary[K]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.keys)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.satisfies(h.keys[l], h.keys[p]) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v < [%v]: %v)", p, h.keys[p], l, h.keys[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.satisfies(h.keys[r], h.keys[p]) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v < [%v]: %v)", p, h.keys[p], r, h.keys[r])
			return
		}
		h.verify(t, r)
	}
}

// Keys returns the underlying slice, it must not be modified.
func (h *Binary[K]) Keys() []K {
	return h.keys
}

func (h *Fibonacci[K]) Verify(t *testing.T) {
	t.Helper()
	if err := h.check(); err != nil {
		t.Errorf("fibonacci heap inconsistent: %v", err)
	}
}

func (h *Fibonacci[K]) check() error {
	if h.top == nil {
		if h.count != 0 {
			return fmt.Errorf("nil top with count %v", h.count)
		}
		return nil
	}
	if h.top.parent != nil {
		return fmt.Errorf("top %v has a parent", h.top.key)
	}
	total := 0
	for n := h.top; ; {
		if h.satisfies(n.key, h.top.key) {
			return fmt.Errorf("root %v is more extreme than top %v", n.key, h.top.key)
		}
		size, err := h.checkTree(n, nil)
		if err != nil {
			return err
		}
		total += size
		if n = n.right; n == h.top {
			break
		}
	}
	if total != h.count {
		return fmt.Errorf("count %v, but found %v nodes", h.count, total)
	}
	return nil
}

func (h *Fibonacci[K]) checkTree(n, parent *fibNode[K]) (int, error) {
	if n.right.left != n || n.left.right != n {
		return 0, fmt.Errorf("ring broken at %v", n.key)
	}
	if n.parent != parent {
		return 0, fmt.Errorf("node %v has the wrong parent", n.key)
	}
	if resolve(n.owner) != h.id {
		return 0, fmt.Errorf("node %v is owned by another heap", n.key)
	}
	if parent != nil && h.satisfies(n.key, parent.key) {
		return 0, fmt.Errorf("child %v is more extreme than parent %v", n.key, parent.key)
	}
	size := 1
	degree := 0
	if c := n.child; c != nil {
		for m := c; ; {
			degree++
			s, err := h.checkTree(m, n)
			if err != nil {
				return 0, err
			}
			size += s
			if m = m.right; m == c {
				break
			}
		}
	}
	if degree != n.degree {
		return 0, fmt.Errorf("node %v has degree %v, but %v children", n.key, n.degree, degree)
	}
	return size, nil
}

// RootDegrees returns the degrees of all of the roots.
func (h *Fibonacci[K]) RootDegrees() []int {
	var d []int
	if h.top == nil {
		return d
	}
	for n := h.top; ; {
		d = append(d, n.degree)
		if n = n.right; n == h.top {
			break
		}
	}
	return d
}

// Parent returns a handle for the parent of the node addressed by fh.
func (h *Fibonacci[K]) Parent(fh FibonacciHandle[K]) FibonacciHandle[K] {
	if fh.n.parent == nil {
		return FibonacciHandle[K]{}
	}
	return h.handle(fh.n.parent)
}

// Marked returns true if the node addressed by fh is marked.
func (h *Fibonacci[K]) Marked(fh FibonacciHandle[K]) bool {
	return fh.n.mark
}

// Degree returns the number of children of the node addressed by fh.
func (h *Fibonacci[K]) Degree(fh FibonacciHandle[K]) int {
	return fh.n.degree
}

func (h *Fibonacci[K]) BucketLen() int {
	return len(h.buckets)
}

func (h *Fibonacci[K]) FreeLen() int {
	return len(h.free)
}

func (h *Pairing[K]) Verify(t *testing.T) {
	t.Helper()
	if err := h.check(); err != nil {
		t.Errorf("pairing heap inconsistent: %v", err)
	}
}

func (h *Pairing[K]) check() error {
	if h.top == nil {
		if h.count != 0 {
			return fmt.Errorf("nil top with count %v", h.count)
		}
		return nil
	}
	if h.top.left != nil || h.top.right != nil {
		return fmt.Errorf("top %v has siblings", h.top.key)
	}
	size, err := h.checkTree(h.top)
	if err != nil {
		return err
	}
	if size != h.count {
		return fmt.Errorf("count %v, but found %v nodes", h.count, size)
	}
	return nil
}

func (h *Pairing[K]) checkTree(n *pairNode[K]) (int, error) {
	if resolve(n.owner) != h.id {
		return 0, fmt.Errorf("node %v is owned by another heap", n.key)
	}
	size := 1
	prev := n
	for c := n.child; c != nil; c = c.right {
		if c.left != prev {
			return 0, fmt.Errorf("child %v of %v has the wrong left link", c.key, n.key)
		}
		if h.satisfies(c.key, n.key) {
			return 0, fmt.Errorf("child %v is more extreme than parent %v", c.key, n.key)
		}
		s, err := h.checkTree(c)
		if err != nil {
			return 0, err
		}
		size += s
		prev = c
	}
	return size, nil
}

// RootChildren returns the number of children of the top.
func (h *Pairing[K]) RootChildren() int {
	if h.top == nil {
		return 0
	}
	n := 0
	for c := h.top.child; c != nil; c = c.right {
		n++
	}
	return n
}

func (h *Pairing[K]) ScratchCap() int {
	return cap(h.scratch)
}
