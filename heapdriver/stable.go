// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"cloudeng.io/heaps/heap"
)

// StableBinary wraps a heap.Binary so that its elements are addressed by
// ids that remain valid as the elements are moved within the heap. It
// uses the heap's swap callback to keep a two-way mapping between ids
// and indices. Ids are never reused and the zero id is never issued.
type StableBinary struct {
	h     *heap.Binary[int]
	ids   []int       // index -> id
	index map[int]int // id -> index
	next  int
}

// NewStableBinary returns a new StableBinary with the specified order.
func NewStableBinary(order heap.Order, sizeHint int) *StableBinary {
	s := &StableBinary{
		ids:   make([]int, 0, sizeHint),
		index: make(map[int]int, sizeHint),
	}
	s.h = heap.NewBinary(heap.PolicyFor[int](order),
		heap.WithSliceCap[int](sizeHint),
		heap.WithCallback(s.swapped))
	return s
}

func (s *StableBinary) swapped(_, _ int, i, j int) {
	s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
	s.index[s.ids[i]] = i
	s.index[s.ids[j]] = j
}

// dropLast forgets the id at the end of the heap, which is where
// ExtractTop and Remove leave the element they remove.
func (s *StableBinary) dropLast() {
	n := len(s.ids) - 1
	delete(s.index, s.ids[n])
	s.ids = s.ids[:n]
}

func (s *StableBinary) lookup(id int) (int, error) {
	if id == 0 {
		return 0, heap.ErrNullHandle
	}
	i, ok := s.index[id]
	if !ok {
		return 0, heap.ErrStaleHandle
	}
	return i, nil
}

// Insert implements heap.Queue.
func (s *StableBinary) Insert(k int) int {
	s.next++
	s.index[s.next] = len(s.ids)
	s.ids = append(s.ids, s.next)
	s.h.Insert(k)
	return s.next
}

// Top implements heap.Queue.
func (s *StableBinary) Top() (int, int, error) {
	_, k, err := s.h.Top()
	if err != nil {
		return 0, k, err
	}
	return s.ids[0], k, nil
}

// ExtractTop implements heap.Queue.
func (s *StableBinary) ExtractTop() (int, int, error) {
	if s.h.Empty() {
		_, k, err := s.h.ExtractTop()
		return 0, k, err
	}
	id := s.ids[0]
	_, k, err := s.h.ExtractTop()
	if err != nil {
		return 0, k, err
	}
	s.dropLast()
	return id, k, nil
}

// AugmentKey implements heap.Queue.
func (s *StableBinary) AugmentKey(id, k int) error {
	i, err := s.lookup(id)
	if err != nil {
		return err
	}
	return s.h.AugmentKey(i, k)
}

// Remove implements heap.Queue.
func (s *StableBinary) Remove(id int) (int, error) {
	i, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	k, err := s.h.Remove(i)
	if err != nil {
		return k, err
	}
	s.dropLast()
	return k, nil
}

// Key implements heap.Queue.
func (s *StableBinary) Key(id int) (int, error) {
	i, err := s.lookup(id)
	if err != nil {
		return 0, err
	}
	return s.h.Key(i)
}

// Len implements heap.Queue.
func (s *StableBinary) Len() int {
	return s.h.Len()
}

// Empty implements heap.Queue.
func (s *StableBinary) Empty() bool {
	return s.h.Empty()
}

var _ heap.Queue[int, int] = (*StableBinary)(nil)
