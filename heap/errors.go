// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrUnderflow is returned when an operation requires a non-empty heap.
	ErrUnderflow = errors.New("heap is empty")
	// ErrInvalidIndex is returned when a Binary heap index is out of range.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidKey is returned when AugmentKey is asked to move a key
	// away from the top of the heap.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNullHandle is returned for a zero value handle.
	ErrNullHandle = errors.New("null handle")
	// ErrStaleHandle is returned for a handle whose element has already
	// been extracted or removed.
	ErrStaleHandle = errors.New("stale handle")
	// ErrForeignHandle is returned for a handle that addresses an element
	// in a different heap.
	ErrForeignHandle = errors.New("handle belongs to a different heap")
)

func invalidKey[K any](old, k K) error {
	return fmt.Errorf("%w: %v is less extreme than the current key %v", ErrInvalidKey, k, old)
}

func invalidIndex(i, n int) error {
	return fmt.Errorf("%w: %v is not in the range [0, %v)", ErrInvalidIndex, i, n)
}
