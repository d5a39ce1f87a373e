// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

// owner identifies the heap that a node belongs to. When one heap is
// merged into another the absorbed heap's owner is forwarded to the
// receiving heap's owner so that ownership of all of the absorbed nodes
// is transferred in constant time. A heap's own owner is never forwarded,
// an emptied heap is given a new one.
type owner struct {
	into *owner
}

// resolve follows the forwarding chain starting at o and shortens
// the chain as it goes.
func resolve(o *owner) *owner {
	root := o
	for root.into != nil {
		root = root.into
	}
	for o.into != nil {
		next := o.into
		o.into = root
		o = next
	}
	return root
}

// absorb forwards from to the owner to.
func absorb(from, to *owner) {
	if from != to {
		from.into = to
	}
}
