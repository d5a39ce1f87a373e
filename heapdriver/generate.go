// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import "math/rand"

// Generate returns a random operation log of n operations. Keys are
// drawn from [0, keyRange) and deltas from [1, deltaRange]. An Insert is
// always generated when the heap would otherwise be empty so that no
// ExtractTop or Remove is ever applied to an empty heap.
//
// Element ids are allocated sequentially starting at 0. The generator
// cannot know which element an ExtractTop will remove and hence later
// operations may name ids that have already been extracted; Replay
// skips such operations.
func Generate(rnd *rand.Rand, n, keyRange, deltaRange int) []Op {
	ops := make([]Op, 0, n)
	var ids []int
	count, next := 0, 0
	for i := 0; i < n; i++ {
		kind := Insert
		if count > 0 {
			kind = OpKind(rnd.Intn(int(numOps)))
		}
		switch kind {
		case Insert:
			ops = append(ops, Op{Kind: Insert, ID: next, Value: rnd.Intn(keyRange)})
			ids = append(ids, next)
			next++
			count++
		case ExtractTop:
			ops = append(ops, Op{Kind: ExtractTop})
			count--
		case Remove:
			idx := rnd.Intn(len(ids))
			ops = append(ops, Op{Kind: Remove, ID: ids[idx]})
			ids[idx] = ids[len(ids)-1]
			ids = ids[:len(ids)-1]
			count--
		case AugmentKey:
			id := ids[rnd.Intn(len(ids))]
			ops = append(ops, Op{Kind: AugmentKey, ID: id, Value: rnd.Intn(deltaRange) + 1})
		}
	}
	return ops
}
