// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/heaps/heap"
	"cloudeng.io/logging/ctxlog"
)

// checkEvery is the number of operations between checks for a canceled
// context.
const checkEvery = 1024

// Replay applies ops to q and records the time taken by each operation.
// It maintains its own mapping between the ids used in the operation log
// and the handles returned by q. AugmentKey moves the key towards the top
// of the heap by the specified delta, ie. it subtracts the delta for an
// ascending heap and adds it for a descending one. Operations that name
// an id that is unknown, or no longer in the heap, are skipped as is an
// ExtractTop on an empty heap.
func Replay[H comparable](ctx context.Context, name string, q heap.Queue[int, H], order heap.Order, ops []Op) (*Stats, error) {
	logger := ctxlog.Logger(ctx).With("name", name)
	stats := &Stats{Name: name}
	ids := map[int]H{}
	handles := map[H]int{}
	skip := func(i int, op Op, reason string) {
		stats.Skipped++
		logger.Debug("skipped", "line", i+1, "op", op.String(), "reason", reason)
	}
	logger.Info("replay started", "ops", len(ops))
	start := time.Now()
	for i, op := range ops {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		var took time.Duration
		switch op.Kind {
		case Insert:
			if prev, ok := ids[op.ID]; ok {
				delete(handles, prev)
			}
			t0 := time.Now()
			h := q.Insert(op.Value)
			took = time.Since(t0)
			ids[op.ID] = h
			handles[h] = op.ID
		case ExtractTop:
			t0 := time.Now()
			h, _, err := q.ExtractTop()
			took = time.Since(t0)
			if errors.Is(err, heap.ErrUnderflow) {
				skip(i, op, "empty heap")
				continue
			}
			if err != nil {
				return stats, fmt.Errorf("line %v: %v: %w", i+1, op, err)
			}
			if id, ok := handles[h]; ok {
				delete(ids, id)
				delete(handles, h)
			}
		case Remove:
			h, ok := ids[op.ID]
			if !ok {
				skip(i, op, "unknown id")
				continue
			}
			t0 := time.Now()
			_, err := q.Remove(h)
			took = time.Since(t0)
			if err != nil {
				return stats, fmt.Errorf("line %v: %v: %w", i+1, op, err)
			}
			delete(ids, op.ID)
			delete(handles, h)
		case AugmentKey:
			h, ok := ids[op.ID]
			if !ok {
				skip(i, op, "unknown id")
				continue
			}
			k, err := q.Key(h)
			if err != nil {
				return stats, fmt.Errorf("line %v: %v: %w", i+1, op, err)
			}
			k += heap.Delta(order, op.Value)
			t0 := time.Now()
			err = q.AugmentKey(h, k)
			took = time.Since(t0)
			if err != nil {
				return stats, fmt.Errorf("line %v: %v: %w", i+1, op, err)
			}
		default:
			return stats, fmt.Errorf("line %v: %w: %v", i+1, ErrInvalidOp, op.Kind)
		}
		stats.record(op.Kind, took)
	}
	logger.Info("replay finished", "elapsed", time.Since(start), "skipped", stats.Skipped, "remaining", q.Len())
	return stats, nil
}
