// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	stdheap "container/heap"
	"context"
	"math/rand"
	"time"

	"cloudeng.io/heaps/heap"
	"cloudeng.io/logging/ctxlog"
)

// Phases describes a benchmark that performs consecutive phases of
// Inserts insertions, Augments key augmentations and Extracts
// extractions, followed by the removal of every remaining element.
type Phases struct {
	Inserts    int   `yaml:"inserts"`
	Augments   int   `yaml:"augments"`
	Extracts   int   `yaml:"extracts"`
	KeyRange   int   `yaml:"key_range"`
	DeltaRange int   `yaml:"delta_range"`
	Seed       int64 `yaml:"seed"`
}

// DefaultPhases returns the default benchmark phases.
func DefaultPhases() Phases {
	return Phases{
		Inserts:    250000,
		Augments:   250000,
		Extracts:   125000,
		KeyRange:   100,
		DeltaRange: 1000,
		Seed:       1,
	}
}

type phaseTimer struct {
	ctx   context.Context
	stats *Stats
	kind  OpKind
	start time.Time
}

func startPhase(ctx context.Context, stats *Stats, kind OpKind) *phaseTimer {
	ctxlog.Logger(ctx).Debug("phase started", "name", stats.Name, "op", kind.String())
	return &phaseTimer{ctx: ctx, stats: stats, kind: kind, start: time.Now()}
}

func (pt *phaseTimer) done() error {
	ctxlog.Logger(pt.ctx).Info("phase finished",
		"name", pt.stats.Name,
		"op", pt.kind.String(),
		"calls", pt.stats.Calls(pt.kind),
		"elapsed", time.Since(pt.start))
	return pt.ctx.Err()
}

// Bench runs the phases described by p against q. Each AugmentKey is
// applied to a randomly chosen element and moves its key towards the
// top of the heap by a random delta.
func Bench[H comparable](ctx context.Context, name string, q heap.Queue[int, H], order heap.Order, p Phases) (*Stats, error) {
	rnd := rand.New(rand.NewSource(p.Seed)) // #nosec: G404
	stats := &Stats{Name: name}
	handles := make([]H, 0, p.Inserts)
	live := make(map[H]struct{}, p.Inserts)

	pt := startPhase(ctx, stats, Insert)
	for i := 0; i < p.Inserts; i++ {
		k := rnd.Intn(p.KeyRange)
		t0 := time.Now()
		h := q.Insert(k)
		stats.record(Insert, time.Since(t0))
		handles = append(handles, h)
		live[h] = struct{}{}
	}
	if err := pt.done(); err != nil {
		return stats, err
	}

	pt = startPhase(ctx, stats, AugmentKey)
	for i := 0; i < p.Augments && len(handles) > 0; i++ {
		h := handles[rnd.Intn(len(handles))]
		delta := heap.Delta(order, rnd.Intn(p.DeltaRange)+1)
		k, err := q.Key(h)
		if err != nil {
			return stats, err
		}
		t0 := time.Now()
		err = q.AugmentKey(h, k+delta)
		stats.record(AugmentKey, time.Since(t0))
		if err != nil {
			return stats, err
		}
	}
	if err := pt.done(); err != nil {
		return stats, err
	}

	pt = startPhase(ctx, stats, ExtractTop)
	for i := 0; i < p.Extracts && !q.Empty(); i++ {
		t0 := time.Now()
		h, _, err := q.ExtractTop()
		stats.record(ExtractTop, time.Since(t0))
		if err != nil {
			return stats, err
		}
		delete(live, h)
	}
	if err := pt.done(); err != nil {
		return stats, err
	}

	pt = startPhase(ctx, stats, Remove)
	for _, h := range handles {
		if _, ok := live[h]; !ok {
			continue
		}
		t0 := time.Now()
		_, err := q.Remove(h)
		stats.record(Remove, time.Since(t0))
		if err != nil {
			return stats, err
		}
		delete(live, h)
	}
	return stats, pt.done()
}

type stdSlice struct {
	keys []int
	less func(a, b int) bool
}

func (s *stdSlice) Len() int           { return len(s.keys) }
func (s *stdSlice) Less(i, j int) bool { return s.less(s.keys[i], s.keys[j]) }
func (s *stdSlice) Swap(i, j int)      { s.keys[i], s.keys[j] = s.keys[j], s.keys[i] }

func (s *stdSlice) Push(x any) {
	s.keys = append(s.keys, x.(int))
}

func (s *stdSlice) Pop() any {
	n := len(s.keys) - 1
	k := s.keys[n]
	s.keys = s.keys[:n]
	return k
}

// BenchStd runs the insert and extract phases described by p against
// container/heap as a baseline. The augment and remove phases are not
// performed since container/heap provides no means of addressing an
// element once it has been inserted.
func BenchStd(ctx context.Context, name string, order heap.Order, p Phases) (*Stats, error) {
	rnd := rand.New(rand.NewSource(p.Seed)) // #nosec: G404
	stats := &Stats{Name: name}
	h := &stdSlice{
		keys: make([]int, 0, p.Inserts),
		less: heap.PolicyFor[int](order),
	}

	pt := startPhase(ctx, stats, Insert)
	for i := 0; i < p.Inserts; i++ {
		k := rnd.Intn(p.KeyRange)
		t0 := time.Now()
		stdheap.Push(h, k)
		stats.record(Insert, time.Since(t0))
	}
	if err := pt.done(); err != nil {
		return stats, err
	}

	pt = startPhase(ctx, stats, ExtractTop)
	for i := 0; i < p.Extracts && h.Len() > 0; i++ {
		t0 := time.Now()
		_ = stdheap.Pop(h).(int)
		stats.record(ExtractTop, time.Since(t0))
	}
	return stats, pt.done()
}
