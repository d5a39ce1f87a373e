// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"cloudeng.io/heaps/heap"
	"cloudeng.io/heaps/heapdriver"
	"cloudeng.io/logging/ctxlog"
)

func parseOps(t *testing.T, log string) []heapdriver.Op {
	t.Helper()
	ops, err := heapdriver.ReadOps(strings.NewReader(log))
	if err != nil {
		t.Fatal(err)
	}
	return ops
}

const maxLog = `Insert:0,5
Insert:1,3
Insert:2,8
AugmentKey:1,10
ExtractTop:
Remove:1
Remove:0
AugmentKey:7,1
Insert:3,1
ExtractTop:
ExtractTop:
ExtractTop:
Insert:4,2
`

const minLog = `Insert:0,5
Insert:1,3
AugmentKey:0,4
ExtractTop:
`

func testReplay[H comparable](t *testing.T, newQueue func(heap.Order) heap.Queue[int, H]) {
	t.Helper()
	ctx := context.Background()

	q := newQueue(heap.Descending)
	stats, err := heapdriver.Replay(ctx, "max", q, heap.Descending, parseOps(t, maxLog))
	if err != nil {
		t.Fatal(err)
	}
	for k, want := range map[heapdriver.OpKind]int{
		heapdriver.Insert:     5,
		heapdriver.AugmentKey: 1,
		heapdriver.ExtractTop: 2,
		heapdriver.Remove:     1,
	} {
		if got := stats.Calls(k); got != want {
			t.Errorf("%v: got %v, want %v", k, got, want)
		}
	}
	if got, want := stats.Skipped, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, k, err := q.Top(); err != nil || k != 2 || q.Len() != 1 {
		t.Errorf("got %v, %v, %v, want 2, 1", k, err, q.Len())
	}

	q = newQueue(heap.Ascending)
	if _, err := heapdriver.Replay(ctx, "min", q, heap.Ascending, parseOps(t, minLog)); err != nil {
		t.Fatal(err)
	}
	if _, k, err := q.Top(); err != nil || k != 3 || q.Len() != 1 {
		t.Errorf("got %v, %v, %v, want 3, 1", k, err, q.Len())
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := heapdriver.Replay(cctx, "canceled", newQueue(heap.Ascending), heap.Ascending, parseOps(t, minLog)); !errors.Is(err, context.Canceled) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestReplay(t *testing.T) {
	testReplay(t, func(o heap.Order) heap.Queue[int, int] {
		return heapdriver.NewStableBinary(o, 0)
	})
	testReplay(t, func(o heap.Order) heap.Queue[int, heap.FibonacciHandle[int]] {
		return heap.NewFibonacci(heap.PolicyFor[int](o))
	})
	testReplay(t, func(o heap.Order) heap.Queue[int, heap.PairingHandle[int]] {
		return heap.NewPairing(heap.PolicyFor[int](o))
	})
}

func TestReplayAll(t *testing.T) {
	var out bytes.Buffer
	ctx := ctxlog.NewJSONLogger(context.Background(), &out, &slog.HandlerOptions{Level: slog.LevelDebug})
	ops := heapdriver.Generate(rand.New(rand.NewSource(4)), 20000, 1000, 100)

	stats, err := heapdriver.ReplayAll(ctx,
		[]string{heapdriver.EngineBinary, heapdriver.EngineStd, "bogus", heapdriver.EngineFibonacci, heapdriver.EnginePairing},
		heap.Descending, ops)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, msg := range []string{"std: ", "bogus: "} {
		if !strings.Contains(err.Error(), msg) {
			t.Errorf("%q missing from %v", msg, err)
		}
	}
	if got, want := len(stats), 3; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	inserts := 0
	for _, op := range ops {
		if op.Kind == heapdriver.Insert {
			inserts++
		}
	}
	for _, s := range stats {
		if got, want := s.Calls(heapdriver.Insert), inserts; got != want {
			t.Errorf("%v: got %v, want %v", s.Name, got, want)
		}
		total := s.Skipped
		for _, k := range heapdriver.Kinds() {
			total += s.Calls(k)
		}
		if got, want := total, len(ops); got != want {
			t.Errorf("%v: got %v, want %v", s.Name, got, want)
		}
	}
	for _, msg := range []string{`"msg":"replay finished"`, `"engine":"pairing"`, `"msg":"failed"`} {
		if !strings.Contains(out.String(), msg) {
			t.Errorf("%v missing from log output", msg)
		}
	}
}
