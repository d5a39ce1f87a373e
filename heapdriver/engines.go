// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/errors"
	"cloudeng.io/heaps/heap"
	"cloudeng.io/logging/ctxlog"
)

// Names of the supported engines.
const (
	EngineBinary    = "binary"
	EngineFibonacci = "fibonacci"
	EnginePairing   = "pairing"
	// EngineStd is container/heap, it supports Bench only.
	EngineStd = "std"
)

// Engines returns the names of all of the supported engines.
func Engines() []string {
	return []string{EngineBinary, EngineFibonacci, EnginePairing, EngineStd}
}

// ValidateEngine returns an error if name is not a supported engine.
func ValidateEngine(name string) error {
	return flags.OneOf(name).Validate(EngineBinary, EngineFibonacci, EnginePairing, EngineStd)
}

func statsName(engine string, order heap.Order, what string) string {
	return fmt.Sprintf("%v %v heap with %v operations", order, engine, what)
}

// ReplayEngine replays ops against a newly created instance of the
// named engine.
func ReplayEngine(ctx context.Context, engine string, order heap.Order, ops []Op) (*Stats, error) {
	name := statsName(engine, order, "random")
	switch engine {
	case EngineBinary:
		return Replay[int](ctx, name, NewStableBinary(order, 0), order, ops)
	case EngineFibonacci:
		return Replay[heap.FibonacciHandle[int]](ctx, name, heap.NewFibonacci(heap.PolicyFor[int](order)), order, ops)
	case EnginePairing:
		return Replay[heap.PairingHandle[int]](ctx, name, heap.NewPairing(heap.PolicyFor[int](order)), order, ops)
	case EngineStd:
		return nil, fmt.Errorf("%v: does not support replaying operation logs", engine)
	}
	return nil, ValidateEngine(engine)
}

// BenchEngine runs the benchmark phases p against a newly created
// instance of the named engine.
func BenchEngine(ctx context.Context, engine string, order heap.Order, p Phases) (*Stats, error) {
	name := statsName(engine, order, "consecutive")
	switch engine {
	case EngineBinary:
		return Bench[int](ctx, name, NewStableBinary(order, p.Inserts), order, p)
	case EngineFibonacci:
		q := heap.NewFibonacci(heap.PolicyFor[int](order), heap.WithSliceCap[int](p.Inserts))
		return Bench[heap.FibonacciHandle[int]](ctx, name, q, order, p)
	case EnginePairing:
		q := heap.NewPairing(heap.PolicyFor[int](order), heap.WithSliceCap[int](p.Inserts))
		return Bench[heap.PairingHandle[int]](ctx, name, q, order, p)
	case EngineStd:
		return BenchStd(ctx, name, order, p)
	}
	return nil, ValidateEngine(engine)
}

// ReplayAll replays ops against each of the named engines. Failures are
// collected and returned together with the stats for the engines that
// succeeded.
func ReplayAll(ctx context.Context, engines []string, order heap.Order, ops []Op) ([]*Stats, error) {
	return runAll(ctx, engines, func(ctx context.Context, engine string) (*Stats, error) {
		return ReplayEngine(ctx, engine, order, ops)
	})
}

// BenchAll runs the benchmark described by cfg against each of its
// engines.
func BenchAll(ctx context.Context, cfg Config) ([]*Stats, error) {
	return runAll(ctx, cfg.Engines, func(ctx context.Context, engine string) (*Stats, error) {
		return BenchEngine(ctx, engine, cfg.Order, cfg.Phases)
	})
}

func runAll(ctx context.Context, engines []string, fn func(context.Context, string) (*Stats, error)) ([]*Stats, error) {
	var all []*Stats
	errs := &errors.M{}
	for _, engine := range engines {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		ectx := ctxlog.ContextWith(ctx, "engine", engine)
		stats, err := fn(ectx, engine)
		if err != nil {
			ctxlog.Logger(ectx).Error("failed", "error", err)
			errs.Append(errors.Annotate(engine, err))
			continue
		}
		all = append(all, stats)
	}
	return all, errs.Err()
}
