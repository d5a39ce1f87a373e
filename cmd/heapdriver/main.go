// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command heapdriver generates, replays and benchmarks operation logs
// against the heap engines.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/heaps/heap"
	"cloudeng.io/heaps/heapdriver"
	"cloudeng.io/logging/ctxlog"
)

const commands = `name: heapdriver
summary: generate, replay and benchmark operation logs against the heap engines
commands:
  - name: generate
    summary: generate a random operation log
    arguments:
      - <file>
  - name: replay
    summary: replay an operation log against one or more engines
    arguments:
      - <file>
  - name: bench
    summary: run consecutive insert, augment, extract and remove phases against one or more engines
  - name: engines
    summary: list the supported engines
`

type generateFlags struct {
	cmdutil.LoggingFlags
	Ops        int   `subcmd:"ops,1000000,number of operations to generate"`
	KeyRange   int   `subcmd:"key-range,100,keys are drawn from [0 key-range)"`
	DeltaRange int   `subcmd:"delta-range,100,augment deltas are drawn from [1 delta-range]"`
	Seed       int64 `subcmd:"seed,0,random seed or 0 to use the current time"`
}

// OrderFlags select the engines and heap order to use.
type OrderFlags struct {
	Engines string `subcmd:"engines,,'comma separated list of engines, defaults to all engines'"`
	Order   string `subcmd:"order,descending,'heap order: ascending (min) or descending (max)'"`
}

type replayFlags struct {
	cmdutil.LoggingFlags
	OrderFlags
}

type benchFlags struct {
	cmdutil.LoggingFlags
	OrderFlags
	Config   string `subcmd:"config,,'yaml configuration file, overrides all other flags'"`
	Inserts  int    `subcmd:"inserts,250000,number of inserts"`
	Augments int    `subcmd:"augments,250000,number of key augmentations"`
	Extracts int    `subcmd:"extracts,125000,number of extractions"`
	Seed     int64  `subcmd:"seed,1,random seed"`
}

type enginesFlags struct{}

var cmdSet = subcmd.MustFromYAML(commands)

func init() {
	cmdSet.Set("generate").MustRunnerAndFlags(generate, subcmd.MustRegisteredFlagSet(&generateFlags{}))
	cmdSet.Set("replay").MustRunnerAndFlags(replay, subcmd.MustRegisteredFlagSet(&replayFlags{}))
	cmdSet.Set("bench").MustRunnerAndFlags(bench, subcmd.MustRegisteredFlagSet(&benchFlags{}))
	cmdSet.Set("engines").MustRunnerAndFlags(engines, subcmd.MustRegisteredFlagSet(&enginesFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// withLogger attaches the logger specified by lf to ctx. The returned
// function must be called to close any log file.
func withLogger(ctx context.Context, lf *cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	logger.LogBuildInfo()
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (of OrderFlags) parse() ([]string, heap.Order, error) {
	var order heap.Order
	if err := order.Set(of.Order); err != nil {
		return nil, order, err
	}
	if len(of.Engines) == 0 {
		return heapdriver.Engines(), order, nil
	}
	var engines []string
	for _, e := range strings.Split(of.Engines, ",") {
		e = strings.TrimSpace(e)
		if err := heapdriver.ValidateEngine(e); err != nil {
			return nil, order, err
		}
		engines = append(engines, e)
	}
	return engines, order, nil
}

func generate(ctx context.Context, values any, args []string) error {
	fv := values.(*generateFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	seed := fv.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if fv.KeyRange <= 0 || fv.DeltaRange <= 0 {
		return fmt.Errorf("key-range and delta-range must be positive")
	}
	ops := heapdriver.Generate(rand.New(rand.NewSource(seed)), fv.Ops, fv.KeyRange, fv.DeltaRange) // #nosec: G404
	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := heapdriver.WriteOps(f, ops); err != nil {
		f.Close()
		return err
	}
	ctxlog.Logger(ctx).Info("generated", "file", args[0], "ops", len(ops), "seed", seed)
	return f.Close()
}

func replay(ctx context.Context, values any, args []string) error {
	fv := values.(*replayFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	engines, order, err := fv.parse()
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	ops, err := heapdriver.ReadOps(f)
	if err != nil {
		return err
	}
	stats, err := heapdriver.ReplayAll(ctx, engines, order, ops)
	if rerr := heapdriver.Report(os.Stdout, stats...); rerr != nil {
		return rerr
	}
	return err
}

func bench(ctx context.Context, values any, _ []string) error {
	fv := values.(*benchFlags)
	ctx, done, err := withLogger(ctx, &fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer done()
	var cfg heapdriver.Config
	if len(fv.Config) > 0 {
		cfg, err = heapdriver.LoadConfig(fv.Config)
		if err != nil {
			return err
		}
	} else {
		cfg = heapdriver.DefaultConfig()
		cfg.Engines, cfg.Order, err = fv.parse()
		if err != nil {
			return err
		}
		cfg.Phases.Inserts = fv.Inserts
		cfg.Phases.Augments = fv.Augments
		cfg.Phases.Extracts = fv.Extracts
		cfg.Phases.Seed = fv.Seed
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	stats, err := heapdriver.BenchAll(ctx, cfg)
	if rerr := heapdriver.Report(os.Stdout, stats...); rerr != nil {
		return rerr
	}
	return err
}

func engines(_ context.Context, _ any, _ []string) error {
	for _, e := range heapdriver.Engines() {
		fmt.Println(e)
	}
	return nil
}
