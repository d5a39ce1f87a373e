// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heapdriver

import (
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/heaps/heap"
)

// Config represents the configuration for a benchmark run, typically
// read from a YAML file such as:
//
//	order: descending
//	engines: [binary, fibonacci, pairing, std]
//	phases:
//	  inserts: 250000
//	  augments: 250000
//	  extracts: 125000
//	  key_range: 100
//	  delta_range: 1000
//	  seed: 1
type Config struct {
	Order   heap.Order `yaml:"order"`
	Engines []string   `yaml:"engines"`
	Phases  Phases     `yaml:"phases"`
}

// DefaultConfig returns a configuration that runs the default phases
// against all engines for a max-heap.
func DefaultConfig() Config {
	return Config{
		Order:   heap.Descending,
		Engines: Engines(),
		Phases:  DefaultPhases(),
	}
}

// LoadConfig reads a YAML configuration file. Any fields not present in
// the file retain the values from DefaultConfig.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%v: %w", file, err)
	}
	return cfg, nil
}

// Validate returns all of the errors found in the configuration.
func (c Config) Validate() error {
	errs := &errors.M{}
	if len(c.Engines) == 0 {
		errs.Append(errors.New("no engines specified"))
	}
	for _, e := range c.Engines {
		errs.Append(ValidateEngine(e))
	}
	p := c.Phases
	if p.Inserts < 0 || p.Augments < 0 || p.Extracts < 0 {
		errs.Append(fmt.Errorf("phase counts must not be negative: %+v", p))
	}
	if p.KeyRange <= 0 {
		errs.Append(fmt.Errorf("key_range must be positive: %v", p.KeyRange))
	}
	if p.DeltaRange <= 0 {
		errs.Append(fmt.Errorf("delta_range must be positive: %v", p.DeltaRange))
	}
	return errs.Err()
}
