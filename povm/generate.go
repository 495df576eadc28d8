// SPDX-License-Identifier: MIT

package povm

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qualg/operator"
)

// Subset selects which click patterns Generate computes.
type Subset int

const (
	// All computes every (nC, nD) with nC + nD <= maxA + maxB.
	All Subset = iota
	// Leq keeps nC <= nD.
	Leq
	// Greater keeps nC > nD; Leq and Greater partition All.
	Greater
)

func (s Subset) keep(k Key) bool {
	switch s {
	case Leq:
		return k.Left <= k.Right
	case Greater:
		return k.Left > k.Right
	default:
		return true
	}
}

func (s Subset) String() string {
	switch s {
	case Leq:
		return "leq"
	case Greater:
		return "greater"
	default:
		return "all"
	}
}

// Element is one computed POVM element.
type Element struct {
	Key Key
	Op  *operator.Operator
}

// Option configures Generate.
type Option func(*config)

type config struct {
	workers int
	log     zerolog.Logger
	subset  Subset
}

// WithWorkers bounds the number of elements computed at once. n < 1 panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("povm: WithWorkers requires n >= 1")
	}
	return func(c *config) { c.workers = n }
}

// WithLogger receives per-element progress at debug level and a summary at
// info level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithSubset restricts the click patterns; an unknown value panics.
func WithSubset(s Subset) Option {
	if s < All || s > Greater {
		panic("povm: unknown subset")
	}
	return func(c *config) { c.subset = s }
}

// Keys lists the click patterns for inputs up to (maxA, maxB), ordered by
// (Left, Right).
func Keys(maxA, maxB int, subset Subset) []Key {
	total := maxA + maxB
	var out []Key
	for n := 0; n <= total; n++ {
		for m := 0; n+m <= total; m++ {
			if k := (Key{Left: n, Right: m}); subset.keep(k) {
				out = append(out, k)
			}
		}
	}
	return out
}

// Generate computes the POVM elements for inputs up to (maxA, maxB) in
// parallel. Every element is independent; the first failure cancels the
// elements not yet started. The result follows Keys order.
//
// Defaults: runtime.GOMAXPROCS(0) workers, all click patterns, no logging.
func Generate(ctx context.Context, maxA, maxB int, opts ...Option) ([]Element, error) {
	cfg := config{workers: runtime.GOMAXPROCS(0), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkPhotons(maxA, maxB); err != nil {
		return nil, povmErrorf(opGenerate, err)
	}
	log := cfg.log.With().Str("component", "povm").Logger()

	keys := Keys(maxA, maxB, cfg.subset)
	out := make([]Element, len(keys))
	start := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i, k := range keys {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			op, err := Calculate(k.Left, k.Right, maxA, maxB)
			if err != nil {
				return err
			}
			out[i] = Element{Key: k, Op: op}
			log.Debug().
				Str("key", k.String()).
				Int("terms", op.Len()).
				Dur("took", time.Since(t0)).
				Msg("povm element ready")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, povmErrorf(opGenerate, err)
	}

	log.Info().
		Int("elements", len(out)).
		Int("max_a", maxA).
		Int("max_b", maxB).
		Str("subset", cfg.subset.String()).
		Float64("elapsed_seconds", time.Since(start).Seconds()).
		Msg("povm generation complete")
	return out, nil
}
