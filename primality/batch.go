// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"context"
	"runtime"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// TestAll classifies each input independently with at most parallel workers,
// sharing one config. Verdicts come back in input order. The first error
// cancels the remaining work; parallel < 1 means one worker per CPU.
func TestAll(ctx context.Context, ns []*big.Nat, cfg *Config, parallel int) ([]Verdict, error) {
	if parallel < 1 {
		parallel = runtime.NumCPU()
	}
	verdicts := make([]Verdict, len(ns))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i, n := range ns {
		i, n := i, n
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			v, err := Test(n, cfg)
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			verdicts[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return verdicts, nil
}
