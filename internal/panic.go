// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package internal holds test helpers shared across the repo.
package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoPanic reports that the function under test returned normally.
var ErrNoPanic = errors.New("expected a panic, got none")

// CapturePanic runs f, recovering any panic and returning it as an error.
// A nil result means f returned normally.
func CapturePanic(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

// ExpectPanic runs f and checks that it panics with the expected message.
// A nil expectation accepts any panic.
func ExpectPanic(expected error, f func()) error {
	err := CapturePanic(f)
	if err == nil {
		return ErrNoPanic
	}
	if expected == nil {
		return nil
	}
	if err.Error() != expected.Error() {
		return errors.Wrapf(err, "expected panic %q", expected)
	}
	return nil
}
