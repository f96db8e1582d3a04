// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput rejects nil or malformed numbers and bad configuration.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInputTooLarge is returned by algorithms with a hard operating
	// ceiling when the input exceeds it.
	ErrInputTooLarge = errors.New("input exceeds the supported range")
)
