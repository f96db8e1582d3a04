// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"fmt"
	big2 "math/big"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"

	"github.com/ipfs/go-log"
)

var Logger = log.Logger("primecheck")

// FormatNat renders a value for debug logs. Small values print in full;
// anything wider than 32 bits is abbreviated to its low 32 bits in hex.
func FormatNat(a *big.Nat) string {
	if a == nil {
		return "<nil>"
	}
	if a.BitLen() <= 32 {
		return a.String()
	}
	var aux = new(big2.Int).SetUint64(0xFFFFFFFF)
	return new(big2.Int).And(a.Big(), aux).Text(16)
}

func NatsToString(array []*big.Nat) string {
	r := ""
	for a, b := range array {
		r = fmt.Sprintf("%s %d:%s ", r, a, FormatNat(b))
	}
	return r
}
