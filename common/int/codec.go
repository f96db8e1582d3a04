// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package int

import (
	"encoding/gob"
	"encoding/json"
	"math/big"
)

// init registers the Nat type with the gob package so values can be encoded
// directly or when embedded in other structs.
func init() {
	gob.Register(Nat{})
}

// MarshalJSON encodes the value as a JSON number in decimal.
func (x *Nat) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.big())
}

func (x *Nat) UnmarshalJSON(b []byte) error {
	var bi big.Int
	if err := json.Unmarshal(b, &bi); err != nil {
		return err
	}
	n, err := Wrap(&bi)
	if err != nil {
		return err
	}
	*x = *n
	return nil
}

// GobEncode encodes the value as its big-endian magnitude.
func (x *Nat) GobEncode() ([]byte, error) {
	return x.Bytes(), nil
}

func (x *Nat) GobDecode(b []byte) error {
	*x = *NatFromBytes(b)
	return nil
}
