// Copyright © 2025 PrimeChecker Authors.
//
// This file is part of PrimeChecker. The full copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"encoding/binary"

	big "github.com/JamesDevlin5/PrimeChecker/common/int"
	"golang.org/x/crypto/blake2b"
)

const (
	hashInputDelimiter = byte('$')
)

// Blake2bNats hashes the big-endian bytes of the inputs into a single value.
// Each element is framed with a delimiter and its length, and the element
// count is prepended, so distinct input vectors cannot collide by
// concatenation tricks.
func Blake2bNats(in ...*big.Nat) *big.Nat {
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzs := make([][]byte, inLen)
	bzSize := 0
	for i, n := range in {
		bzs[i] = n.Bytes()
		bzSize += len(bzs[i])
	}
	inLenBz := make([]byte, 8)
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	data := make([]byte, 0, len(inLenBz)+bzSize+inLen*9)
	data = append(data, inLenBz...)
	for _, bz := range bzs {
		data = append(data, bz...)
		data = append(data, hashInputDelimiter)
		dataLen := make([]byte, 8)
		binary.LittleEndian.PutUint64(dataLen, uint64(len(bz)))
		data = append(data, dataLen...)
	}
	sum := blake2b.Sum256(data)
	return big.NatFromBytes(sum[:])
}
