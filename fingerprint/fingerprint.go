// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"encoding/hex"
	"hash"
	"io"

	"golang.org/x/crypto/sha3"
)

// Fingerprint - SHA3-256 digest of a text source
type Fingerprint [32]byte

// NewHash - a hash suitable for accumulating a fingerprint
func NewHash() hash.Hash {
	return sha3.New256()
}

// FromHash - extract the fingerprint from a hash created by NewHash
func FromHash(h hash.Hash) Fingerprint {
	var f Fingerprint
	copy(f[:], h.Sum(nil))
	return f
}

// Sum - fingerprint of a byte slice
func Sum(data []byte) Fingerprint {
	return Fingerprint(sha3.Sum256(data))
}

// Read - fingerprint of all the data from a reader
func Read(r io.Reader) (Fingerprint, error) {
	h := NewHash()
	if _, err := io.Copy(h, r); nil != err {
		return Fingerprint{}, err
	}
	return FromHash(h), nil
}

// IsZero - true if no fingerprint has been set
func (fingerprint Fingerprint) IsZero() bool {
	return Fingerprint{} == fingerprint
}

// String - hex representation
func (fingerprint Fingerprint) String() string {
	return hex.EncodeToString(fingerprint[:])
}

// MarshalText - convert fingerprint to hex text
func (fingerprint Fingerprint) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(fingerprint))
	buffer := make([]byte, size)
	hex.Encode(buffer, fingerprint[:])
	return buffer, nil
}
