//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Digest is a SHA-1 digest: the words A, B, C, D, and E forming one
// big-endian 160-bit value.
type Digest [5]uint32

// Bytes returns the digest as big-endian bytes.
func (d Digest) Bytes() [Size]byte {
	var result [Size]byte
	for i, w := range d {
		binary.BigEndian.PutUint32(result[i*4:], w)
	}
	return result
}

// Hex returns the digest as 40 lowercase hexadecimal characters.
func (d Digest) Hex() string {
	b := d.Bytes()
	return hex.EncodeToString(b[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// ParseDigest parses a digest from its hexadecimal representation.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != Size*2 {
		return d, fmt.Errorf("invalid digest length %d, expected %d",
			len(s), Size*2)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("invalid digest: %w", err)
	}
	return DigestFromBytes(b)
}

// DigestFromBytes creates a digest from its big-endian bytes.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != Size {
		return d, fmt.Errorf("invalid digest size %d, expected %d",
			len(b), Size)
	}
	for i := range d {
		d[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return d, nil
}
