//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm over bit
// strings. Unlike crypto/sha1, messages do not need to be a whole
// number of bytes: the engine accepts input in chunks of any bit
// length and alignment.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"encoding/binary"
	"hash"

	"github.com/markkurossi/sha1bits/bitvec"
)

// Size is the size of a SHA-1 checksum in bytes.
const Size = 20

// BlockSize is the block size of SHA-1 in bytes.
const BlockSize = 64

const (
	blockBits  = BlockSize * 8
	lengthBits = 64
	padTarget  = blockBits - lengthBits

	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// InitialState is the SHA-1 initial chaining value.
var InitialState = State{init0, init1, init2, init3, init4}

var _ hash.Hash = (*Hash)(nil)

// Hash is a streaming SHA-1 engine. It accumulates message bits until
// Finalize is called. A Hash must not be used concurrently from
// multiple goroutines.
type Hash struct {
	h State
	// x holds nx buffered message bits, MSB first. The bits of x
	// after nx are always zero.
	x   [BlockSize]byte
	nx  int
	len uint64
}

// New creates a new hash engine.
func New() *Hash {
	d := new(Hash)
	d.Reset()
	return d
}

// Reset resets the engine to its initial state.
func (d *Hash) Reset() {
	d.h = InitialState
	d.x = [BlockSize]byte{}
	d.nx = 0
	d.len = 0
}

// Size returns the checksum size in bytes.
func (d *Hash) Size() int { return Size }

// BlockSize returns the block size in bytes.
func (d *Hash) BlockSize() int { return BlockSize }

// Len returns the number of message bits added since the last reset.
func (d *Hash) Len() uint64 { return d.len }

// Add adds the message bits to the hash.
func (d *Hash) Add(v bitvec.Vector) {
	n := v.Len()
	src := v.Bytes()
	d.len += uint64(n)

	if d.nx+n < blockBits {
		bitvec.CopyBits(d.x[:], d.nx, src, 0, n)
		d.nx += n
		return
	}

	// Complete the buffered block.
	var ofs int
	if d.nx > 0 {
		ofs = blockBits - d.nx
		bitvec.CopyBits(d.x[:], d.nx, src, 0, ofs)
		d.h = Blocks(d.h, d.x[:])
		d.x = [BlockSize]byte{}
		d.nx = 0
	}

	// Compress the following blocks directly from the input.
	full := (n - ofs) &^ (blockBits - 1)
	if ofs%8 == 0 {
		d.h = Blocks(d.h, src[ofs/8:(ofs+full)/8])
	} else {
		var block [BlockSize]byte
		for i := 0; i < full; i += blockBits {
			bitvec.CopyBits(block[:], 0, src, ofs+i, blockBits)
			d.h = Blocks(d.h, block[:])
		}
	}
	ofs += full

	d.nx = n - ofs
	bitvec.CopyBits(d.x[:], 0, src, ofs, d.nx)
}

// AddBools adds the message bits to the hash.
func (d *Hash) AddBools(bits []bool) {
	d.Add(bitvec.FromBools(bits))
}

// Write adds the bytes of p to the hash. It never returns an error.
func (d *Hash) Write(p []byte) (int, error) {
	d.Add(bitvec.FromBytes(p))
	return len(p), nil
}

// Finalize pads the message, completes the hash computation, and
// returns the digest. The engine is reset to its initial state so
// that it can be used to hash a new message.
func (d *Hash) Finalize() Digest {
	digest := d.checkSum()
	d.Reset()
	return digest
}

// Sum appends the digest of the message so far to in. Unlike
// Finalize, Sum does not change the engine state.
func (d *Hash) Sum(in []byte) []byte {
	d0 := *d
	digest := d0.checkSum()
	b := digest.Bytes()
	return append(in, b[:]...)
}

func (d *Hash) checkSum() Digest {
	// Padding. Add a 1 bit and 0 bits until 448 bits mod 512, then
	// the message length in bits.
	var tmp [2 * BlockSize]byte
	copy(tmp[:], d.x[:])
	tmp[d.nx/8] |= 0x80 >> uint(d.nx%8)

	t := padTarget
	if d.nx+1 > padTarget {
		t += blockBits
	}
	binary.BigEndian.PutUint64(tmp[t/8:], d.len)

	padded := tmp[:(t+lengthBits)/8]
	if len(padded) != BlockSize && len(padded) != 2*BlockSize {
		panic("sha1: invalid padding")
	}
	h := Blocks(d.h, padded[:BlockSize])
	if len(padded) > BlockSize {
		h = Blocks(h, padded[BlockSize:])
	}
	return Digest(h)
}

// Sum returns the SHA-1 digest of data.
func Sum(data []byte) Digest {
	return SumBits(bitvec.FromBytes(data))
}

// SumBits returns the SHA-1 digest of the bit string.
func SumBits(v bitvec.Vector) Digest {
	var d Hash
	d.Reset()
	d.Add(v)
	return d.checkSum()
}
