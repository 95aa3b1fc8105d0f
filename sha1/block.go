//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// Round constants.
const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// State is the SHA-1 chaining value: the five words A, B, C, D, and E.
type State [5]uint32

// Block is one 512-bit message block as big-endian words.
type Block [16]uint32

// Schedule expands the block into the 80-word message schedule.
func Schedule(block *Block) [80]uint32 {
	var w [80]uint32
	copy(w[:], block[:])
	for i := 16; i < 80; i++ {
		w[i] = rotl(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}

// Compress runs the SHA-1 compression function over the block and
// returns the next chaining value.
func Compress(state State, block *Block) State {
	w := Schedule(block)

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = b&c | (^b)&d
			k = _K0
		case i < 40:
			f = b ^ c ^ d
			k = _K1
		case i < 60:
			f = b&c | b&d | c&d
			k = _K2
		default:
			f = b ^ c ^ d
			k = _K3
		}
		t := e + rotl(a, 5) + f + w[i] + k
		a, b, c, d, e = t, a, rotl(b, 30), c, d
	}

	return State{
		state[0] + a,
		state[1] + b,
		state[2] + c,
		state[3] + d,
		state[4] + e,
	}
}

// Blocks compresses the complete blocks of p into state. The length
// of p must be a multiple of BlockSize.
func Blocks(state State, p []byte) State {
	if len(p)%BlockSize != 0 {
		panic("sha1: partial block")
	}
	var block Block
	for ; len(p) > 0; p = p[BlockSize:] {
		for i := 0; i < 16; i++ {
			block[i] = binary.BigEndian.Uint32(p[i*4:])
		}
		state = Compress(state, &block)
	}
	return state
}

func rotl(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n%32))
}
