//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding"
	"encoding/binary"
	"errors"
)

// Marshaling errors.
var (
	ErrInvalidState      = errors.New("sha1: invalid hash state identifier")
	ErrInvalidSize       = errors.New("sha1: invalid hash state size")
	ErrInconsistentState = errors.New("sha1: inconsistent hash state")
)

const (
	magic         = "sha\x01b"
	marshaledSize = len(magic) + 5*4 + 8 + 2 + BlockSize
)

var (
	_ encoding.BinaryMarshaler   = (*Hash)(nil)
	_ encoding.BinaryUnmarshaler = (*Hash)(nil)
)

// MarshalBinary encodes the engine state. The encoding holds the
// chaining value, the message length, and the buffered bits.
func (d *Hash) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, w := range d.h {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	b = binary.BigEndian.AppendUint64(b, d.len)
	b = binary.BigEndian.AppendUint16(b, uint16(d.nx))
	b = append(b, d.x[:]...)
	return b, nil
}

// UnmarshalBinary restores the engine state from data created with
// MarshalBinary.
func (d *Hash) UnmarshalBinary(data []byte) error {
	if len(data) < len(magic) || string(data[:len(magic)]) != magic {
		return ErrInvalidState
	}
	if len(data) != marshaledSize {
		return ErrInvalidSize
	}
	b := data[len(magic):]

	var h State
	for i := range h {
		h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	length := binary.BigEndian.Uint64(b)
	b = b[8:]
	nx := int(binary.BigEndian.Uint16(b))
	b = b[2:]

	if nx >= blockBits || uint64(nx) != length%blockBits {
		return ErrInconsistentState
	}
	var x [BlockSize]byte
	copy(x[:], b)

	// Bits after the buffered ones must be clear.
	for i := nx; i < blockBits; i++ {
		if x[i/8]&(0x80>>uint(i%8)) != 0 {
			return ErrInconsistentState
		}
	}

	d.h = h
	d.x = x
	d.nx = nx
	d.len = length
	return nil
}
