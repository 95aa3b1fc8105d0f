//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bitvec implements packed bit strings. Bits are stored
// most-significant-bit first: bit i of a vector lives in byte i/8
// under the mask 0x80>>(i%8). This is the bit order SHA-1 uses for
// its message input.
package bitvec

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrSyntax is returned when parsing a bit string that contains runes
// other than '0', '1', separators, or whitespace.
var ErrSyntax = errors.New("invalid bit string")

// Vector is an immutable sequence of bits. The zero value is an empty
// vector. The unused trailing bits of the last data byte are always
// zero.
type Vector struct {
	data []byte
	n    int
}

// FromBytes returns the bits of data, each byte most-significant bit
// first. The vector shares storage with data.
func FromBytes(data []byte) Vector {
	return Vector{
		data: data,
		n:    len(data) * 8,
	}
}

// FromBools packs the bit slice into a vector.
func FromBools(bits []bool) Vector {
	data := make([]byte, (len(bits)+7)/8)
	for idx, bit := range bits {
		if bit {
			data[idx/8] |= 0x80 >> uint(idx%8)
		}
	}
	return Vector{
		data: data,
		n:    len(bits),
	}
}

// Parse parses a textual bit string. Separators '_' and whitespace
// are ignored.
func Parse(s string) (Vector, error) {
	var bits []bool
	for idx, r := range s {
		switch {
		case r == '0':
			bits = append(bits, false)
		case r == '1':
			bits = append(bits, true)
		case r == '_' || unicode.IsSpace(r):
		default:
			return Vector{}, fmt.Errorf("%w: unexpected %q at offset %d",
				ErrSyntax, r, idx)
		}
	}
	return FromBools(bits), nil
}

// Len returns the number of bits in the vector.
func (v Vector) Len() int {
	return v.n
}

// Aligned tests if the vector length is a multiple of 8.
func (v Vector) Aligned() bool {
	return v.n%8 == 0
}

// Bit returns the bit at index i.
func (v Vector) Bit(i int) bool {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0:%d]", i, v.n))
	}
	return v.data[i/8]&(0x80>>uint(i%8)) != 0
}

// Bytes returns the packed bits. Unused bits of the last byte are
// zero. The result must not be modified.
func (v Vector) Bytes() []byte {
	return v.data[:(v.n+7)/8]
}

// Bools returns the bits as a bool slice.
func (v Vector) Bools() []bool {
	result := make([]bool, v.n)
	for i := 0; i < v.n; i++ {
		result[i] = v.Bit(i)
	}
	return result
}

// Slice returns the bits [from:to) of the vector. If from is byte
// aligned, the result shares storage with v.
func (v Vector) Slice(from, to int) Vector {
	if from < 0 || to < from || to > v.n {
		panic(fmt.Sprintf("bitvec: slice bounds [%d:%d] out of range [0:%d]",
			from, to, v.n))
	}
	n := to - from
	if from%8 == 0 {
		if n%8 == 0 {
			return Vector{
				data: v.data[from/8 : to/8],
				n:    n,
			}
		}
		// The last byte carries bits past the slice end and they
		// must be cleared.
		data := make([]byte, (n+7)/8)
		copy(data, v.data[from/8:])
		data[len(data)-1] &= mask(n % 8)
		return Vector{
			data: data,
			n:    n,
		}
	}
	data := make([]byte, (n+7)/8)
	copyBits(data, 0, v.data, from, n)
	return Vector{
		data: data,
		n:    n,
	}
}

// Append returns the concatenation of v and o.
func (v Vector) Append(o Vector) Vector {
	n := v.n + o.n
	data := make([]byte, (n+7)/8)
	copy(data, v.Bytes())
	copyBits(data, v.n, o.data, 0, o.n)
	return Vector{
		data: data,
		n:    n,
	}
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// mask returns a byte with the n leading bits set.
func mask(n int) byte {
	return ^byte(0xff >> uint(n))
}

// CopyBits copies n bits from src starting at bit offset srcOfs to
// dst starting at bit offset dstOfs. Bits of dst after dstOfs+n are
// left intact. It returns the number of bits copied.
func CopyBits(dst []byte, dstOfs int, src []byte, srcOfs, n int) int {
	if n <= 0 {
		return 0
	}
	if dstOfs+n > len(dst)*8 || srcOfs+n > len(src)*8 {
		panic("bitvec: copy out of range")
	}
	copyBits(dst, dstOfs, src, srcOfs, n)
	return n
}

// copyBits is CopyBits without bounds checks.
func copyBits(dst []byte, dstOfs int, src []byte, srcOfs, n int) {
	if dstOfs%8 == 0 && srcOfs%8 == 0 {
		full := n / 8
		copy(dst[dstOfs/8:], src[srcOfs/8:srcOfs/8+full])
		if rem := n % 8; rem > 0 {
			i := dstOfs/8 + full
			m := mask(rem)
			dst[i] = dst[i]&^m | src[srcOfs/8+full]&m
		}
		return
	}
	for i := 0; i < n; i++ {
		s := srcOfs + i
		d := dstOfs + i
		bit := byte(0x80) >> uint(d%8)
		if src[s/8]&(0x80>>uint(s%8)) != 0 {
			dst[d/8] |= bit
		} else {
			dst[d/8] &^= bit
		}
	}
}
