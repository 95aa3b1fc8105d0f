//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package compare

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// PRG is a deterministic pseudorandom generator producing the
// ChaCha20 keystream of its key and stream number.
type PRG struct {
	c *chacha20.Cipher
}

// NewPRG creates a generator for the stream. The seed may be of any
// non-zero length; it is repeated or trimmed to the 32-byte key.
func NewPRG(seed []byte, stream uint64) *PRG {
	if len(seed) == 0 {
		panic("compare: empty PRG seed")
	}
	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	binary.BigEndian.PutUint64(nonce[chacha20.NonceSize-8:], stream)

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &PRG{
		c: c,
	}
}

// Read fills p with keystream bytes. It never fails.
func (prg *PRG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	prg.c.XORKeyStream(p, p)
	return len(p), nil
}

// Intn returns a pseudorandom number in [0,n).
func (prg *PRG) Intn(n int) int {
	if n <= 0 {
		panic("compare: invalid argument to Intn")
	}
	var buf [8]byte
	prg.Read(buf[:])
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
