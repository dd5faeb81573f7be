// Package chacha20 implements the ChaCha20 stream cipher as specified by
// RFC 7539.  A keystream is derived from a 256-bit key, a 96-bit nonce, and
// a 32-bit block counter, and combined with data by XOR.  Encryption and
// decryption are the same operation.
//
// The package provides no authentication and no nonce management.  Callers
// must guarantee that a (key, nonce, counter) triple is never reused across
// two different plaintexts; reuse breaks confidentiality.  Key and state
// buffers are not zeroed after use.
package chacha20

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

const (
	// KeySize is the length in bytes of a ChaCha20 key.
	KeySize = 32

	// NonceSize is the length in bytes of a ChaCha20 nonce.
	NonceSize = 12

	// BlockSize is the length in bytes of one keystream block.
	BlockSize = 64

	// rounds is the standard ChaCha20 round count.  The block function
	// accepts other even counts, but only 20 produces a keystream
	// interoperable with RFC 7539.
	rounds = 20
)

// The four constant words occupying state positions 0 through 3: the ASCII
// string "expand 32-byte k" read as little-endian words.
const (
	j0 uint32 = 0x61707865
	j1 uint32 = 0x3320646e
	j2 uint32 = 0x79622d32
	j3 uint32 = 0x6b206574
)

// Errors returned on precondition violations.  All preconditions are
// checked before any keystream is generated; a failed call writes no
// output.
var (
	ErrInvalidKeyLength     = errors.New("chacha20: invalid key length")
	ErrInvalidNonceLength   = errors.New("chacha20: invalid nonce length")
	ErrBufferLengthMismatch = errors.New("chacha20: output buffer shorter than input")
	ErrCounterOverflow      = errors.New("chacha20: block counter overflow")
)

// state is the 16-word cipher state: 4 constant words, 8 key words, the
// block counter at position 12, and 3 nonce words.
type state [16]uint32

// setup fills s from key, counter, and nonce per the RFC 7539 state
// layout.  Key and nonce lengths must already be validated.
func setup(s *state, key []byte, counter uint32, nonce []byte) {
	s[0], s[1], s[2], s[3] = j0, j1, j2, j3
	for i := 0; i < 8; i++ {
		s[4+i] = binary.LittleEndian.Uint32(key[4*i:])
	}
	s[12] = counter
	s[13] = binary.LittleEndian.Uint32(nonce[0:4])
	s[14] = binary.LittleEndian.Uint32(nonce[4:8])
	s[15] = binary.LittleEndian.Uint32(nonce[8:12])
}

// quarterRound mixes the four state words at positions a, b, c, d in
// place.  All additions wrap modulo 2^32.
func (s *state) quarterRound(a, b, c, d int) {
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 16)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 12)
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 8)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 7)
}

// block applies nr rounds to a working copy of s, adds s back into the
// result (the feedforward), and serializes the 16 words little-endian
// into out.  s is not modified.  The column-then-diagonal round order is
// load-bearing; reordering breaks interoperability.
func block(s *state, out *[BlockSize]byte, nr int) {
	if nr <= 0 || nr%2 != 0 {
		panic("chacha20: round count must be positive and even")
	}

	x := *s
	for i := 0; i < nr/2; i++ {
		// Column round.
		x.quarterRound(0, 4, 8, 12)
		x.quarterRound(1, 5, 9, 13)
		x.quarterRound(2, 6, 10, 14)
		x.quarterRound(3, 7, 11, 15)

		// Diagonal round.
		x.quarterRound(0, 5, 10, 15)
		x.quarterRound(1, 6, 11, 12)
		x.quarterRound(2, 7, 8, 13)
		x.quarterRound(3, 4, 9, 14)
	}

	for i := range x {
		x[i] += s[i]
	}
	for i, w := range x {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
}

// blocksFor returns the number of keystream blocks needed to cover n
// bytes.
func blocksFor(n int) uint64 {
	return (uint64(n) + BlockSize - 1) / BlockSize
}

// XORKeyStream XORs src with the ChaCha20 keystream for (key, counter,
// nonce) and writes the result to dst[:len(src)].  The same call performs
// encryption and decryption.  Dst and src must overlap entirely or not at
// all.
//
// The key must be KeySize bytes and the nonce NonceSize bytes.  Dst must
// be at least as long as src.  The counter must not pass 2^32-1 within
// the call; streams longer than 2^32 blocks are a limit of the
// construction.
func XORKeyStream(dst, src, key []byte, counter uint32, nonce []byte) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return ErrInvalidNonceLength
	}
	if len(dst) < len(src) {
		return ErrBufferLengthMismatch
	}
	if uint64(counter)+blocksFor(len(src)) > 1<<32 {
		return ErrCounterOverflow
	}

	var s state
	setup(&s, key, counter, nonce)

	var buf [BlockSize]byte
	for i := 0; i < len(src); i += BlockSize {
		block(&s, &buf, rounds)
		s[12]++

		n := len(src) - i
		if n > BlockSize {
			n = BlockSize
		}
		for j := 0; j < n; j++ {
			dst[i+j] = src[i+j] ^ buf[j]
		}
	}
	return nil
}

// XOR encrypts or decrypts in, returning a newly allocated buffer of the
// same length.  It is XORKeyStream with the output allocated for the
// caller.
func XOR(key []byte, counter uint32, nonce, in []byte) ([]byte, error) {
	out := make([]byte, len(in))
	if err := XORKeyStream(out, in, key, counter, nonce); err != nil {
		return nil, err
	}
	return out, nil
}
