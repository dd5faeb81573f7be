// Package chacha20prng provides a deterministic pseudorandom byte stream
// read from a ChaCha20 keystream.
package chacha20prng

import (
	"encoding/binary"
	"strconv"

	"github.com/decred/dcrd/crypto/blake256"

	"github.com/RoundPegInASquareHole/qgroundcontrol-secured-mavlink/chacha20"
)

// SeedSize is the required length of seeds for New.
const SeedSize = 32

// Reader is a ChaCha20 PRNG.  It implements io.Reader.  The returned
// bytes are the raw keystream for the seed; the same seed and run always
// produce the same stream.  A Reader is not safe for concurrent access.
type Reader struct {
	cipher *chacha20.Cipher
}

// New creates a ChaCha20 PRNG seeded by a 32-byte seed and a run
// iteration.  The run number occupies the first nonce word, so distinct
// runs of the same seed yield independent streams.  This will panic if
// the length of seed is not SeedSize bytes.
func New(seed []byte, run uint32) *Reader {
	if l := len(seed); l != SeedSize {
		panic("chacha20prng: bad seed length " + strconv.Itoa(l))
	}

	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint32(nonce, run)
	cipher, err := chacha20.NewCipher(seed, nonce, 0)
	if err != nil {
		panic("chacha20prng: " + err.Error())
	}
	return &Reader{cipher: cipher}
}

// Seed derives a SeedSize-byte seed for New by hashing the material
// through BLAKE-256.  It allows seeding from key material that is not
// itself uniform or correctly sized, such as a shared secret plus a
// session identifier.
func Seed(material ...[]byte) []byte {
	h := blake256.New()
	for _, m := range material {
		h.Write(m)
	}
	return h.Sum(nil)
}

// Read implements io.Reader.
func (r *Reader) Read(b []byte) (int, error) {
	// Zero the destination so it is written with just the keystream.
	for i := range b {
		b[i] = 0
	}
	if err := r.cipher.XORKeyStream(b, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

// Next returns the next n bytes from the reader.
func (r *Reader) Next(n int) []byte {
	b := make([]byte, n)
	if err := r.cipher.XORKeyStream(b, b); err != nil {
		panic("chacha20prng: " + err.Error())
	}
	return b
}
