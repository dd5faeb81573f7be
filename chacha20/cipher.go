package chacha20

// Cipher is a stateful keystream instance for a particular key and nonce.
// Successive XORKeyStream calls continue the same keystream, so a stream
// may be processed incrementally with the same result as a single call.
// A Cipher is not safe for concurrent use.
type Cipher struct {
	s state

	// The last n bytes of buf are keystream left over from a previous
	// partial-block XORKeyStream call.
	buf      [BlockSize]byte
	n        int
	overflow bool
}

// NewCipher returns a Cipher for the given KeySize-byte key and
// NonceSize-byte nonce, with the block counter starting at counter.
func NewCipher(key, nonce []byte, counter uint32) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceLength
	}
	c := new(Cipher)
	setup(&c.s, key, counter, nonce)
	return c, nil
}

// Counter returns the current block counter value.  It advances by one
// for each keystream block generated.
func (c *Cipher) Counter() uint32 {
	return c.s[12]
}

// remaining reports how many more keystream blocks the counter can
// produce before exhausting its 32-bit domain.
func (c *Cipher) remaining() uint64 {
	if c.overflow {
		return 0
	}
	return 1<<32 - uint64(c.s[12])
}

// XORKeyStream XORs src with the next len(src) keystream bytes and
// writes the result to dst[:len(src)].  Dst and src must overlap
// entirely or not at all.  The keystream position is checked against the
// counter domain before any output is written.
func (c *Cipher) XORKeyStream(dst, src []byte) error {
	if len(dst) < len(src) {
		return ErrBufferLengthMismatch
	}
	if fresh := len(src) - c.n; fresh > 0 {
		if blocksFor(fresh) > c.remaining() {
			return ErrCounterOverflow
		}
	}

	for len(src) > 0 {
		if c.n == 0 {
			block(&c.s, &c.buf, rounds)
			c.s[12]++
			if c.s[12] == 0 {
				c.overflow = true
			}
			c.n = BlockSize
		}

		ks := c.buf[BlockSize-c.n:]
		n := len(src)
		if n > len(ks) {
			n = len(ks)
		}
		for i := 0; i < n; i++ {
			dst[i] = src[i] ^ ks[i]
		}
		c.n -= n
		dst = dst[n:]
		src = src[n:]
	}
	return nil
}
