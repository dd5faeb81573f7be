package chacha20

import "golang.org/x/sync/errgroup"

// XORKeyStreamParallel is XORKeyStream computed by up to workers
// goroutines.  Keystream block i depends only on (key, nonce, counter+i),
// so the input is partitioned into block-aligned spans and each worker
// runs the serial cipher over its span with the counter offset by the
// span's first block index.  Workers write disjoint regions of dst; the
// output is byte-identical to the serial path.
func XORKeyStreamParallel(dst, src, key []byte, counter uint32, nonce []byte, workers int) error {
	if len(key) != KeySize {
		return ErrInvalidKeyLength
	}
	if len(nonce) != NonceSize {
		return ErrInvalidNonceLength
	}
	if len(dst) < len(src) {
		return ErrBufferLengthMismatch
	}
	totalBlocks := blocksFor(len(src))
	if uint64(counter)+totalBlocks > 1<<32 {
		return ErrCounterOverflow
	}

	if workers > int(totalBlocks) {
		workers = int(totalBlocks)
	}
	if workers <= 1 {
		return XORKeyStream(dst, src, key, counter, nonce)
	}

	spanBlocks := (int(totalBlocks) + workers - 1) / workers
	span := spanBlocks * BlockSize

	var g errgroup.Group
	for off := 0; off < len(src); off += span {
		off := off
		end := off + span
		if end > len(src) {
			end = len(src)
		}
		g.Go(func() error {
			c := counter + uint32(off/BlockSize)
			return XORKeyStream(dst[off:end], src[off:end], key, c, nonce)
		})
	}
	return g.Wait()
}
