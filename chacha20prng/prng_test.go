package chacha20prng

import (
	"bytes"
	"io"
	"testing"

	"github.com/RoundPegInASquareHole/qgroundcontrol-secured-mavlink/chacha20"
)

func testSeed() []byte {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestDeterministic(t *testing.T) {
	a := New(testSeed(), 1).Next(128)
	b := New(testSeed(), 1).Next(128)
	if !bytes.Equal(a, b) {
		t.Error("same seed and run produced different streams")
	}

	c := New(testSeed(), 2).Next(128)
	if bytes.Equal(a, c) {
		t.Error("different runs produced identical streams")
	}
}

// TestKeystream checks that the PRNG output is the raw ChaCha20 keystream
// for the seed, with the run number in the first nonce word.
func TestKeystream(t *testing.T) {
	const run = 7
	got := New(testSeed(), run).Next(chacha20.BlockSize)

	nonce := make([]byte, chacha20.NonceSize)
	nonce[0] = run
	want, err := chacha20.XOR(testSeed(), 0, nonce, make([]byte, chacha20.BlockSize))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("prng output is not the seed's keystream\ngot  %x\nwant %x", got, want)
	}
}

func TestReadMatchesNext(t *testing.T) {
	want := New(testSeed(), 0).Next(200)

	r := New(testSeed(), 0)
	got := make([]byte, 200)
	if _, err := io.ReadFull(r, got); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("Read and Next disagree")
	}
}

func TestReadContinues(t *testing.T) {
	want := New(testSeed(), 0).Next(100)

	r := New(testSeed(), 0)
	got := append(r.Next(33), r.Next(67)...)
	if !bytes.Equal(got, want) {
		t.Error("successive Next calls do not continue the stream")
	}
}

func TestSeed(t *testing.T) {
	sid := []byte("session")
	shared := []byte("shared key material of any length")

	seed := Seed(sid, shared)
	if len(seed) != SeedSize {
		t.Fatalf("seed length %d, want %d", len(seed), SeedSize)
	}
	if !bytes.Equal(seed, Seed(sid, shared)) {
		t.Error("seed derivation is not deterministic")
	}
	if bytes.Equal(seed, Seed(sid, []byte("other material"))) {
		t.Error("distinct material produced identical seeds")
	}

	// Derived seeds are valid New inputs.
	New(seed, 0).Next(16)
}

func TestBadSeedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for bad seed length")
		}
	}()
	New(make([]byte, SeedSize-1), 0)
}
