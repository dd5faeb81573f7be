// chachaxor applies a ChaCha20 keystream to standard input and writes the
// result to standard output.  The same invocation encrypts and decrypts.
//
// It provides no authentication and does not manage nonces; a nonce must
// never be reused with the same key for different data.
package main

import (
	"encoding/hex"
	"flag"
	"io"
	"log"
	"os"

	"github.com/RoundPegInASquareHole/qgroundcontrol-secured-mavlink/chacha20"
	"github.com/RoundPegInASquareHole/qgroundcontrol-secured-mavlink/hexdump"
)

var (
	fs          = flag.NewFlagSet("", flag.ExitOnError)
	keyFlag     = fs.String("key", "", "(required) hex-encoded 32-byte key")
	nonceFlag   = fs.String("nonce", "", "(required) hex-encoded 12-byte nonce")
	counterFlag = fs.Uint("counter", 0, "initial block counter")
	workersFlag = fs.Int("workers", 1, "parallel keystream workers")
	dumpFlag    = fs.Bool("dump", false, "hex dump the output to stderr")
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("chachaxor: ")
}

func main() {
	fs.Parse(os.Args[1:])

	key, err := hex.DecodeString(*keyFlag)
	if err != nil || len(key) != chacha20.KeySize {
		log.Fatalf("-key must be %d hex characters", 2*chacha20.KeySize)
	}
	nonce, err := hex.DecodeString(*nonceFlag)
	if err != nil || len(nonce) != chacha20.NonceSize {
		log.Fatalf("-nonce must be %d hex characters", 2*chacha20.NonceSize)
	}
	if *counterFlag > 0xffffffff {
		log.Fatal("-counter must fit in 32 bits")
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	out := make([]byte, len(in))
	err = chacha20.XORKeyStreamParallel(out, in, key, uint32(*counterFlag),
		nonce, *workersFlag)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal(err)
	}
	if *dumpFlag {
		err := hexdump.Fprint(os.Stderr, out, 0, len(out))
		if err != nil {
			log.Fatal(err)
		}
	}
}
