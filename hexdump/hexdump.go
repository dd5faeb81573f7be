// Package hexdump formats byte ranges as hexadecimal text for debugging.
// Formatting is a pure function; writing the result to a sink is left to
// the caller.  The output has no effect on, and carries no guarantees
// about, the data being inspected.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

// String renders buf[start:end] as space-separated lowercase hex pairs,
// e.g. "de ad be ef".  A nil buffer renders as "NULL".  The range is
// clamped to the buffer bounds, so out-of-range indexes cannot cause a
// panic; an empty range renders as "".
func String(buf []byte, start, end int) string {
	if buf == nil {
		return "NULL"
	}
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return ""
	}

	b := new(strings.Builder)
	b.Grow(3*(end-start) - 1)
	for i := start; i < end; i++ {
		if i != start {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%02x", buf[i])
	}
	return b.String()
}

// Fprint writes the rendering of buf[start:end] to w, followed by a
// newline.
func Fprint(w io.Writer, buf []byte, start, end int) error {
	_, err := fmt.Fprintln(w, String(buf, start, end))
	return err
}
