package hexdump

import (
	"bytes"
	"testing"
)

func TestString(t *testing.T) {
	buf := []byte{0xde, 0xad, 0xbe, 0xef, 0x00}

	tests := []struct {
		name       string
		buf        []byte
		start, end int
		want       string
	}{
		{"full", buf, 0, 5, "de ad be ef 00"},
		{"middle", buf, 1, 3, "ad be"},
		{"single", buf, 3, 4, "ef"},
		{"empty range", buf, 2, 2, ""},
		{"inverted range", buf, 4, 1, ""},
		{"clamped start", buf, -2, 2, "de ad"},
		{"clamped end", buf, 3, 100, "ef 00"},
		{"nil buffer", nil, 0, 4, "NULL"},
		{"empty buffer", []byte{}, 0, 0, ""},
	}
	for _, tc := range tests {
		if got := String(tc.buf, tc.start, tc.end); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFprint(t *testing.T) {
	var b bytes.Buffer
	if err := Fprint(&b, []byte{0x01, 0x02}, 0, 2); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "01 02\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
