package carr

import "testing"

var escapeTable = map[byte]byte{
	0x07: 'a',
	0x08: 'b',
	0x1B: 'e',
	0x0C: 'f',
	0x0A: 'n',
	0x0D: 'r',
	0x09: 't',
	0x0B: 'v',
	0x5C: '\\',
	0x27: '\'',
	0x22: '"',
	0x3F: '?',
}

func TestEscapeTable(t *testing.T) {
	for b, want := range escapeTable {
		if !needsEscape(b) {
			t.Errorf("needsEscape(%#02x) = false, want true", b)
		}
		if got := mnemonic(b); got != want {
			t.Errorf("mnemonic(%#02x) = %q, want %q", b, got, want)
		}
	}
}

func TestNonEscapedBytesPassThrough(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if _, escaped := escapeTable[b]; escaped {
			continue
		}
		if needsEscape(b) {
			t.Errorf("needsEscape(%#02x) = true, want false", b)
		}
		if got := mnemonic(b); got != b {
			t.Errorf("mnemonic(%#02x) = %#02x, want identity", b, got)
		}
	}
}

func TestUnescapeReversesMnemonic(t *testing.T) {
	for b := range escapeTable {
		raw, ok := unescape(mnemonic(b))
		if !ok {
			t.Fatalf("unescape(mnemonic(%#02x)) not recognized", b)
		}
		if raw != b {
			t.Fatalf("unescape(mnemonic(%#02x)) = %#02x", b, raw)
		}
	}
	if _, ok := unescape('q'); ok {
		t.Fatal("unescape('q') recognized, want rejection")
	}
}
