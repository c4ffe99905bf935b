package carr

// needsEscape reports whether b must be written as a two-character escape
// sequence inside a C string literal.
func needsEscape(b byte) bool {
	switch b {
	case 0x07, 0x08, 0x1B, 0x0C, '\n', '\r', '\t', 0x0B, '\\', '\'', '"', '?':
		return true
	}
	return false
}

// mnemonic returns the character that follows the backslash when b is
// escaped. Backslash, the quotes and the question mark escape to themselves.
func mnemonic(b byte) byte {
	switch b {
	case 0x07:
		return 'a'
	case 0x08:
		return 'b'
	case 0x1B:
		return 'e'
	case 0x0C:
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	case 0x0B:
		return 'v'
	}
	return b
}

// unescape maps an escape mnemonic back to the raw byte it encodes.
func unescape(c byte) (byte, bool) {
	switch c {
	case 'a':
		return 0x07, true
	case 'b':
		return 0x08, true
	case 'e':
		return 0x1B, true
	case 'f':
		return 0x0C, true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return 0x0B, true
	case '\\', '\'', '"', '?':
		return c, true
	}
	return 0, false
}
