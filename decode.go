package carr

import "errors"

var (
	// ErrInvalidEscape reports an escape sequence the transcoder never emits.
	ErrInvalidEscape = errors.New("invalid escape sequence")
	// ErrUnterminatedLiteral reports a quoted segment with no closing quote.
	ErrUnterminatedLiteral = errors.New("unterminated string literal")
)

// Decode extracts the raw bytes from a character-array definition produced
// by Transcode. Every double-quoted segment in src is unescaped and
// concatenated, matching C adjacent-literal semantics; text outside the
// quotes (declaration, comments, terminator) is ignored.
func Decode(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	inString := false
	escaped := false
	for _, b := range src {
		if !inString {
			if b == '"' {
				inString = true
			}
			continue
		}
		if escaped {
			raw, ok := unescape(b)
			if !ok {
				return nil, ErrInvalidEscape
			}
			out = append(out, raw)
			escaped = false
			continue
		}
		switch b {
		case '\\':
			escaped = true
		case '"':
			inString = false
		case '\n':
			// A literal never spans a physical line.
			return nil, ErrUnterminatedLiteral
		default:
			out = append(out, b)
		}
	}
	if inString || escaped {
		return nil, ErrUnterminatedLiteral
	}
	return out, nil
}
