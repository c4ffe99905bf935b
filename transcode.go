package carr

import (
	"fmt"
	"io"
)

const (
	// DefaultLineLength is the output line bound used when none is given.
	DefaultLineLength = 80

	declPrefix = "const char "
	declInfix  = "[] = "

	// prefixOverhead is the declaration length not counting the array name.
	prefixOverhead = len(declPrefix) + len(declInfix)

	// postfixLen is the closing quote and newline appended at each flush.
	postfixLen = 2

	endOfFileComment = "\n// End of file\n"

	defaultSourceName = "-"
	defaultToolName   = "carr"
)

// MinLineLength returns the smallest usable line bound for an array named
// name: the declaration prefix plus room for the opening quote, one escaped
// character, the closing quote and the newline.
func MinLineLength(name string) int {
	return prefixOverhead + len(name) + 5
}

// escState tracks the two-step emission of an escape sequence. A byte that
// needs escaping is held on the input side until both the backslash and the
// mnemonic have been placed, so a sequence never spans two input reads.
type escState uint8

const (
	escIdle      escState = iota
	escBackslash          // backslash not yet emitted
	escMnemonic           // backslash emitted, mnemonic pending
)

// Transcoder converts raw bytes into a C character-array definition. It
// implements io.Writer, io.ByteWriter and io.Closer; Close finishes the
// statement and must be called after the last write. A Transcoder is not
// safe for concurrent use.
type Transcoder struct {
	w          io.Writer
	lineLength int
	bare       bool

	prefix    []byte // declaration text, nil once the first line consumed it
	prefixLen int
	line      []byte // physical line being assembled
	held      []byte // last completed line, withheld until its ending is known
	esc       escState
	lines     int
	closed    bool

	lineArr [96]byte
	heldArr [112]byte
}

// NewTranscoder returns a Transcoder that writes the definition of an array
// named name to w. Unless bare output is selected, the header comment is
// written immediately.
func NewTranscoder(w io.Writer, name string, opts ...Option) (*Transcoder, error) {
	if w == nil {
		return nil, fmt.Errorf("transcode: Writer is nil")
	}
	if name == "" {
		return nil, fmt.Errorf("transcode: array name is empty")
	}
	cfg := config{
		lineLength: DefaultLineLength,
		sourceName: defaultSourceName,
		toolName:   defaultToolName,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	t := &Transcoder{w: w, bare: cfg.bare, lineLength: cfg.lineLength}
	if min := MinLineLength(name); t.lineLength < min {
		t.lineLength = min
	}
	t.prefix = []byte(declPrefix + name + declInfix)
	t.prefixLen = len(t.prefix)
	t.line = t.lineArr[:0]
	if cap(t.line) < t.lineLength+1 {
		t.line = make([]byte, 0, t.lineLength+1)
	}
	t.held = t.heldArr[:0]
	if cap(t.held) < t.lineLength+1+len(endOfFileComment) {
		t.held = make([]byte, 0, t.lineLength+1+len(endOfFileComment))
	}
	if !cfg.bare {
		_, err := fmt.Fprintf(w, "/* This file was created from input file %s by %s */\n\n",
			cfg.sourceName, cfg.toolName)
		if err != nil {
			return nil, fmt.Errorf("transcode: write header: %w", err)
		}
	}
	return t, nil
}

// LineLength returns the effective line bound, after any raise to the
// minimum required by the array name.
func (t *Transcoder) LineLength() int {
	return t.lineLength
}

// LinesWritten returns the number of literal lines flushed so far. The
// header and trailing comments are not counted.
func (t *Transcoder) LinesWritten() int {
	return t.lines
}

// Write transcodes p. The output is identical for any grouping of the same
// bytes into Write calls.
func (t *Transcoder) Write(p []byte) (int, error) {
	if t.closed {
		return 0, fmt.Errorf("transcode: write after Close")
	}
	for i := 0; i < len(p); {
		consumed, err := t.step(p[i])
		if err != nil {
			return i, err
		}
		if consumed {
			i++
		}
	}
	return len(p), nil
}

// WriteByte transcodes a single byte c.
func (t *Transcoder) WriteByte(c byte) error {
	if t.closed {
		return fmt.Errorf("transcode: write after Close")
	}
	for {
		consumed, err := t.step(c)
		if err != nil {
			return err
		}
		if consumed {
			return nil
		}
	}
}

// step advances the line buffer by one output action and reports whether
// the input byte was consumed. Priority order: prefix fill, opening quote,
// pending escape, then the byte itself.
func (t *Transcoder) step(b byte) (bool, error) {
	consumed := false
	forced := false
	switch {
	case len(t.line) < t.prefixLen:
		if t.prefix != nil {
			t.line = append(t.line, t.prefix[len(t.line)])
		} else {
			t.line = append(t.line, ' ')
		}
	case len(t.line) == t.prefixLen:
		t.prefix = nil
		t.line = append(t.line, '"')
	case t.esc == escBackslash:
		t.line = append(t.line, '\\')
		t.esc = escMnemonic
	case t.esc == escMnemonic:
		t.line = append(t.line, mnemonic(b))
		t.esc = escIdle
		consumed = true
	default:
		if needsEscape(b) {
			t.esc = escBackslash
			// Not enough room left for the two-character sequence plus
			// the postfix: finish the line before emitting it.
			if len(t.line) > t.lineLength-postfixLen-2 {
				forced = true
			}
		} else {
			t.line = append(t.line, b)
			consumed = true
		}
	}
	if forced || len(t.line) >= t.lineLength-postfixLen {
		if err := t.flushLine(); err != nil {
			return consumed, err
		}
	}
	return consumed, nil
}

// flushLine completes the current line and holds it back; the previously
// held line, now known not to be the last, is written with the postfix.
func (t *Transcoder) flushLine() error {
	if err := t.emitHeld(false); err != nil {
		return err
	}
	t.held = append(t.held[:0], t.line...)
	t.line = t.line[:0]
	return nil
}

func (t *Transcoder) emitHeld(final bool) error {
	if len(t.held) == 0 {
		return nil
	}
	if final {
		t.held = append(t.held, '"', ';', '\n')
		if !t.bare {
			t.held = append(t.held, endOfFileComment...)
		}
	} else {
		t.held = append(t.held, '"', '\n')
	}
	if _, err := t.w.Write(t.held); err != nil {
		return fmt.Errorf("transcode: write line: %w", err)
	}
	t.lines++
	t.held = t.held[:0]
	return nil
}

// Close flushes any buffered content and terminates the array statement.
// With no input at all it still emits a complete empty-string definition.
func (t *Transcoder) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if len(t.line) == 0 && len(t.held) == 0 && t.lines == 0 {
		t.line = append(t.line, t.prefix...)
		t.line = append(t.line, '"')
		t.prefix = nil
	}
	if len(t.line) > 0 {
		if err := t.flushLine(); err != nil {
			return err
		}
	}
	return t.emitHeld(true)
}

// Request describes one transcoding run.
type Request struct {
	Reader io.Reader
	Writer io.Writer
	// Name is the C identifier the array is declared with.
	Name string
	// LineLength bounds each output line. Zero means DefaultLineLength;
	// values below MinLineLength(Name) are raised to that minimum.
	LineLength int
	// Bare omits the header and trailing comments.
	Bare bool
	// SourceName and ToolName appear in the header comment.
	SourceName string
	ToolName   string
}

// Transcode reads raw bytes from req.Reader and writes the array definition
// to req.Writer. It returns the number of literal lines written.
func Transcode(req Request) (int, error) {
	if req.Reader == nil {
		return 0, fmt.Errorf("transcode: Reader is nil")
	}
	if req.Writer == nil {
		return 0, fmt.Errorf("transcode: Writer is nil")
	}
	opts := []Option{WithBare(req.Bare), WithHeader(req.SourceName, req.ToolName)}
	if req.LineLength != 0 {
		opts = append(opts, WithLineLength(req.LineLength))
	}
	t, err := NewTranscoder(req.Writer, req.Name, opts...)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(t, req.Reader); err != nil {
		return t.lines, fmt.Errorf("transcode: read: %w", err)
	}
	if err := t.Close(); err != nil {
		return t.lines, err
	}
	return t.lines, nil
}
