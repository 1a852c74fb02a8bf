package html // import "github.com/chasefinch/bind-html/html"

import "io"

type emitter struct {
	w   io.Writer
	buf []byte
	err error
}

func (e *emitter) write(b []byte) {
	if e.err == nil {
		_, e.err = e.w.Write(b)
	}
}

func (e *emitter) emit(t Token) {
	if t.Raw != nil {
		e.write(t.Raw)
		return
	}
	e.buf = AppendToken(e.buf[:0], t)
	e.write(e.buf)
}

// Err returns the first error returned by the underlying writer.
func (e *emitter) Err() error {
	return e.err
}

// EndTag implements Handler.
func (e *emitter) EndTag(t Token) { e.emit(t) }

// Text implements Handler.
func (e *emitter) Text(t Token) { e.emit(t) }

// Comment implements Handler.
func (e *emitter) Comment(t Token) { e.emit(t) }

// Declaration implements Handler.
func (e *emitter) Declaration(t Token) { e.emit(t) }

// EntityRef implements Handler.
func (e *emitter) EntityRef(t Token) { e.emit(t) }

// CharRef implements Handler.
func (e *emitter) CharRef(t Token) { e.emit(t) }

////////////////////////////////////////////////////////////////

// VerbatimEmitter writes every token exactly as it appeared in the source. End tags are written from Raw, so
// `</a >` stays as is instead of being rebuilt as `</a>`.
// A start tag whose Raw span was cleared, because its attributes were rewritten, is rebuilt with AppendStartTag.
type VerbatimEmitter struct {
	emitter
}

// NewVerbatimEmitter returns a new VerbatimEmitter writing to w.
func NewVerbatimEmitter(w io.Writer) *VerbatimEmitter {
	return &VerbatimEmitter{emitter{w: w}}
}

// StartTag implements Handler.
func (e *VerbatimEmitter) StartTag(t Token) {
	e.emit(t)
}

////////////////////////////////////////////////////////////////

// NormalizingEmitter writes every token as it appeared in the source, except for start tags which are rebuilt from
// their name and attributes with double-quoted, escaped and optionally trimmed values.
type NormalizingEmitter struct {
	emitter
	trim bool
}

// NewNormalizingEmitter returns a new NormalizingEmitter writing to w. If trim is set, whitespace surrounding
// attribute values is removed.
func NewNormalizingEmitter(w io.Writer, trim bool) *NormalizingEmitter {
	return &NormalizingEmitter{emitter{w: w}, trim}
}

// StartTag implements Handler.
func (e *NormalizingEmitter) StartTag(t Token) {
	e.buf = AppendStartTag(e.buf[:0], t, e.trim)
	e.write(e.buf)
}
