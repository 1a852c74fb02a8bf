package html // import "github.com/chasefinch/bind-html/html"

import (
	"bytes"
	"errors"
)

// ErrClosed is returned when feeding a Tokenizer that has already been closed.
var ErrClosed = errors.New("tokenizer closed")

// Handler receives the tokens in the order they appear in the input.
// Processing instructions (PIToken) are passed to Declaration.
type Handler interface {
	StartTag(Token)
	EndTag(Token)
	Text(Token)
	Comment(Token)
	Declaration(Token)
	EntityRef(Token)
	CharRef(Token)
}

// UnresolvedHandler is implemented by handlers that want to know when unterminated markup at the end of the input
// is degraded to text. The token has the type of the construct that was attempted and Raw holds the span that is
// subsequently passed to Text.
type UnresolvedHandler interface {
	Unresolved(Token)
}

// Dispatch passes t to the method of h for its type.
func Dispatch(h Handler, t Token) {
	switch t.TokenType {
	case StartTagToken:
		h.StartTag(t)
	case EndTagToken:
		h.EndTag(t)
	case CommentToken:
		h.Comment(t)
	case DeclarationToken, PIToken:
		h.Declaration(t)
	case EntityRefToken:
		h.EntityRef(t)
	case CharRefToken:
		h.CharRef(t)
	default:
		h.Text(t)
	}
}

////////////////////////////////////////////////////////////////

// Tokenizer is the state for the tokenizer. Input is fed in chunks, data that cannot be resolved yet is kept as a
// pending tail until more input arrives or the tokenizer is closed.
type Tokenizer struct {
	h Handler

	buf    []byte
	offset int // offset of buf[0] in the input
	closed bool
}

// NewTokenizer returns a new Tokenizer that passes tokens to h.
func NewTokenizer(h Handler) *Tokenizer {
	return &Tokenizer{
		h: h,
	}
}

// Feed tokenizes as much of the input as possible, more chunks may follow.
func (z *Tokenizer) Feed(b []byte) error {
	if z.closed {
		return ErrClosed
	}
	z.buf = append(z.buf, b...)
	z.goahead(false)
	return nil
}

// Close tokenizes the pending tail as the final chunk of input.
func (z *Tokenizer) Close() error {
	if z.closed {
		return ErrClosed
	}
	z.closed = true
	z.goahead(true)
	return nil
}

// Reset discards all state so that the tokenizer can be fed a new input.
func (z *Tokenizer) Reset() {
	z.buf = z.buf[:0]
	z.offset = 0
	z.closed = false
}

// Pending returns the tail of the input that has not been tokenized yet.
func (z *Tokenizer) Pending() []byte {
	return z.buf
}

// Offset returns the number of bytes tokenized so far.
func (z *Tokenizer) Offset() int {
	return z.offset
}

func (z *Tokenizer) goahead(final bool) {
	n := tokenize(z.buf, z.offset, final, z.h)
	z.offset += n
	z.buf = z.buf[n:]
}

////////////////////////////////////////////////////////////////

// Tokenize passes the tokens of b to h and returns the number of bytes consumed. Unless final is set, it stops at
// the first construct that may be completed by more input. Token offsets are relative to b.
func Tokenize(b []byte, final bool, h Handler) int {
	return tokenize(b, 0, final, h)
}

// Scan returns the tokens of b, the number of bytes consumed and whether it paused before the end of b.
// The tokens point into b.
func Scan(b []byte, final bool) ([]Token, int, bool) {
	tb := NewTokenBuffer()
	n := tokenize(b, 0, final, tb)
	return tb.buf, n, n < len(b)
}

func tokenize(b []byte, base int, final bool, h Handler) int {
	i := 0
	for i < len(b) {
		j := findInteresting(b, i)
		if i < j {
			h.Text(Token{TokenType: TextToken, Data: b[i:j], Raw: b[i:j], Offset: base + i})
			i = j
		}
		if i == len(b) {
			break
		}

		t := Token{Offset: base + i}
		if b[i] == '<' {
			if i+1 == len(b) {
				break
			}
			c := b[i+1]
			if isLetter(c) {
				t.TokenType = StartTagToken
				j = scanStartTag(b, i, &t)
			} else if c == '/' {
				t.TokenType = EndTagToken
				if i+2 == len(b) {
					j = -1
				} else if isLetter(b[i+2]) {
					j = scanEndTag(b, i, &t)
				} else {
					j = 0
				}
			} else if bytes.HasPrefix(b[i:], commentStart) {
				t.TokenType = CommentToken
				j = scanComment(b, i, &t)
			} else if c == '?' {
				t.TokenType = PIToken
				j = scanMarkup(b, i, &t)
			} else if c == '!' {
				t.TokenType = DeclarationToken
				j = scanMarkup(b, i, &t)
			} else {
				j = 0
			}

			if j == 0 {
				// not markup, '<' is literal text
				h.Text(Token{TokenType: TextToken, Data: b[i : i+1], Raw: b[i : i+1], Offset: base + i})
				i++
				continue
			} else if j < 0 {
				if !final {
					break
				}
				j = forceResolve(b, i)
				t.Raw = b[i:j]
				if uh, ok := h.(UnresolvedHandler); ok {
					uh.Unresolved(t)
				}
				h.Text(Token{TokenType: TextToken, Data: b[i:j], Raw: b[i:j], Offset: base + i})
				i = j
				continue
			}

			t.Raw = b[i:j]
			Dispatch(h, t)
			i = j
		} else if i+1 < len(b) && b[i+1] == '#' {
			if j = scanCharRef(b, i); j > 0 {
				t.TokenType = CharRefToken
				t.Data = b[i+2 : j-1]
				t.Raw = b[i:j]
				h.CharRef(t)
				i = j
				continue
			} else if incompleteRef(b, i) {
				break
			}
			// a semicolon follows somewhere, only "&#" is consumed as text
			h.Text(Token{TokenType: TextToken, Data: b[i : i+2], Raw: b[i : i+2], Offset: base + i})
			i += 2
		} else {
			if j = scanEntityRef(b, i); j > 0 {
				t.TokenType = EntityRefToken
				t.Data = b[i+1 : j-1]
				t.Raw = b[i:j]
				h.EntityRef(t)
				i = j
				continue
			} else if incompleteRef(b, i) || i+1 == len(b) {
				break
			}
			h.Text(Token{TokenType: TextToken, Data: b[i : i+1], Raw: b[i : i+1], Offset: base + i})
			i++
		}
	}
	if final && i < len(b) {
		h.Text(Token{TokenType: TextToken, Data: b[i:], Raw: b[i:], Offset: base + i})
		i = len(b)
	}
	return i
}

// forceResolve returns the end of the unterminated markup at b[i]: just past the next '>', else at the next '<',
// else just past the '<' itself.
func forceResolve(b []byte, i int) int {
	if n := bytes.IndexByte(b[i+1:], '>'); n >= 0 {
		return i + 1 + n + 1
	} else if n := bytes.IndexByte(b[i+1:], '<'); n >= 0 {
		return i + 1 + n
	}
	return i + 1
}
