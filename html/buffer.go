package html // import "github.com/chasefinch/bind-html/html"

import "github.com/tdewolff/parse/v2"

var errorToken = Token{}

// TokenBuffer is a Handler that buffers the tokens it receives and allows for look-ahead.
// If Copy is set, the token data is copied so that it stays valid after the handler call returns.
type TokenBuffer struct {
	Copy bool

	buf        []Token
	pos        int
	unresolved []Token
}

// NewTokenBuffer returns a new TokenBuffer.
func NewTokenBuffer() *TokenBuffer {
	return &TokenBuffer{
		buf: make([]Token, 0, 8),
	}
}

func (z *TokenBuffer) add(t Token) {
	if z.Copy {
		t = copyToken(t)
	}
	z.buf = append(z.buf, t)
}

// StartTag implements Handler.
func (z *TokenBuffer) StartTag(t Token) { z.add(t) }

// EndTag implements Handler.
func (z *TokenBuffer) EndTag(t Token) { z.add(t) }

// Text implements Handler.
func (z *TokenBuffer) Text(t Token) { z.add(t) }

// Comment implements Handler.
func (z *TokenBuffer) Comment(t Token) { z.add(t) }

// Declaration implements Handler.
func (z *TokenBuffer) Declaration(t Token) { z.add(t) }

// EntityRef implements Handler.
func (z *TokenBuffer) EntityRef(t Token) { z.add(t) }

// CharRef implements Handler.
func (z *TokenBuffer) CharRef(t Token) { z.add(t) }

// Unresolved implements UnresolvedHandler.
func (z *TokenBuffer) Unresolved(t Token) {
	if z.Copy {
		t = copyToken(t)
	}
	z.unresolved = append(z.unresolved, t)
}

// Peek returns the ith token after the current position, or an ErrorToken if there is none.
func (z *TokenBuffer) Peek(i int) *Token {
	if i += z.pos; i < len(z.buf) {
		return &z.buf[i]
	}
	return &errorToken
}

// Shift returns the token at the current position and advances the position.
func (z *TokenBuffer) Shift() *Token {
	t := z.Peek(0)
	if z.pos < len(z.buf) {
		z.pos++
	}
	return t
}

// Len returns the number of tokens after the current position.
func (z *TokenBuffer) Len() int {
	return len(z.buf) - z.pos
}

// Tokens returns the tokens after the current position.
func (z *TokenBuffer) Tokens() []Token {
	return z.buf[z.pos:]
}

// UnresolvedTokens returns the markup that was degraded to text, see UnresolvedHandler.
func (z *TokenBuffer) UnresolvedTokens() []Token {
	return z.unresolved
}

// Reset empties the buffer.
func (z *TokenBuffer) Reset() {
	z.buf = z.buf[:0]
	z.pos = 0
	z.unresolved = z.unresolved[:0]
}

// copyBytes keeps nil slices nil, a nil Val or Raw carries meaning.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return parse.Copy(b)
}

func copyToken(t Token) Token {
	t.Data = copyBytes(t.Data)
	t.Raw = copyBytes(t.Raw)
	if t.Attrs != nil {
		attrs := make([]Attr, len(t.Attrs))
		for i, attr := range t.Attrs {
			attrs[i] = Attr{Key: copyBytes(attr.Key), Val: copyBytes(attr.Val)}
		}
		t.Attrs = attrs
	}
	return t
}
