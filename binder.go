// Package bindhtml reproduces HTML through a streaming tokenizer, either exactly as written or with normalized
// attribute serialization, and lets a binding layer rewrite attributes and text on the way through.
package bindhtml // import "github.com/chasefinch/bind-html"

import (
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/buffer"
	"go.uber.org/zap"

	"github.com/chasefinch/bind-html/html"
)

// Binder tokenizes HTML and emits it again according to its Mode. A Binder can be reused for any number of inputs
// but it is not safe for concurrent use, use one Binder per goroutine instead.
type Binder struct {
	mode  Mode
	trim  bool
	hooks Hooks
	log   *zap.Logger

	src []byte
	w   *buffer.Writer
	z   *html.Tokenizer
}

// New returns a new Binder, by default it reproduces its input verbatim.
func New(opts ...Option) *Binder {
	b := &Binder{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.w = buffer.NewWriter(make([]byte, 0, 4096))
	b.z = html.NewTokenizer(b.handler(b.w, b.unresolved))
	return b
}

// NewDataBinder returns a Binder that reproduces HTML verbatim.
func NewDataBinder(opts ...Option) *Binder {
	return New(opts...)
}

// NewAttributeBinder returns a Binder that normalizes the serialization of attribute values, optionally trimming them.
func NewAttributeBinder(trim bool, opts ...Option) *Binder {
	return New(append([]Option{WithMode(Normalizing), WithTrim(trim)}, opts...)...)
}

// Mode returns the reproduction mode.
func (b *Binder) Mode() Mode {
	return b.mode
}

// Apply tokenizes the HTML as a single final chunk and returns the emitted output.
func (b *Binder) Apply(src string) string {
	b.apply([]byte(src))
	return string(b.w.Bytes())
}

// ApplyBytes is like Apply for byte slices.
func (b *Binder) ApplyBytes(src []byte) []byte {
	b.apply(src)
	return parse.Copy(b.w.Bytes())
}

func (b *Binder) apply(src []byte) {
	b.src = src
	b.w.Reset()
	b.z.Reset()

	// a reset tokenizer is never closed
	_ = b.z.Feed(src)
	_ = b.z.Close()
	b.src = nil
}

// handler returns the chain of hooks and emitter writing to w.
func (b *Binder) handler(w io.Writer, unresolved func(html.Token)) *hookHandler {
	var e html.Handler
	if b.mode == Normalizing {
		e = html.NewNormalizingEmitter(w, b.trim)
	} else {
		e = html.NewVerbatimEmitter(w)
	}
	return &hookHandler{
		Handler:    e,
		hooks:      b.hooks,
		unresolved: unresolved,
	}
}

func (b *Binder) unresolved(t html.Token) {
	b.report(t, b.src, t.Offset, t.Offset)
}

// report logs markup that was degraded to text. Offset i indexes src, offset is its position in the whole input.
func (b *Binder) report(t html.Token, src []byte, i, offset int) {
	if ce := b.log.Check(zap.DebugLevel, "unterminated markup reproduced as text"); ce != nil {
		err := NewError("unterminated "+describe(t.TokenType), src, i)
		ce.Write(
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Stringer("construct", t.TokenType),
			zap.ByteString("text", t.Raw),
		)
	}
}

func describe(tt html.TokenType) string {
	switch tt {
	case html.StartTagToken:
		return "start tag"
	case html.EndTagToken:
		return "end tag"
	case html.CommentToken:
		return "comment"
	case html.DeclarationToken:
		return "declaration"
	case html.PIToken:
		return "processing instruction"
	}
	return "markup"
}
