package bindhtml

import (
	"github.com/tdewolff/parse/v2/buffer"
	"golang.org/x/text/transform"

	"github.com/chasefinch/bind-html/html"
)

// Transformer returns a transform.Transformer that emits the same output as Apply, for use with transform.NewReader,
// transform.NewWriter or transform.String. All source bytes are consumed on every call, input that cannot be resolved
// yet is kept by the transformer, as is output that does not fit in dst.
// The transformer shares the Binder's configuration, but not its state.
func (b *Binder) Transformer() transform.Transformer {
	t := &transformer{
		b: b,
		w: buffer.NewWriter(make([]byte, 0, 1024)),
	}
	t.z = html.NewTokenizer(b.handler(t.w, t.unresolved))
	return t
}

type transformer struct {
	b *Binder
	w *buffer.Writer
	z *html.Tokenizer

	pos int // start of the output in w that is not yet written to dst
}

// Reset implements transform.Transformer.
func (t *transformer) Reset() {
	t.z.Reset()
	t.w.Reset()
	t.pos = 0
}

// Transform implements transform.Transformer.
func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if 0 < t.pos {
		rest := t.w.Bytes()[t.pos:]
		t.w.Reset()
		_, _ = t.w.Write(rest)
		t.pos = 0
	}

	if err = t.z.Feed(src); err == html.ErrClosed && len(src) == 0 {
		err = nil // only output of an earlier call is left
	} else if err != nil {
		return 0, 0, err
	} else if atEOF {
		_ = t.z.Close()
	}

	nDst = copy(dst, t.w.Bytes())
	t.pos = nDst
	if t.pos < t.w.Len() {
		return nDst, len(src), transform.ErrShortDst
	}
	t.w.Reset()
	t.pos = 0
	return nDst, len(src), nil
}

// unresolved reports unterminated markup, the line and column are relative to the input held by the tokenizer.
func (t *transformer) unresolved(tok html.Token) {
	pending := t.z.Pending()
	t.b.report(tok, pending, tok.Offset-t.z.Offset(), tok.Offset)
}
