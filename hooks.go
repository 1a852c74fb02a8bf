package bindhtml

import "github.com/chasefinch/bind-html/html"

// Hooks let a binding layer rewrite units before they are emitted. A nil function, or a nil return value, leaves the
// unit unchanged.
//
// Rewritten attributes are always serialized with double-quoted and escaped values, even in Verbatim mode. They are
// trimmed only in Normalizing mode with WithTrim. Rewritten text is emitted as returned. The arguments are only
// valid during the call.
type Hooks struct {
	StartTag func(name []byte, attrs []html.Attr) []html.Attr
	Text     func(text []byte) []byte
}

// hookHandler sits between the tokenizer and an emitter.
type hookHandler struct {
	html.Handler
	hooks      Hooks
	unresolved func(html.Token)
}

func (h *hookHandler) StartTag(t html.Token) {
	if h.hooks.StartTag != nil {
		if attrs := h.hooks.StartTag(t.Data, t.Attrs); attrs != nil {
			t.Attrs = attrs
			t.Raw = nil
		}
	}
	h.Handler.StartTag(t)
}

func (h *hookHandler) Text(t html.Token) {
	if h.hooks.Text != nil {
		if text := h.hooks.Text(t.Data); text != nil {
			t.Data = text
			t.Raw = nil
		}
	}
	h.Handler.Text(t)
}

func (h *hookHandler) Unresolved(t html.Token) {
	if h.unresolved != nil {
		h.unresolved(t)
	}
}
