package html // import "github.com/chasefinch/bind-html/html"

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
)

var quoteEntityBytes = []byte("&quot;")

// EscapeAttrVal returns the attribute value with every double quote replaced by &quot;, so that it can be wrapped
// in double quotes. If nothing needs escaping b is returned as is, otherwise buf is used as scratch space.
func EscapeAttrVal(buf *[]byte, b []byte) []byte {
	quotes := bytes.Count(b, []byte{'"'})
	if quotes == 0 {
		return b
	}

	n := len(b) + quotes*(len(quoteEntityBytes)-1)
	if n > cap(*buf) {
		*buf = make([]byte, 0, n)
	}
	t := (*buf)[:n]
	j := 0
	start := 0
	for i, c := range b {
		if c == '"' {
			j += copy(t[j:], b[start:i])
			j += copy(t[j:], quoteEntityBytes)
			start = i + 1
		}
	}
	j += copy(t[j:], b[start:])
	return t[:j]
}

// AppendStartTag appends the start tag rebuilt from its name and attributes. Attribute values are optionally trimmed
// of surrounding whitespace, escaped with EscapeAttrVal and wrapped in double quotes. Attributes without a value are
// written as their bare name.
func AppendStartTag(dst []byte, t Token, trim bool) []byte {
	var buf []byte
	dst = append(dst, '<')
	dst = append(dst, t.Data...)
	for _, attr := range t.Attrs {
		dst = append(dst, ' ')
		dst = append(dst, attr.Key...)
		if attr.Val == nil {
			continue
		}
		val := attr.Val
		if trim {
			val = parse.TrimWhitespace(val)
		}
		dst = append(dst, '=', '"')
		dst = append(dst, EscapeAttrVal(&buf, val)...)
		dst = append(dst, '"')
	}
	if t.SelfClosing {
		dst = append(dst, '/')
	}
	return append(dst, '>')
}

// AppendToken appends the token in the form it was matched. Start tags without a raw source span are rebuilt with
// AppendStartTag without trimming.
func AppendToken(dst []byte, t Token) []byte {
	if t.Raw != nil {
		return append(dst, t.Raw...)
	}
	switch t.TokenType {
	case StartTagToken:
		return AppendStartTag(dst, t, false)
	case EndTagToken:
		dst = append(dst, '<', '/')
		dst = append(dst, t.Data...)
		return append(dst, '>')
	case CommentToken:
		dst = append(dst, commentStart...)
		dst = append(dst, t.Data...)
		return append(dst, commentEnd...)
	case DeclarationToken, PIToken:
		if t.TokenType == PIToken {
			dst = append(dst, '<', '?')
		} else {
			dst = append(dst, '<', '!')
		}
		dst = append(dst, t.Data...)
		return append(dst, '>')
	case EntityRefToken:
		dst = append(dst, '&')
		dst = append(dst, t.Data...)
		return append(dst, ';')
	case CharRefToken:
		dst = append(dst, '&', '#')
		dst = append(dst, t.Data...)
		return append(dst, ';')
	}
	return append(dst, t.Data...)
}
