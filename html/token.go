// Package html is an HTML5 tokenizer that reproduces its input, following the syntax at http://www.w3.org/TR/html5/syntax.html.
// Character references are only recognized when terminated by a semicolon, anything else is kept as literal text.
package html // import "github.com/chasefinch/bind-html/html"

import "strconv"

////////////////////////////////////////////////////////////////

// TokenType determines the type of token, eg. a start tag or a comment.
type TokenType uint32

// TokenType values.
const (
	ErrorToken TokenType = iota // zero value, never emitted
	TextToken
	StartTagToken
	EndTagToken
	CommentToken
	DeclarationToken
	PIToken
	EntityRefToken
	CharRefToken
)

// String returns the string representation of a TokenType.
func (tt TokenType) String() string {
	switch tt {
	case ErrorToken:
		return "Error"
	case TextToken:
		return "Text"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DeclarationToken:
		return "Declaration"
	case PIToken:
		return "PI"
	case EntityRefToken:
		return "EntityRef"
	case CharRefToken:
		return "CharRef"
	}
	return "Invalid(" + strconv.Itoa(int(tt)) + ")"
}

////////////////////////////////////////////////////////////////

// Attr is an attribute of a start tag. Val is nil when the attribute has no value, as in <input checked>.
type Attr struct {
	Key []byte
	Val []byte
}

// Token is a single unit of HTML.
//
// Data holds the tag name for tags, the content for text, comments, declarations and processing instructions,
// the entity name for entity references and the digits (including an x or X prefix) for character references.
// Raw is the exact source span of the unit. The byte slices point into the tokenizer's buffer and are only valid
// for the duration of the handler call.
type Token struct {
	TokenType
	Data        []byte
	Attrs       []Attr
	SelfClosing bool
	Raw         []byte
	Offset      int
}

// String returns a short description of the token, useful for debugging.
func (t Token) String() string {
	return t.TokenType.String() + "('" + string(t.Data) + "')"
}
