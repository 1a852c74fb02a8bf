package html // import "github.com/chasefinch/bind-html/html"

import (
	"bytes"

	"github.com/tdewolff/parse/v2"
)

/*
The scan functions look at the construct starting at b[i] and return the index just past its end, or -1 when the
construct is not terminated within b. They never look beyond the terminator, so a construct is classified the same
no matter how much input follows it.
*/

var (
	commentStart = []byte("<!--")
	commentEnd   = []byte("-->")
)

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isRefNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '.'
}

// findInteresting returns the index of the next '<' or '&' at or after i, or len(b).
func findInteresting(b []byte, i int) int {
	if j := bytes.IndexAny(b[i:], "<&"); j >= 0 {
		return i + j
	}
	return len(b)
}

// scanStartTag scans '<' followed by a letter. The tag name, attributes and self-closing flag are stored in t.
func scanStartTag(b []byte, i int, t *Token) int {
	j := i + 1
	for j < len(b) {
		if c := b[j]; parse.IsWhitespace(c) || c == '/' || c == '>' {
			break
		}
		j++
	}
	t.Data = b[i+1 : j]
	t.Attrs = t.Attrs[:0]
	for {
		t.SelfClosing = false
		for j < len(b) && (parse.IsWhitespace(b[j]) || b[j] == '/') { // before attribute name state
			t.SelfClosing = b[j] == '/'
			j++
		}
		if j == len(b) {
			return -1
		} else if b[j] == '>' {
			return j + 1
		}

		// attribute name state, the first character may be '='
		k := j
		j++
		for j < len(b) {
			if c := b[j]; parse.IsWhitespace(c) || c == '/' || c == '>' || c == '=' {
				break
			}
			j++
		}
		key := b[k:j]

		m := j
		for m < len(b) && parse.IsWhitespace(b[m]) { // after attribute name state
			m++
		}
		if m == len(b) {
			return -1
		} else if b[m] != '=' {
			t.Attrs = append(t.Attrs, Attr{Key: key})
			j = m
			continue
		}
		m++
		for m < len(b) && parse.IsWhitespace(b[m]) { // before attribute value state
			m++
		}
		if m == len(b) {
			return -1
		}

		var val []byte
		if quote := b[m]; quote == '"' || quote == '\'' {
			n := closingQuote(b, m+1, quote)
			if n < 0 {
				return -1
			}
			val = b[m+1 : n]
			j = n + 1
		} else {
			j = m
			for j < len(b) && !parse.IsWhitespace(b[j]) && b[j] != '>' {
				j++
			}
			val = b[m:j]
		}
		t.Attrs = append(t.Attrs, Attr{Key: key, Val: val})
	}
}

// closingQuote returns the index of the quote that ends the attribute value starting at b[i]. A quote ends the value
// when followed by whitespace, '/', '>' or the next attribute's name and '=', otherwise it is part of the value as in
// title="say "hi"".
func closingQuote(b []byte, i int, quote byte) int {
	for {
		n := bytes.IndexByte(b[i:], quote)
		if n < 0 {
			return -1
		}
		i += n
		if i+1 == len(b) {
			return -1
		} else if c := b[i+1]; parse.IsWhitespace(c) || c == '/' || c == '>' {
			return i
		}

		// title="a"class="b"
		k := i + 1
		for k < len(b) {
			if c := b[k]; parse.IsWhitespace(c) || c == '/' || c == '>' || c == '=' {
				break
			}
			k++
		}
		if k == len(b) {
			return -1
		} else if b[k] == '=' && i+1 < k {
			return i
		}
		i++
	}
}

// scanEndTag scans "</" followed by a letter up to the next '>'.
func scanEndTag(b []byte, i int, t *Token) int {
	n := bytes.IndexByte(b[i+2:], '>')
	if n < 0 {
		return -1
	}
	end := i + 2 + n
	j := i + 2
	for j < end {
		if c := b[j]; parse.IsWhitespace(c) || c == '/' {
			break
		}
		j++
	}
	t.Data = b[i+2 : j]
	return end + 1
}

// scanComment scans "<!--" up to the first "-->".
func scanComment(b []byte, i int, t *Token) int {
	n := bytes.Index(b[i+4:], commentEnd)
	if n < 0 {
		return -1
	}
	t.Data = b[i+4 : i+4+n]
	return i + 4 + n + 3
}

// scanMarkup scans "<!" or "<?" up to the next '>'.
func scanMarkup(b []byte, i int, t *Token) int {
	n := bytes.IndexByte(b[i+2:], '>')
	if n < 0 {
		return -1
	}
	t.Data = b[i+2 : i+2+n]
	return i + 2 + n + 1
}

// scanCharRef scans "&#" followed by decimal digits, or by x or X and hexadecimal digits, and a mandatory ';'.
func scanCharRef(b []byte, i int) int {
	j := i + 2
	digit := isDigit
	if j < len(b) && (b[j] == 'x' || b[j] == 'X') {
		digit = isHexDigit
		j++
	}
	k := j
	for j < len(b) && digit(b[j]) {
		j++
	}
	if j == k || j == len(b) || b[j] != ';' {
		return -1
	}
	return j + 1
}

// scanEntityRef scans '&' followed by a letter, any run of letters, digits, '-' and '.', and a mandatory ';'.
func scanEntityRef(b []byte, i int) int {
	j := i + 1
	if j == len(b) || !isLetter(b[j]) {
		return -1
	}
	j++
	for j < len(b) && isRefNameChar(b[j]) {
		j++
	}
	if j == len(b) || b[j] != ';' {
		return -1
	}
	return j + 1
}

// incompleteRef returns true if the '&' at b[i] is followed by a letter or '#' and no ';' follows anywhere in b, so
// that only more input can turn it into a reference.
func incompleteRef(b []byte, i int) bool {
	if i+1 == len(b) || !isLetter(b[i+1]) && b[i+1] != '#' {
		return false
	}
	return bytes.IndexByte(b[i+1:], ';') < 0
}
