// +build gofuzz

package fuzz

import (
	"bytes"

	"github.com/tdewolff/parse/v2"

	"github.com/chasefinch/bind-html/html"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	data = parse.Copy(data)
	var buf bytes.Buffer
	z := html.NewTokenizer(html.NewVerbatimEmitter(&buf))
	_ = z.Feed(data)
	_ = z.Close()
	if !bytes.Equal(buf.Bytes(), data) {
		panic("verbatim output differs from input")
	}
	return 1
}
