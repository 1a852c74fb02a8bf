// +build gofuzz

package fuzz

import (
	"fmt"

	"golang.org/x/text/transform"

	bindhtml "github.com/chasefinch/bind-html"
)

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	b := bindhtml.NewAttributeBinder(true)
	src := string(data)
	out, _, err := transform.String(b.Transformer(), src)
	if err != nil {
		return 0
	}
	if applied := b.Apply(src); out != applied {
		fmt.Println("APPLY:", applied)
		fmt.Println("TRANSFORM:", out)
		panic("transformer output differs from Apply")
	}
	return 1
}
