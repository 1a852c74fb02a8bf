// +build gofuzz

package fuzz

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/parse/v2"

	"github.com/chasefinch/bind-html/html"
)

func normalize(chunks ...[]byte) []byte {
	var buf bytes.Buffer
	z := html.NewTokenizer(html.NewNormalizingEmitter(&buf, true))
	for _, chunk := range chunks {
		_ = z.Feed(chunk)
	}
	_ = z.Close()
	return buf.Bytes()
}

// Fuzz is a fuzz test.
func Fuzz(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	data = parse.Copy(data)

	// the first byte picks the split point
	src := data[1:]
	k := 0
	if 0 < len(src) {
		k = int(data[0]) % (len(src) + 1)
	}
	whole := normalize(src)
	if split := normalize(src[:k], src[k:]); !bytes.Equal(whole, split) {
		fmt.Println("WHOLE:", string(whole))
		fmt.Println("SPLIT:", string(split))
		panic(fmt.Sprint("output differs when split at ", k))
	}
	return 1
}
