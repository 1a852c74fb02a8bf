package bindhtml

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/transform"
)

var transformTests = []string{
	"",
	"<p class=\"intro\">Hello <b>world</b>!</p>",
	"<a href='x' title=' He said \"hi\" ' checked>link</a >",
	"a &amp; b &amp c &#65; &#x41; &#65 x; &#65 <b>",
	"<!-- unterminated <b>bold</b>",
	"<a href=\"x",
	"text &",
	strings.Repeat("<li data-i=' 1 '>item &amp; more</li>\n", 200),
	"<p>&#1 " + strings.Repeat("x", 5000) + "</p>",
}

func TestTransformerString(t *testing.T) {
	binders := []*Binder{NewDataBinder(), NewAttributeBinder(false), NewAttributeBinder(true)}
	for _, b := range binders {
		for _, input := range transformTests {
			t.Run(b.Mode().String(), func(t *testing.T) {
				out, n, err := transform.String(b.Transformer(), input)
				require.NoError(t, err)
				assert.Equal(t, len(input), n)
				assert.Equal(t, b.Apply(input), out)
			})
		}
	}
}

func TestTransformerReader(t *testing.T) {
	binders := []*Binder{NewDataBinder(), NewAttributeBinder(true)}
	for _, b := range binders {
		for _, input := range transformTests {
			t.Run(b.Mode().String(), func(t *testing.T) {
				r := transform.NewReader(iotest.OneByteReader(strings.NewReader(input)), b.Transformer())
				out, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, b.Apply(input), string(out))
			})
		}
	}
}

func TestTransformerWriter(t *testing.T) {
	b := NewAttributeBinder(true)
	input := transformTests[2]

	var buf bytes.Buffer
	w := transform.NewWriter(&buf, b.Transformer())
	for i := 0; i < len(input); i += 7 {
		end := i + 7
		if len(input) < end {
			end = len(input)
		}
		_, err := w.Write([]byte(input[i:end]))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	assert.Equal(t, b.Apply(input), buf.String())
}

func TestTransformerShortDst(t *testing.T) {
	tr := NewDataBinder().Transformer()
	dst := make([]byte, 4)
	nDst, nSrc, err := tr.Transform(dst, []byte("<a>hello</a>"), true)
	assert.Equal(t, transform.ErrShortDst, err)
	assert.Equal(t, 4, nDst)
	assert.Equal(t, 12, nSrc)
	assert.Equal(t, "<a>h", string(dst[:nDst]))

	dst = make([]byte, 64)
	nDst, nSrc, err = tr.Transform(dst, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 0, nSrc)
	assert.Equal(t, "ello</a>", string(dst[:nDst]))
}

func TestTransformerPending(t *testing.T) {
	tr := NewDataBinder().Transformer()
	dst := make([]byte, 64)
	nDst, nSrc, err := tr.Transform(dst, []byte("<p>x<a hr"), false)
	require.NoError(t, err)
	assert.Equal(t, 9, nSrc)
	assert.Equal(t, "<p>x", string(dst[:nDst]))

	nDst, nSrc, err = tr.Transform(dst, []byte("ef>"), true)
	require.NoError(t, err)
	assert.Equal(t, 3, nSrc)
	assert.Equal(t, "<a href>", string(dst[:nDst]))

	tr.Reset()
	nDst, _, err = tr.Transform(dst, []byte("<b>"), true)
	require.NoError(t, err)
	assert.Equal(t, "<b>", string(dst[:nDst]))
}

func TestTransformerLongPending(t *testing.T) {
	// the reference stays pending beyond the reader's buffer size
	input := "<p>&#1 " + strings.Repeat("x", 5000) + "</p>"
	binders := []*Binder{NewDataBinder(), NewAttributeBinder(true)}
	for _, b := range binders {
		t.Run(b.Mode().String(), func(t *testing.T) {
			out, err := io.ReadAll(transform.NewReader(strings.NewReader(input), b.Transformer()))
			require.NoError(t, err)
			assert.Equal(t, b.Apply(input), string(out))
			assert.Equal(t, input, string(out))
		})
	}
}

func TestTransformerLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b := NewDataBinder(WithLogger(zap.New(core)))
	out, _, err := transform.String(b.Transformer(), "<p>x<a href='y")
	require.NoError(t, err)
	assert.Equal(t, "<p>x<a href='y", out)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, int64(4), logs.All()[0].ContextMap()["offset"])
}
