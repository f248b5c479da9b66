package codec_test

import (
	"testing"

	"github.com/dangerclosesec/clubmap/internal/codec"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type link struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

func TestEncodeSortsKeys(t *testing.T) {
	got, err := codec.Encode(map[string]any{
		"zeta":  1,
		"alpha": map[string]any{"y": true, "b": nil},
		"mid":   []any{"x", 2.5},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":{"b":null,"y":true},"mid":["x",2.5],"zeta":1}`, got)
}

func TestEncodeStructFieldsSorted(t *testing.T) {
	got, err := codec.Encode(link{URL: "https://x", Type: "discord"})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"discord","url":"https://x"}`, got)
}

func TestEncodeDeterministic(t *testing.T) {
	a := map[string]any{}
	a["b"] = 1
	a["a"] = 2
	b := map[string]any{}
	b["a"] = 2
	b["b"] = 1

	ea, err := codec.Encode(a)
	require.NoError(t, err)
	eb, err := codec.Encode(b)
	require.NoError(t, err)
	assert.Equal(t, ea, eb)
}

func TestEncodePreservesText(t *testing.T) {
	got, err := codec.Encode([]string{"游戏开发社", "<b>&</b>"})
	require.NoError(t, err)
	assert.Equal(t, `["游戏开发社","<b>&</b>"]`, got)
}

func TestEncodeKeepsLineSeparatorsRaw(t *testing.T) {
	got, err := codec.Encode(map[string]any{"s": "a\u2028b\u2029c"})
	require.NoError(t, err)
	assert.Equal(t, "{\"s\":\"a\u2028b\u2029c\"}", got)
	assert.Equal(t, map[string]string{"s": "a\u2028b\u2029c"}, codec.Decode(got, map[string]string{}))

	// A literal backslash followed by "u2028" is text, not an escape.
	got, err = codec.Encode(map[string]any{"s": `\u2028 \\u2029`})
	require.NoError(t, err)
	assert.Equal(t, `{"s":"\\u2028 \\\\u2029"}`, got)
}

func TestEncodeKeepsNumberLiterals(t *testing.T) {
	got, err := codec.Encode(map[string]any{"big": int64(9007199254740993), "f": 120.1})
	require.NoError(t, err)
	assert.Equal(t, `{"big":9007199254740993,"f":120.1}`, got)
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := codec.Encode(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
	assert.Panics(t, func() { codec.MustEncode(func() {}) })
}

func TestDecodeRoundTrip(t *testing.T) {
	in := map[string]any{
		"name": "Foo Club",
		"tags": []any{"unity", "游戏"},
		"nested": map[string]any{
			"ok":  true,
			"nil": nil,
			"n":   float64(3),
		},
	}

	text, err := codec.Encode(in)
	require.NoError(t, err)

	out := codec.Decode[map[string]any](text, nil)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	links := []link{{URL: "https://a", Type: "qq"}}
	text, err = codec.Encode(links)
	require.NoError(t, err)
	assert.Equal(t, links, codec.Decode[[]link](text, nil))
}

func TestDecodeDefaults(t *testing.T) {
	def := []string{"default"}

	assert.Equal(t, def, codec.DecodePtr[[]string](nil, def))
	assert.Equal(t, def, codec.Decode("", def))
	assert.Equal(t, def, codec.Decode("not json", def))
	assert.Equal(t, def, codec.Decode(`{"wrong":"shape"}`, def))

	empty := ""
	assert.Equal(t, def, codec.DecodePtr(&empty, def))

	text := `["a","b"]`
	assert.Equal(t, []string{"a", "b"}, codec.DecodePtr(&text, def))
}
