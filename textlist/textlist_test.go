package textlist

import (
	"net"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func TestJoinRoundTrip(t *testing.T) {
	items := []any{"alpha", "beta", "gamma"}
	joined, err := Join(items, "|")
	be.Err(t, err, nil)
	be.Equal(t, joined, "alpha|beta|gamma")

	parts := strings.Split(joined, "|")
	be.Equal(t, len(parts), len(items))
	for i, part := range parts {
		be.Equal(t, part, items[i].(string))
	}
}

func TestJoinEmpty(t *testing.T) {
	joined, err := Join(nil, ", ")
	be.Err(t, err, nil)
	be.Equal(t, joined, "")

	joined, err = Join([]any{}, "|||")
	be.Err(t, err, nil)
	be.Equal(t, joined, "")
}

func TestJoinSingle(t *testing.T) {
	joined, err := Join([]any{"a"}, "--")
	be.Err(t, err, nil)
	be.Equal(t, joined, "a")
}

func TestJoinMixedScalars(t *testing.T) {
	joined, err := Join([]any{1, "two", true, 2.5, int64(-7), uint8(255)}, ",")
	be.Err(t, err, nil)
	be.Equal(t, joined, "1,two,true,2.5,-7,255")
}

func TestJoinNonScalar(t *testing.T) {
	_, err := Join([]any{"ok", []string{"nested"}}, ",")
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "item 1"))
	be.True(t, strings.Contains(err.Error(), "[]string"))

	_, err = Join([]any{map[string]int{"a": 1}}, ",")
	be.True(t, err != nil)
}

func TestTextStringer(t *testing.T) {
	ip := net.IPv4(127, 0, 0, 1)
	text, err := Text(ip)
	be.Err(t, err, nil)
	be.Equal(t, text, "127.0.0.1")
}

func TestTextNil(t *testing.T) {
	_, err := Text(nil)
	be.True(t, err != nil)
}
