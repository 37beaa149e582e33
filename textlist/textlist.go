// Package textlist joins ordered sequences of scalar values into a single
// delimited string.
//
// Join is the general-purpose entry point: items keep their original order,
// adjacent items are separated by exactly one copy of the delimiter, and an
// empty input yields an empty string. Text coerces one scalar value to its
// textual form. Any value that is not scalar-textualizable (slices, maps,
// structs, and so on) produces a descriptive coercion error; callers may
// treat that as a recoverable condition.
package textlist

import (
	"fmt"
	"strconv"
	"strings"
)

// Join converts items to text and concatenates them with sep between
// adjacent items. The empty sequence yields "". A single item yields its
// textual form with no delimiter.
func Join(items []any, sep string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}

	var b strings.Builder
	for i, item := range items {
		text, err := Text(item)
		if err != nil {
			return "", fmt.Errorf("textlist: joining item %d failed: %w", i, err)
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// Text coerces one scalar value to its textual form. Supported kinds are
// strings, booleans, the integer and unsigned integer widths, floats, and
// values implementing fmt.Stringer.
func Text(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	case nil:
		return "", fmt.Errorf("cannot coerce nil to text")
	default:
		return "", fmt.Errorf("cannot coerce %T to text", value)
	}
}
