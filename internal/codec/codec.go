// Package codec persists structured values as flat text.
//
// Encode is deterministic: object keys are sorted at every depth, there is no
// insignificant whitespace, and non-ASCII text and HTML characters are written
// verbatim. Decode is lenient: absent, empty or malformed text yields the
// caller's default instead of an error.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Encode returns the stable textual encoding of v.
func Encode(v any) (string, error) {
	raw, err := marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}

	// Struct fields are emitted in declaration order, so round-trip through a
	// generic value to get sorted keys everywhere.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", fmt.Errorf("normalizing value: %w", err)
	}

	out, err := marshal(generic)
	if err != nil {
		return "", fmt.Errorf("encoding value: %w", err)
	}
	return string(out), nil
}

// MustEncode is Encode for values that are known to be JSON-compatible.
func MustEncode(v any) string {
	s, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Decode parses text into a T, returning def when text is empty or invalid.
func Decode[T any](text string, def T) T {
	if text == "" {
		return def
	}

	var out T
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return def
	}
	return out
}

// DecodePtr is Decode for nullable columns.
func DecodePtr[T any](text *string, def T) T {
	if text == nil {
		return def
	}
	return Decode(*text, def)
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 back as raw characters.
// encoding/json escapes them even with HTML escaping off.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+6 <= len(b) {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		// Any other escape is copied whole so an escaped backslash is never
		// read as the start of a new escape.
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
