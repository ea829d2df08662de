// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package features

import (
	"strings"
	"unicode"

	"github.com/goccy/go-json"
)

// Object is one decoded element of a serialized list column.
type Object map[string]any

// ParseObjects decodes a serialized list of objects. The JSON form is tried
// first, then the single-quoted literal form some exports use. Anything that
// is not a list of objects yields an empty result, never an error.
func ParseObjects(s string) []Object {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if objs, ok := decodeList(s); ok {
		return objs
	}

	converted, ok := literalToJSON(s)
	if !ok {
		return nil
	}
	objs, _ := decodeList(converted)
	return objs
}

// decodeList unmarshals a JSON array and keeps its object elements.
func decodeList(s string) ([]Object, bool) {
	var raw []any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, false
	}

	objs := make([]Object, 0, len(raw))
	for _, elem := range raw {
		if m, ok := elem.(map[string]any); ok {
			objs = append(objs, Object(m))
		}
	}
	return objs, true
}

// String returns the value of key when it is a string.
func (o Object) String(key string) (string, bool) {
	v, ok := o[key].(string)
	return v, ok
}

// literalToJSON rewrites single-quoted string literals as JSON strings and
// maps True, False and None to their JSON spellings. It gives up on
// unterminated strings.
func literalToJSON(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'' || r == '"':
			end, ok := writeQuoted(&b, runes, i)
			if !ok {
				return "", false
			}
			i = end
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '_') {
				j++
			}
			b.WriteString(literalKeyword(string(runes[i:j])))
			i = j - 1
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), true
}

// writeQuoted emits the quoted literal starting at runes[start] as a JSON
// string and returns the index of its closing quote.
func writeQuoted(b *strings.Builder, runes []rune, start int) (int, bool) {
	quote := runes[start]
	b.WriteByte('"')
	for i := start + 1; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\' && i+1 < len(runes):
			i++
			switch next := runes[i]; next {
			case '\'':
				b.WriteRune('\'')
			case '"':
				b.WriteString(`\"`)
			default:
				b.WriteRune('\\')
				b.WriteRune(next)
			}
		case r == quote:
			b.WriteByte('"')
			return i, true
		case r == '"':
			b.WriteString(`\"`)
		case r < 0x20:
			// control characters are not valid inside JSON strings
			b.WriteString(`\u00`)
			b.WriteByte("0123456789abcdef"[r>>4])
			b.WriteByte("0123456789abcdef"[r&0xf])
		default:
			b.WriteRune(r)
		}
	}
	return 0, false
}

func literalKeyword(word string) string {
	switch word {
	case "True":
		return "true"
	case "False":
		return "false"
	case "None":
		return "null"
	default:
		return word
	}
}
