// Package jsonpointer implements the RFC 6901 pieces needed to address schema
// documents: token escaping, parsing and lookup over JSON-like Go values.
package jsonpointer

import (
	"errors"
	"strconv"
	"strings"
)

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// ErrSyntax reports a pointer that is not empty and does not start with '/',
// or that contains a '~' not followed by '0' or '1'.
var ErrSyntax = errors.New("jsonpointer: invalid syntax")

// Escape escapes '~' -> '~0' and '/' -> '~1'.
func Escape(token string) string { return escaper.Replace(token) }

// Unescape reverses Escape.
func Unescape(token string) string { return unescaper.Replace(token) }

// Join appends escaped tokens to base.
func Join(base string, tokens ...string) string {
	if len(tokens) == 0 {
		return base
	}
	b := &strings.Builder{}
	b.WriteString(base)
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(Escape(t))
	}
	return b.String()
}

// Parse splits a pointer into unescaped reference tokens. The empty pointer
// yields no tokens.
func Parse(ptr string) ([]string, error) {
	if ptr == "" {
		return nil, nil
	}
	if ptr[0] != '/' {
		return nil, ErrSyntax
	}
	parts := strings.Split(ptr[1:], "/")
	for i, p := range parts {
		if !validEscapes(p) {
			return nil, ErrSyntax
		}
		parts[i] = Unescape(p)
	}
	return parts, nil
}

// Valid reports whether ptr is a syntactically valid JSON Pointer.
func Valid(ptr string) bool {
	_, err := Parse(ptr)
	return err == nil
}

func validEscapes(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] != '~' {
			continue
		}
		if i+1 >= len(token) || (token[i+1] != '0' && token[i+1] != '1') {
			return false
		}
	}
	return true
}

// Get resolves ptr against doc. It understands map[string]any and []any.
func Get(doc any, ptr string) (any, bool) {
	tokens, err := Parse(ptr)
	if err != nil {
		return nil, false
	}
	cur := doc
	for _, tok := range tokens {
		switch t := cur.(type) {
		case map[string]any:
			v, ok := t[tok]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, ok := arrayIndex(tok)
			if !ok || i >= len(t) {
				return nil, false
			}
			cur = t[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// HasPrefix reports whether ptr equals prefix or lies below it.
func HasPrefix(ptr, prefix string) bool {
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(ptr, prefix) {
		return false
	}
	return len(ptr) == len(prefix) || ptr[len(prefix)] == '/'
}

func arrayIndex(tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return i, true
}
