package format

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// URI accepts an absolute RFC 3986 URI.
func URI(s string) bool { return uriRef(s, false, true) }

// URIReference accepts an RFC 3986 URI or relative reference.
func URIReference(s string) bool { return uriRef(s, false, false) }

// IRI accepts an absolute RFC 3987 IRI.
func IRI(s string) bool { return uriRef(s, true, true) }

// IRIReference accepts an RFC 3987 IRI or relative reference.
func IRIReference(s string) bool { return uriRef(s, true, false) }

func uriRef(s string, iri, absolute bool) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 0x80:
			if !iri {
				return false
			}
		case c <= 0x20 || c == 0x7f || strings.IndexByte("\\<>\"{}|^`", c) >= 0:
			return false
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
		}
	}
	if absolute && !hasScheme(s) {
		return false
	}
	if !absolute && strings.Contains(s, ":") && !hasScheme(s) {
		// a colon in the first segment of a relative path is not allowed
		first := s
		if i := strings.IndexAny(first, "/?#"); i >= 0 {
			first = first[:i]
		}
		if strings.Contains(first, ":") {
			return false
		}
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if absolute && u.Scheme == "" {
		return false
	}
	return true
}

func hasScheme(s string) bool {
	i := strings.IndexByte(s, ':')
	if i <= 0 || !isAlpha(s[0]) {
		return false
	}
	for j := 1; j < i; j++ {
		c := s[j]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

// URITemplate accepts an RFC 6570 template: literals and well-formed
// expressions.
func URITemplate(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '}':
			return false
		case '{':
			end := strings.IndexByte(s[i:], '}')
			if end < 0 || !templateExpr(s[i+1:i+end]) {
				return false
			}
			i += end
		}
	}
	return true
}

func templateExpr(e string) bool {
	if e != "" && strings.IndexByte("+#./;?&=,!@|", e[0]) >= 0 {
		e = e[1:]
	}
	if e == "" {
		return false
	}
	for _, spec := range strings.Split(e, ",") {
		name, mod := spec, ""
		if i := strings.IndexAny(spec, ":*"); i >= 0 {
			name, mod = spec[:i], spec[i:]
		}
		if !varName(name) {
			return false
		}
		switch {
		case mod == "" || mod == "*":
		case mod[0] == ':':
			n := mod[1:]
			if len(n) < 1 || len(n) > 4 || n[0] == '0' || leadingDigits(n) != len(n) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func varName(s string) bool {
	if s == "" || s[0] == '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlpha(c) || isDigit(c) || c == '_' || c == '.':
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}
