// Package format implements the built-in checkers of the "format" keyword.
// Every checker receives a string instance; non-string instances never reach
// it.
package format

import (
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/reoring/jsonskema/internal/jsonpointer"
)

var checkers = map[string]func(string) bool{
	"date-time":             DateTime,
	"date":                  Date,
	"time":                  Time,
	"duration":              Duration,
	"email":                 Email,
	"idn-email":             IDNEmail,
	"hostname":              Hostname,
	"idn-hostname":          IDNHostname,
	"ipv4":                  IPv4,
	"ipv6":                  IPv6,
	"uri":                   URI,
	"uri-reference":         URIReference,
	"iri":                   IRI,
	"iri-reference":         IRIReference,
	"uri-template":          URITemplate,
	"uuid":                  UUID,
	"regex":                 Regex,
	"json-pointer":          JSONPointer,
	"relative-json-pointer": RelativeJSONPointer,
}

// Lookup returns the built-in checker for name.
func Lookup(name string) (func(string) bool, bool) {
	fn, ok := checkers[name]
	return fn, ok
}

// Names lists the built-in format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(checkers))
	for n := range checkers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// UUID accepts the hyphenated RFC 4122 form only.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Regex accepts patterns the "pattern" keyword can compile.
func Regex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

func JSONPointer(s string) bool { return jsonpointer.Valid(s) }

// RelativeJSONPointer accepts a non-negative integer, an optional index
// adjustment, then either "#" or a JSON Pointer.
func RelativeJSONPointer(s string) bool {
	n := leadingDigits(s)
	if !validCount(s[:n]) {
		return false
	}
	rest := s[n:]
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		m := leadingDigits(rest[1:])
		if !validCount(rest[1:1+m]) || rest[1:1+m] == "0" {
			return false
		}
		rest = rest[1+m:]
	}
	return rest == "#" || (rest == "" || strings.HasPrefix(rest, "/")) && jsonpointer.Valid(rest)
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

// validCount accepts a decimal without leading zeros.
func validCount(s string) bool {
	return s != "" && (s == "0" || s[0] != '0')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isHex(c byte) bool { return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F' }
