package jsonpointer

import "testing"

func TestEscapeRoundTrip(t *testing.T) {
	in := "a/b~c"
	esc := Escape(in)
	if esc != "a~1b~0c" {
		t.Fatalf("escape: got %q", esc)
	}
	if got := Unescape(esc); got != in {
		t.Fatalf("unescape: got %q", got)
	}
}

func TestGet(t *testing.T) {
	doc := map[string]any{
		"$defs": map[string]any{
			"a/b": map[string]any{"type": "string"},
		},
		"items": []any{true, map[string]any{"minimum": 1}},
	}
	if v, ok := Get(doc, "/$defs/a~1b/type"); !ok || v != "string" {
		t.Fatalf("expected string, got %v %v", v, ok)
	}
	if _, ok := Get(doc, "/items/1/minimum"); !ok {
		t.Fatalf("expected array lookup to succeed")
	}
	if _, ok := Get(doc, "/items/01"); ok {
		t.Fatalf("leading zero index must not resolve")
	}
	if _, ok := Get(doc, "/missing"); ok {
		t.Fatalf("missing key must not resolve")
	}
	if v, ok := Get(doc, ""); !ok || v == nil {
		t.Fatalf("empty pointer must return the document")
	}
}

func TestParseSyntax(t *testing.T) {
	if _, err := Parse("a/b"); err == nil {
		t.Fatalf("expected syntax error for pointer without leading slash")
	}
	if _, err := Parse("/a~2"); err == nil {
		t.Fatalf("expected syntax error for bad escape")
	}
	toks, err := Parse("/a~1b/~0")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(toks) != 2 || toks[0] != "a/b" || toks[1] != "~" {
		t.Fatalf("unexpected tokens: %q", toks)
	}
}

func TestHasPrefix(t *testing.T) {
	cases := []struct {
		ptr, prefix string
		want        bool
	}{
		{"/a/b", "/a", true},
		{"/a", "/a", true},
		{"/ab", "/a", false},
		{"/a", "", true},
	}
	for _, c := range cases {
		if got := HasPrefix(c.ptr, c.prefix); got != c.want {
			t.Fatalf("HasPrefix(%q,%q)=%v want %v", c.ptr, c.prefix, got, c.want)
		}
	}
}
