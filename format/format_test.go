package format

import "testing"

func TestCheckers(t *testing.T) {
	cases := []struct {
		format string
		in     string
		want   bool
	}{
		{"date-time", "1963-06-19T08:30:06.283185Z", true},
		{"date-time", "1963-06-19t08:30:06z", true},
		{"date-time", "1990-12-31T15:59:60-08:00", true},
		{"date-time", "1998-12-31T23:59:60+01:00", false},
		{"date-time", "1963-06-19 08:30:06Z", false},
		{"date-time", "1963-06-19T08:30:06", false},
		{"date", "2020-02-29", true},
		{"date", "2021-02-29", false},
		{"date", "2020-1-01", false},
		{"time", "08:30:06+02:00", true},
		{"time", "23:59:60Z", true},
		{"time", "24:00:00Z", false},
		{"time", "08:30:06.Z", false},
		{"duration", "P4DT12H30M5S", true},
		{"duration", "P2W", true},
		{"duration", "P", false},
		{"duration", "PT", false},
		{"duration", "P1YT", false},
		{"duration", "P1Y2W", false},
		{"email", "joe.bloggs@example.com", true},
		{"email", "te~st@example.com", true},
		{"email", `"joe bloggs"@example.com`, true},
		{"email", "joe.bloggs@[127.0.0.1]", true},
		{"email", "joe.bloggs@[IPv6:::1]", true},
		{"email", ".test@example.com", false},
		{"email", "te..st@example.com", false},
		{"email", "2962", false},
		{"idn-email", "실례@실례.테스트", true},
		{"hostname", "www.example.com", true},
		{"hostname", "-a-host-name-that-starts-with--", false},
		{"hostname", "not_a_valid_host_name", false},
		{"hostname", "ab--cd.example", false},
		{"idn-hostname", "실례.테스트", true},
		{"idn-hostname", "-실례.테스트", false},
		{"ipv4", "192.168.0.1", true},
		{"ipv4", "087.10.0.1", false},
		{"ipv4", "256.0.0.1", false},
		{"ipv6", "::1", true},
		{"ipv6", "::ffff:192.168.0.1", true},
		{"ipv6", "fe80::a%eth1", false},
		{"ipv6", "12345::", false},
		{"uri", "http://foo.bar/?baz=qux#quux", true},
		{"uri", "urn:oasis:names:specification:docbook:dtd:xml:4.1.2", true},
		{"uri", "//foo.bar/?baz=qux#quux", false},
		{"uri", "http:// shouldfail.com", false},
		{"uri", "bar,baz:foo", false},
		{"uri", "http://ex.com/%zz", false},
		{"uri", "http://ümlaut.com/", false},
		{"uri-reference", "/abc", true},
		{"uri-reference", "#fragment", true},
		{"uri-reference", `\\WINDOWS\fileshare`, false},
		{"iri", "http://ümlaut.com/", true},
		{"iri-reference", "//ƒøø.ßår/?∂éœ=πîx#πîüx", true},
		{"uri-template", "http://example.com/dictionary/{term:1}/{term}", true},
		{"uri-template", "http://example.com/{+path}{?x,y*}", true},
		{"uri-template", "http://example.com/dictionary/{term:1}/{term", false},
		{"uri-template", "http://example.com/{}", false},
		{"uuid", "2eb8aa08-aa98-11ea-b4aa-73b441d16380", true},
		{"uuid", "2eb8aa08aa9811eab4aa73b441d16380", false},
		{"uuid", "2eb8aa08-aa98-11ea-b4aa-73b441d1638g", false},
		{"regex", `([abc])+\s+$`, true},
		{"regex", `^(abc]`, false},
		{"json-pointer", "/foo/bar~0/baz~1/%a", true},
		{"json-pointer", "", true},
		{"json-pointer", "/foo/bar~", false},
		{"json-pointer", "foo", false},
		{"relative-json-pointer", "1", true},
		{"relative-json-pointer", "0/foo/bar", true},
		{"relative-json-pointer", "2#", true},
		{"relative-json-pointer", "0-1/foo", true},
		{"relative-json-pointer", "01/a", false},
		{"relative-json-pointer", "/foo/bar", false},
		{"relative-json-pointer", "0##", false},
	}
	for _, tc := range cases {
		fn, ok := Lookup(tc.format)
		if !ok {
			t.Fatalf("format %q not registered", tc.format)
		}
		if got := fn(tc.in); got != tc.want {
			t.Fatalf("%s(%q) = %v, want %v", tc.format, tc.in, got, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("color"); ok {
		t.Fatalf("unexpected checker for unknown format")
	}
	names := Names()
	if len(names) != 19 || names[0] != "date" {
		t.Fatalf("unexpected names: %v", names)
	}
}
