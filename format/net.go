package format

import (
	"net/netip"
	"strings"

	"golang.org/x/net/idna"
)

// Hostname accepts an RFC 1123 host name. A-labels ("xn--") must decode as
// valid punycode.
func Hostname(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if !hostLabel(label) {
			return false
		}
	}
	if strings.Contains(strings.ToLower(s), "xn--") {
		_, err := idna.Registration.ToUnicode(strings.ToLower(s))
		return err == nil
	}
	return true
}

func hostLabel(l string) bool {
	if l == "" || len(l) > 63 || l[0] == '-' || l[len(l)-1] == '-' {
		return false
	}
	for i := 0; i < len(l); i++ {
		c := l[i]
		if !isAlpha(c) && !isDigit(c) && c != '-' {
			return false
		}
	}
	// "--" in the third and fourth positions is reserved for A-labels.
	if len(l) >= 4 && l[2:4] == "--" && !strings.EqualFold(l[:2], "xn") {
		return false
	}
	return true
}

// IDNHostname accepts an internationalized host name valid for registration
// under IDNA 2008.
func IDNHostname(s string) bool {
	if s == "" {
		return false
	}
	ascii, err := idna.Registration.ToASCII(s)
	if err != nil {
		return false
	}
	return Hostname(ascii)
}

// IPv4 accepts a dotted-quad address without leading zeros.
func IPv4(s string) bool {
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is4()
}

// IPv6 accepts an RFC 4291 address without a zone.
func IPv6(s string) bool {
	if strings.Contains(s, "%") {
		return false
	}
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is6()
}

// Email accepts an RFC 5321 mailbox: a dot-atom or quoted local part and a
// host name or bracketed address literal.
func Email(s string) bool { return mailbox(s, false) }

// IDNEmail is Email with UTF-8 local parts and internationalized domains.
func IDNEmail(s string) bool { return mailbox(s, true) }

func mailbox(s string, idn bool) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if !localPart(local, idn) {
		return false
	}
	if strings.HasPrefix(domain, "[") && strings.HasSuffix(domain, "]") {
		lit := domain[1 : len(domain)-1]
		if v6, ok := strings.CutPrefix(lit, "IPv6:"); ok {
			return IPv6(v6)
		}
		return IPv4(lit)
	}
	if idn {
		return IDNHostname(domain)
	}
	return Hostname(domain)
}

func localPart(s string, idn bool) bool {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		q := s[1 : len(s)-1]
		for i := 0; i < len(q); i++ {
			switch {
			case q[i] == '\\':
				i++
				if i == len(q) {
					return false
				}
			case q[i] == '"' || q[i] < 0x20 || q[i] == 0x7f:
				return false
			}
		}
		return true
	}
	if s[0] == '.' || s[len(s)-1] == '.' || strings.Contains(s, "..") {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAlpha(c) || isDigit(c) || c == '.':
		case strings.IndexByte("!#$%&'*+-/=?^_`{|}~", c) >= 0:
		case idn && c >= 0x80:
		default:
			return false
		}
	}
	return true
}
