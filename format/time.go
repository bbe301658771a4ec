package format

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateTime accepts an RFC 3339 date-time. "T" and "Z" may be lower case and a
// leap second is accepted when it falls on 23:59:60 UTC.
func DateTime(s string) bool {
	i := strings.IndexAny(s, "Tt")
	if i < 0 {
		return false
	}
	return Date(s[:i]) && Time(s[i+1:])
}

// Date accepts an RFC 3339 full-date and checks the day against the month.
func Date(s string) bool {
	if len(s) != len(time.DateOnly) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// Time accepts an RFC 3339 full-time; the offset is required.
func Time(s string) bool {
	if len(s) < 9 || s[2] != ':' || s[5] != ':' {
		return false
	}
	h, okH := twoDigits(s[0:2])
	m, okM := twoDigits(s[3:5])
	sec, okS := twoDigits(s[6:8])
	if !okH || !okM || !okS || h > 23 || m > 59 || sec > 60 {
		return false
	}
	rest := s[8:]
	if rest[0] == '.' {
		n := leadingDigits(rest[1:])
		if n == 0 {
			return false
		}
		rest = rest[1+n:]
	}
	var offset int
	switch {
	case rest == "Z" || rest == "z":
	case len(rest) == 6 && (rest[0] == '+' || rest[0] == '-') && rest[3] == ':':
		oh, okOH := twoDigits(rest[1:3])
		om, okOM := twoDigits(rest[4:6])
		if !okOH || !okOM || oh > 23 || om > 59 {
			return false
		}
		offset = oh*60 + om
		if rest[0] == '-' {
			offset = -offset
		}
	default:
		return false
	}
	if sec == 60 {
		utc := ((h*60+m-offset)%1440 + 1440) % 1440
		return utc == 23*60+59
	}
	return true
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	n, _ := strconv.Atoi(s)
	return n, true
}

var durationRe = regexp.MustCompile(`^P(?:\d+W|(?:\d+Y)?(?:\d+M)?(?:\d+D)?(?:T(?:\d+H)?(?:\d+M)?(?:\d+S)?)?)$`)

// Duration accepts an ISO 8601 duration as profiled by RFC 3339 appendix A.
func Duration(s string) bool {
	return durationRe.MatchString(s) && s != "P" && !strings.HasSuffix(s, "T")
}
