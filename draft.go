package jsonskema

import "strings"

// Draft identifies a JSON Schema specification version.
type Draft int

const (
	// DraftAutodetect picks the draft from the root schema's "$schema" and falls
	// back to DraftLatest.
	DraftAutodetect Draft = iota
	Draft04
	Draft06
	Draft07
	Draft201909
	Draft202012
)

// DraftLatest is the draft used when nothing else is declared.
const DraftLatest = Draft202012

func (d Draft) String() string {
	switch d {
	case Draft04:
		return "draft-04"
	case Draft06:
		return "draft-06"
	case Draft07:
		return "draft-07"
	case Draft201909:
		return "2019-09"
	case Draft202012:
		return "2020-12"
	default:
		return "autodetect"
	}
}

// MetaSchemaURL returns the canonical meta-schema URL of the draft, or "" for
// DraftAutodetect.
func (d Draft) MetaSchemaURL() string {
	switch d {
	case Draft04:
		return "http://json-schema.org/draft-04/schema#"
	case Draft06:
		return "http://json-schema.org/draft-06/schema#"
	case Draft07:
		return "http://json-schema.org/draft-07/schema#"
	case Draft201909:
		return "https://json-schema.org/draft/2019-09/schema"
	case Draft202012:
		return "https://json-schema.org/draft/2020-12/schema"
	default:
		return ""
	}
}

// ParseDraft accepts the names printed by Draft.String plus a few short forms
// ("4", "7", "2020-12", "latest").
func ParseDraft(s string) (Draft, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "autodetect":
		return DraftAutodetect, true
	case "4", "draft4", "draft-04", "draft04":
		return Draft04, true
	case "6", "draft6", "draft-06", "draft06":
		return Draft06, true
	case "7", "draft7", "draft-07", "draft07":
		return Draft07, true
	case "2019-09", "201909", "draft2019-09":
		return Draft201909, true
	case "2020-12", "202012", "draft2020-12", "latest":
		return Draft202012, true
	}
	return DraftAutodetect, false
}

// DraftFromURL maps a meta-schema URL to its draft. The scheme prefix and an
// empty fragment are optional; a non-empty fragment names a subschema and never
// matches.
func DraftFromURL(url string) (Draft, bool) {
	if base, frag, ok := strings.Cut(url, "#"); ok {
		if frag != "" {
			return DraftAutodetect, false
		}
		url = base
	}
	if s, ok := strings.CutPrefix(url, "http://"); ok {
		url = s
	} else if s, ok := strings.CutPrefix(url, "https://"); ok {
		url = s
	}
	switch url {
	case "json-schema.org/schema":
		return DraftLatest, true
	case "json-schema.org/draft/2020-12/schema":
		return Draft202012, true
	case "json-schema.org/draft/2019-09/schema":
		return Draft201909, true
	case "json-schema.org/draft-07/schema":
		return Draft07, true
	case "json-schema.org/draft-06/schema":
		return Draft06, true
	case "json-schema.org/draft-04/schema":
		return Draft04, true
	}
	return DraftAutodetect, false
}

// DraftFromSchema reads "$schema" from a schema document. Documents without a
// recognised meta-schema URL use DraftLatest.
func DraftFromSchema(schema any) Draft {
	if d, ok := declaredDraft(schema); ok {
		return d
	}
	return DraftLatest
}

func declaredDraft(schema any) (Draft, bool) {
	obj, ok := schema.(map[string]any)
	if !ok {
		return DraftAutodetect, false
	}
	s, ok := obj["$schema"].(string)
	if !ok {
		return DraftAutodetect, false
	}
	return DraftFromURL(s)
}

func (d Draft) vocabulary() *vocabulary {
	switch d {
	case Draft04:
		return draft04
	case Draft06:
		return draft06
	case Draft07:
		return draft07
	case Draft201909:
		return draft201909
	default:
		return draft202012
	}
}
