package jsonskema_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/reoring/jsonskema"
)

func TestParseJSON_PreservesNumbers(t *testing.T) {
	v, err := jsonskema.ParseJSON([]byte(`{"big": 12345678901234567890, "f": 0.1}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := v.(map[string]any)
	if n, ok := m["big"].(json.Number); !ok || n.String() != "12345678901234567890" {
		t.Fatalf("big = %#v", m["big"])
	}
	s := mustBuild(t, `{"properties": {"big": {"maximum": 12345678901234567889}}}`)
	if s.IsValid(v) {
		t.Fatalf("precision lost in comparison")
	}
}

func TestParseJSON_Trailing(t *testing.T) {
	if _, err := jsonskema.ParseJSON([]byte(`{} {}`)); err == nil {
		t.Fatalf("expected trailing data error")
	}
	if _, err := jsonskema.ParseJSON([]byte(`[1, 2]` + "\n")); err != nil {
		t.Fatalf("trailing whitespace rejected: %v", err)
	}
}

func TestParseJSON_Enforcement(t *testing.T) {
	data := []byte(`{"a": {"b": 1, "b": 2}}`)
	if _, err := jsonskema.ParseJSON(data); err != nil {
		t.Fatalf("duplicates are allowed by default: %v", err)
	}
	_, err := jsonskema.ParseJSON(data, jsonskema.LoadOpt{RejectDuplicateKeys: true})
	var de *jsonskema.DocumentError
	if !errors.As(err, &de) || de.Code != "duplicate_key" || de.Location != "/a/b" {
		t.Fatalf("expected duplicate_key at /a/b, got %v", err)
	}
	_, err = jsonskema.ParseJSON([]byte(`[[[1]]]`), jsonskema.LoadOpt{RejectDuplicateKeys: true}, jsonskema.LoadOpt{MaxDepth: 2})
	if !errors.As(err, &de) || de.Code != "max_depth" {
		t.Fatalf("expected max_depth, got %v", err)
	}
	if _, err := jsonskema.ParseJSON([]byte(`[[1]]`), jsonskema.LoadOpt{MaxDepth: 2}); err != nil {
		t.Fatalf("depth 2 should pass: %v", err)
	}
}

func TestReadJSON(t *testing.T) {
	v, err := jsonskema.ReadJSON(strings.NewReader(`{"a": [true, null]}`), jsonskema.LoadOpt{RejectDuplicateKeys: true})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !mustBuild(t, `{"properties": {"a": {"items": {"type": ["boolean", "null"]}}}}`).IsValid(v) {
		t.Fatalf("decoded value rejected")
	}
}

func TestParseYAML(t *testing.T) {
	docs, err := jsonskema.ParseYAML([]byte("type: object\nrequired: [name]\n---\nname: x\n"))
	if err != nil || len(docs) != 2 {
		t.Fatalf("parse = %v, %v", docs, err)
	}
	v, err := jsonskema.NewBuilder().BuildBlocking(docs[0])
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !v.IsValid(docs[1]) || v.IsValid(map[string]any{}) {
		t.Fatalf("yaml schema not applied")
	}
	_, err = jsonskema.ParseYAML([]byte("a: 1\na: 2\n"))
	var de *jsonskema.DocumentError
	if !errors.As(err, &de) || de.Code != "duplicate_key" {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}
