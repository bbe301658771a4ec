package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reoring/jsonskema"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestValidateCmd_FileReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "defs.json", `{"$defs": {"positive": {"type": "integer", "exclusiveMinimum": 0}}}`)
	schema := writeFile(t, dir, "schema.json", `{
		"type": "object",
		"properties": {"count": {"$ref": "defs.json#/$defs/positive"}},
		"required": ["count"]
	}`)
	good := writeFile(t, dir, "good.yaml", "count: 3\n---\ncount: 1\n")
	bad := writeFile(t, dir, "bad.json", `{"count": 0}`)

	var out bytes.Buffer
	if code := validateCmd([]string{"-schema", schema, good}, &out); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out.String())
	}
	if strings.Count(out.String(), `"valid": true`) != 2 {
		t.Fatalf("expected two valid results, got %s", out.String())
	}

	out.Reset()
	if code := validateCmd([]string{"-schema", schema, "-output", "basic", bad}, &out); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	got := out.String()
	if !strings.Contains(got, `"instanceLocation": "/count"`) || !strings.Contains(got, `"keywordLocation": "/properties/count/$ref/exclusiveMinimum"`) {
		t.Fatalf("unexpected basic output: %s", got)
	}
}

func TestParseDocuments(t *testing.T) {
	docs, err := parseDocuments("x.yml", []byte("a: 1\n---\nb: 2\n"), jsonskema.LoadOpt{})
	if err != nil || len(docs) != 2 {
		t.Fatalf("yaml docs = %v, %v", docs, err)
	}
	if _, err := parseSingle("x.json", []byte(`{"a":1,"a":2}`), jsonskema.LoadOpt{RejectDuplicateKeys: true}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}
