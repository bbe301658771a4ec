package jsonskema_test

import (
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonskema"
)

func TestEvaluate_Flag(t *testing.T) {
	v := mustBuild(t, `{"type": "string"}`)
	if got := v.Evaluate(1).Format(jsonskema.OutputFlag); got != (jsonskema.FlagOutput{Valid: false}) {
		t.Fatalf("unexpected flag output %+v", got)
	}
	b, err := gojson.Marshal(v.Evaluate("s").Flag())
	if err != nil || string(b) != `{"valid":true}` {
		t.Fatalf("flag json = %s, %v", b, err)
	}
}

func TestEvaluate_BasicErrors(t *testing.T) {
	v := mustBuild(t, `{
		"$id": "https://example.com/person.json",
		"properties": {"age": {"type": "integer", "minimum": 0}},
		"required": ["name"]
	}`)
	out := v.Evaluate(mustJSON(t, `{"age": -1.5}`)).Basic()
	if out.Valid || len(out.Errors) != 3 {
		t.Fatalf("unexpected basic output: %+v", out)
	}
	want := []struct{ kw, inst, abs string }{
		{"/properties/age/type", "/age", "https://example.com/person.json#/properties/age/type"},
		{"/properties/age/minimum", "/age", "https://example.com/person.json#/properties/age/minimum"},
		{"/required", "", "https://example.com/person.json#/required"},
	}
	for i, w := range want {
		u := out.Errors[i]
		if u.KeywordLocation != w.kw || u.InstanceLocation != w.inst || u.AbsoluteKeywordLocation != w.abs || u.Error == "" {
			t.Fatalf("error %d = %+v, want %+v", i, u, w)
		}
	}
}

func TestEvaluate_BasicAnnotations(t *testing.T) {
	v := mustBuild(t, `{"title": "root", "properties": {"a": {"description": "first"}}}`)
	out := v.Evaluate(mustJSON(t, `{"a": 1}`)).Basic()
	if !out.Valid || len(out.Errors) != 0 {
		t.Fatalf("unexpected basic output: %+v", out)
	}
	got := map[string]any{}
	for _, u := range out.Annotations {
		got[u.KeywordLocation] = u.Annotation
	}
	if got["/title"] != "root" || got["/properties/a/description"] != "first" {
		t.Fatalf("unexpected annotations %v", got)
	}
	if names, ok := got["/properties"].([]string); !ok || len(names) != 1 || names[0] != "a" {
		t.Fatalf("properties annotation = %#v", got["/properties"])
	}
}

func TestEvaluate_HierarchicalCollapses(t *testing.T) {
	v := mustBuild(t, `{"properties": {"a": {"properties": {"b": {"type": "string"}}}}}`)
	out := v.Evaluate(mustJSON(t, `{"a": {"b": 1}}`)).Hierarchical()
	if out.Valid || len(out.Errors) != 1 {
		t.Fatalf("unexpected hierarchical output: %+v", out)
	}
	leaf := out.Errors[0]
	if leaf.KeywordLocation != "/properties/a/properties/b/type" || leaf.InstanceLocation != "/a/b" || len(leaf.Errors) != 0 {
		t.Fatalf("expected the chain to collapse to its leaf, got %+v", leaf)
	}
}

func TestEvaluate_HierarchicalKeepsBranching(t *testing.T) {
	v := mustBuild(t, `{"anyOf": [{"type": "string"}, {"minimum": 10}]}`)
	out := v.Evaluate(3).Hierarchical()
	if len(out.Errors) != 1 {
		t.Fatalf("unexpected output: %+v", out)
	}
	anyOf := out.Errors[0]
	if anyOf.KeywordLocation != "/anyOf" || anyOf.Error == "" || len(anyOf.Errors) != 2 {
		t.Fatalf("anyOf unit = %+v", anyOf)
	}
	if anyOf.Errors[0].KeywordLocation != "/anyOf/0/type" || anyOf.Errors[1].KeywordLocation != "/anyOf/1/minimum" {
		t.Fatalf("branch units = %+v", anyOf.Errors)
	}
}

func TestEvaluate_Verbose(t *testing.T) {
	v := mustBuild(t, `{"type": "object", "properties": {"a": {"type": "string"}}}`)
	out := v.Evaluate(mustJSON(t, `{"a": "x"}`)).Verbose()
	if !out.Valid || len(out.Annotations) != 2 {
		t.Fatalf("unexpected verbose output: %+v", out)
	}
	props := out.Annotations[0]
	if props.KeywordLocation != "/properties" || len(props.Annotations) != 1 {
		t.Fatalf("properties unit = %+v", props)
	}
	sub := props.Annotations[0]
	if sub.KeywordLocation != "/properties/a" || sub.InstanceLocation != "/a" || len(sub.Annotations) != 1 {
		t.Fatalf("subschema unit = %+v", sub)
	}
	b, err := gojson.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"keywordLocation":"/properties/a/type"`) || strings.Contains(string(b), "absoluteKeywordLocation") {
		t.Fatalf("unexpected json %s", b)
	}
}

func TestEvaluate_ErrorsMatchIterErrors(t *testing.T) {
	v := mustBuild(t, `{"items": {"type": "integer"}, "maxItems": 2}`)
	inst := mustJSON(t, `[1, "a", "b"]`)
	ev := v.Evaluate(inst)
	var want []string
	for e := range v.IterErrors(inst) {
		want = append(want, e.KeywordLocation+"@"+e.InstanceLocation)
	}
	got := ev.Errors()
	if len(got) != len(want) || len(got) != 3 {
		t.Fatalf("errors %v, want %v", got, want)
	}
	for i := range want {
		if got[i].KeywordLocation+"@"+got[i].InstanceLocation != want[i] {
			t.Fatalf("errors %v, want %v", got, want)
		}
	}
}

func TestParseOutputFormat(t *testing.T) {
	for name, want := range map[string]jsonskema.OutputFormat{
		"flag": jsonskema.OutputFlag, "Basic": jsonskema.OutputBasic,
		"detailed": jsonskema.OutputHierarchical, "verbose": jsonskema.OutputVerbose,
	} {
		got, ok := jsonskema.ParseOutputFormat(name)
		if !ok || got != want {
			t.Fatalf("ParseOutputFormat(%q) = %v, %v", name, got, ok)
		}
	}
	if _, ok := jsonskema.ParseOutputFormat("xml"); ok {
		t.Fatalf("xml accepted")
	}
}
