package jsonskema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/reoring/jsonskema"
)

func mustJSON(t *testing.T, src string) any {
	t.Helper()
	v, err := jsonskema.ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("parse %s: %v", src, err)
	}
	return v
}

func mustBuild(t *testing.T, schema string) *jsonskema.Validator {
	t.Helper()
	v, err := jsonskema.NewBuilder().Build(context.Background(), mustJSON(t, schema))
	if err != nil {
		t.Fatalf("build %s: %v", schema, err)
	}
	return v
}

func countErrors(v *jsonskema.Validator, inst any) int {
	n := 0
	for range v.IterErrors(inst) {
		n++
	}
	return n
}

func TestScenario_TypeMismatch(t *testing.T) {
	v := mustBuild(t, `{"type": "integer"}`)
	if v.IsValid("a") {
		t.Fatalf("string should not be an integer")
	}
	err := v.Validate("a")
	var ve *jsonskema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Keyword != "type" || ve.Code != jsonskema.CodeInvalidType || ve.InstanceLocation != "" {
		t.Fatalf("unexpected error: %+v", ve)
	}
	if countErrors(v, "a") != 1 {
		t.Fatalf("expected one error")
	}
}

func TestScenario_TypeMatch(t *testing.T) {
	v := mustBuild(t, `{"type": "integer"}`)
	for _, inst := range []any{4, int64(4), 4.0, mustJSON(t, "4"), mustJSON(t, "4.0")} {
		if !v.IsValid(inst) {
			t.Fatalf("%v (%T) should be an integer", inst, inst)
		}
		if n := countErrors(v, inst); n != 0 {
			t.Fatalf("expected zero errors, got %d", n)
		}
	}
	if v.IsValid(4.5) {
		t.Fatalf("4.5 is not an integer")
	}
}

func TestScenario_AllOfReportsOnlyFailingBranch(t *testing.T) {
	v := mustBuild(t, `{"allOf": [{"type": "integer"}, {"minimum": 5}]}`)
	errs, ok := jsonskema.AsValidationErrors(v.ValidateAll(3))
	if !ok || len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Keyword != "minimum" || errs[0].KeywordLocation != "/allOf/1/minimum" {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
	if errs[0].Code != jsonskema.CodeTooSmall {
		t.Fatalf("unexpected code %q", errs[0].Code)
	}
}

func TestScenario_SelfReferenceTerminates(t *testing.T) {
	v := mustBuild(t, `{"$ref": "#/$defs/self", "$defs": {"self": {"$ref": "#"}}}`)
	for _, inst := range []any{nil, 1, "x", []any{1}, map[string]any{"a": 1}} {
		if !v.IsValid(inst) {
			t.Fatalf("%v should be valid", inst)
		}
		if ev := v.Evaluate(inst); !ev.Valid() {
			t.Fatalf("evaluate %v should be valid", inst)
		}
	}
}

type asciiMax struct{ max int }

func (k asciiMax) IsValid(inst any) bool {
	s, ok := inst.(string)
	if !ok {
		return true
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return true
		}
	}
	return len(s) <= k.max
}

func asciiMaxFactory(raw any) (jsonskema.Keyword, error) {
	n, ok := raw.(float64)
	if !ok {
		return nil, errors.New("ascii-max must be a number")
	}
	return asciiMax{max: int(n)}, nil
}

func TestScenario_CustomKeyword(t *testing.T) {
	v, err := jsonskema.NewBuilder().
		Keyword("ascii-max", asciiMaxFactory).
		Build(context.Background(), map[string]any{"ascii-max": 3.0})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if v.IsValid("abcd") {
		t.Fatalf("abcd exceeds ascii-max")
	}
	if !v.IsValid("é") || !v.IsValid("abc") {
		t.Fatalf("é and abc should be valid")
	}
	err = v.Validate("abcd")
	var ve *jsonskema.ValidationError
	if !errors.As(err, &ve) || ve.Keyword != "ascii-max" || ve.Code != jsonskema.CodeKeyword {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestScenario_NoSchemaUsesLatest(t *testing.T) {
	v := mustBuild(t, `{"type": "integer", "prefixItems": [{"type": "string"}]}`)
	if v.Draft() != jsonskema.DraftLatest {
		t.Fatalf("expected latest draft, got %s", v.Draft())
	}
	if v.IsValid("x") || !v.IsValid(7) {
		t.Fatalf("type semantics not applied")
	}
}

func TestAPIConsistency(t *testing.T) {
	v := mustBuild(t, `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 2},
			"tags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
		},
		"required": ["name", "id"],
		"additionalProperties": false
	}`)
	instances := []string{
		`{"name": "ok", "id": 1}`,
		`{"name": "x"}`,
		`{"name": "ok", "id": 1, "tags": ["a", "a", 3], "extra": true}`,
		`[]`,
		`null`,
	}
	for _, src := range instances {
		inst := mustJSON(t, src)
		valid := v.IsValid(inst)
		if (v.Validate(inst) == nil) != valid {
			t.Fatalf("%s: IsValid and Validate disagree", src)
		}
		if (countErrors(v, inst) == 0) != valid {
			t.Fatalf("%s: IsValid and IterErrors disagree", src)
		}
		if v.Evaluate(inst).Valid() != valid {
			t.Fatalf("%s: IsValid and Evaluate disagree", src)
		}
	}
}

func TestIdempotentAndOrdered(t *testing.T) {
	v := mustBuild(t, `{"properties": {"b": {"type": "string"}, "a": {"type": "string"}}, "required": ["z", "y"]}`)
	inst := mustJSON(t, `{"a": 1, "b": 2}`)
	var first []string
	for i := 0; i < 5; i++ {
		var got []string
		for err := range v.IterErrors(inst) {
			got = append(got, err.KeywordLocation+"@"+err.InstanceLocation)
		}
		if i == 0 {
			first = got
			continue
		}
		if len(got) != len(first) {
			t.Fatalf("run %d: %v != %v", i, got, first)
		}
		for j := range got {
			if got[j] != first[j] {
				t.Fatalf("run %d: %v != %v", i, got, first)
			}
		}
	}
	want := []string{"/properties/a/type@/a", "/properties/b/type@/b", "/required@", "/required@"}
	if len(first) != len(want) {
		t.Fatalf("got %v, want %v", first, want)
	}
	for i := range want {
		if first[i] != want[i] {
			t.Fatalf("got %v, want %v", first, want)
		}
	}
}

func TestIterErrors_StopEarly(t *testing.T) {
	v := mustBuild(t, `{"items": {"type": "string"}}`)
	n := 0
	for range v.IterErrors([]any{1, 2, 3, 4}) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2, got %d", n)
	}
	if countErrors(v, []any{1, 2, 3, 4}) != 4 {
		t.Fatalf("expected four errors")
	}
}

func TestValidate_UnsupportedGoType(t *testing.T) {
	v := mustBuild(t, `{}`)
	err := v.Validate(struct{}{})
	var ve *jsonskema.ValidationError
	if !errors.As(err, &ve) || ve.Code != jsonskema.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %v", err)
	}
}

func TestValidatorSharedAcrossGoroutines(t *testing.T) {
	v := mustBuild(t, `{"type": "array", "items": {"$ref": "#"}}`)
	c := v.Clone()
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			done <- c.IsValid([]any{[]any{}, []any{[]any{}}}) && !v.IsValid([]any{1})
		}()
	}
	for i := 0; i < 8; i++ {
		if !<-done {
			t.Fatalf("unexpected result")
		}
	}
}

func TestOneShot(t *testing.T) {
	ctx := context.Background()
	schema := mustJSON(t, `{"minLength": 2}`)
	ok, err := jsonskema.IsValid(ctx, schema, "ab")
	if err != nil || !ok {
		t.Fatalf("IsValid = %v, %v", ok, err)
	}
	if err := jsonskema.Validate(ctx, schema, "a"); err == nil {
		t.Fatalf("expected error")
	}
	seq, err := jsonskema.IterErrors(ctx, schema, "a")
	if err != nil {
		t.Fatalf("IterErrors: %v", err)
	}
	for e := range seq {
		if e.Code != jsonskema.CodeTooShort {
			t.Fatalf("unexpected code %q", e.Code)
		}
	}
	ev, err := jsonskema.Evaluate(ctx, schema, "a")
	if err != nil || ev.Valid() {
		t.Fatalf("Evaluate = %v, %v", ev, err)
	}
	if _, err := jsonskema.ValidatorFor(ctx, map[string]any{"type": 12}); !errors.Is(err, jsonskema.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}
