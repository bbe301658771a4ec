package jsonskema_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/reoring/jsonskema"
)

func TestValidationErrors_Summary(t *testing.T) {
	v := mustBuild(t, `{"required": ["a", "b", "c", "d"]}`)
	err := v.ValidateAll(map[string]any{})
	errs, ok := jsonskema.AsValidationErrors(err)
	if !ok || len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %v", err)
	}
	s := err.Error()
	if !strings.Contains(s, "required at /") || !strings.Contains(s, "(total 4)") {
		t.Fatalf("unexpected summary %q", s)
	}
	if v.ValidateAll(map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}) != nil {
		t.Fatalf("expected nil for a valid instance")
	}
}

func TestAsValidationErrors_Single(t *testing.T) {
	err := mustBuild(t, `{"const": 1}`).Validate(2)
	errs, ok := jsonskema.AsValidationErrors(err)
	if !ok || len(errs) != 1 || errs[0].Code != jsonskema.CodeConst {
		t.Fatalf("unexpected %v", errs)
	}
	if _, ok := jsonskema.AsValidationErrors(errors.New("other")); ok {
		t.Fatalf("plain errors are not validation errors")
	}
}

func TestAnyOfCauses(t *testing.T) {
	err := mustBuild(t, `{"anyOf": [{"type": "string"}, {"type": "boolean"}]}`).Validate(1)
	var ve *jsonskema.ValidationError
	if !errors.As(err, &ve) || ve.Code != jsonskema.CodeAnyOf || len(ve.Causes) != 2 {
		t.Fatalf("unexpected %+v", err)
	}
	if ve.Causes[1].KeywordLocation != "/anyOf/1/type" {
		t.Fatalf("unexpected cause %+v", ve.Causes[1])
	}
}

func TestBuildError_Message(t *testing.T) {
	err := (&jsonskema.BuildError{Kind: jsonskema.ErrResolve, Location: "#/$ref", URL: "http://x/", Err: errors.New("boom")}).Error()
	if err != "resolver failed at #/$ref [http://x/]: boom" {
		t.Fatalf("unexpected message %q", err)
	}
}
