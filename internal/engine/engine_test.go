package engine

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecodeAny_KeepsNumbers(t *testing.T) {
	v, err := DecodeAny(NewReader(strings.NewReader(`{"a":[1,2.50,"x",true,null],"b":{}}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	m := v.(map[string]any)
	arr := m["a"].([]any)
	if n, ok := arr[1].(json.Number); !ok || n.String() != "2.50" {
		t.Fatalf("expected json.Number 2.50, got %T %v", arr[1], arr[1])
	}
	if arr[4] != nil {
		t.Fatalf("expected null, got %v", arr[4])
	}
	if _, ok := m["b"].(map[string]any); !ok {
		t.Fatalf("expected nested object")
	}
}

func TestEnforce_DuplicateKey(t *testing.T) {
	src := WrapWithEnforcement(NewReader(strings.NewReader(`{"a":{"b":1,"b":2}}`)), EnforceOptions{RejectDuplicates: true})
	_, err := DecodeAny(src)
	var ie *IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("expected IssueError, got %T %v", err, err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/a/b" {
		t.Fatalf("unexpected issue: %+v", ie)
	}
}

func TestEnforce_DuplicateAllowedWhenDisabled(t *testing.T) {
	src := WrapWithEnforcement(NewReader(strings.NewReader(`{"a":1,"a":2}`)), EnforceOptions{MaxDepth: 4})
	if _, err := DecodeAny(src); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestEnforce_MaxDepth(t *testing.T) {
	src := WrapWithEnforcement(NewReader(strings.NewReader(`[[[1]]]`)), EnforceOptions{MaxDepth: 2})
	_, err := DecodeAny(src)
	var ie *IssueError
	if !errors.As(err, &ie) || ie.Code != "max_depth" {
		t.Fatalf("expected max_depth issue, got %v", err)
	}
}

func TestDecodeAny_TrailingData(t *testing.T) {
	_, err := DecodeAny(NewReader(strings.NewReader(`{} {}`)))
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}
