package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reoring/jsonskema"
	"github.com/reoring/jsonskema/middleware"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	v, err := jsonskema.NewBuilder().Build(context.Background(), map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inst, found := middleware.InstanceFromContext(r.Context())
		if !found {
			t.Fatalf("instance missing from context")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(inst.(map[string]any)["name"].(string)))
	})
	return middleware.ValidateJSON(v)(ok)
}

func serve(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func TestValidateJSON_OK(t *testing.T) {
	rec := serve(newHandler(t), `{"name": "alice"}`)
	if rec.Code != http.StatusOK || rec.Body.String() != "alice" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}

func TestValidateJSON_Invalid(t *testing.T) {
	rec := serve(newHandler(t), `{"name": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"instanceLocation":"/name"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestValidateJSON_DuplicateKey(t *testing.T) {
	rec := serve(newHandler(t), `{"name": "a", "name": "b"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "error") {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}
