// Package middleware validates JSON request bodies against a compiled
// jsonskema.Validator. The framework adapters live in the gin and echo
// submodules; this package holds the shared pieces and a net/http adapter.
package middleware

import (
	"context"
	"io"
	"net/http"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonskema"
)

type ctxKeyInstance struct{}

// ContextWithInstance attaches a validated instance to the context.
func ContextWithInstance(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyInstance{}, v)
}

// InstanceFromContext retrieves the instance stored by ContextWithInstance.
func InstanceFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyInstance{})
	return v, v != nil
}

// DefaultLoadOpt returns a recommended default for HTTP JSON boundaries.
// - Duplicate keys are errors
// - Nesting is bounded
func DefaultLoadOpt() jsonskema.LoadOpt {
	return jsonskema.LoadOpt{RejectDuplicateKeys: true, MaxDepth: 128}
}

// ErrorPayload shapes a failed evaluation for JSON responses.
func ErrorPayload(ev *jsonskema.Evaluation) map[string]any {
	return map[string]any{"valid": false, "errors": ev.Basic().Errors}
}

// Decode reads one JSON document from body and validates it. A malformed body
// returns an error; an invalid instance returns the failed evaluation.
func Decode(v *jsonskema.Validator, body io.Reader, opt jsonskema.LoadOpt) (any, *jsonskema.Evaluation, error) {
	inst, err := jsonskema.ReadJSON(body, opt)
	if err != nil {
		return nil, nil, err
	}
	if v.IsValid(inst) {
		return inst, nil, nil
	}
	return inst, v.Evaluate(inst), nil
}

// ValidateJSON is a net/http middleware: valid bodies are stored in the request
// context, anything else is answered with 400.
func ValidateJSON(v *jsonskema.Validator, opt ...jsonskema.LoadOpt) func(http.Handler) http.Handler {
	o := DefaultLoadOpt()
	if len(opt) > 0 {
		o = opt[len(opt)-1]
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inst, ev, err := Decode(v, r.Body, o)
			switch {
			case err != nil:
				writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
			case ev != nil:
				writeJSON(w, http.StatusBadRequest, ErrorPayload(ev))
			default:
				next.ServeHTTP(w, r.WithContext(ContextWithInstance(r.Context(), inst)))
			}
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(body)
}
