package jsonskema

import (
	"fmt"
	"iter"
)

// Validator is a compiled schema. It is immutable and safe for concurrent use;
// Clone is a cheap copy sharing the compiled graph.
type Validator struct {
	g     *graph
	root  nodeID
	draft Draft
	diag  Diag
}

// Draft reports the draft the root schema was compiled with.
func (v *Validator) Draft() Draft { return v.draft }

// Diag returns the non-fatal warnings collected while compiling.
func (v *Validator) Diag() Diag { return v.diag }

// Clone returns a validator sharing the same compiled graph.
func (v *Validator) Clone() *Validator {
	c := *v
	return &c
}

// IsValid reports whether instance is valid. It stops at the first failing
// keyword and builds no error values.
func (v *Validator) IsValid(instance any) bool {
	e := newEvaluator(v.g)
	e.flag = true
	ok, _ := e.evalNode(v.root, instance, nil, nil, nil)
	return ok
}

// Validate returns the first *ValidationError in canonical order, or nil.
func (v *Validator) Validate(instance any) error {
	var first *ValidationError
	e := newEvaluator(v.g)
	e.sink = func(err *ValidationError) bool {
		first = err
		return false
	}
	e.evalNode(v.root, instance, nil, nil, nil)
	if first == nil {
		return nil
	}
	return first
}

// ValidateAll returns every error as ValidationErrors, or nil.
func (v *Validator) ValidateAll(instance any) error {
	var errs ValidationErrors
	for err := range v.IterErrors(instance) {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IterErrors lazily yields every error in canonical order. Each range over the
// sequence evaluates again; stopping early stops the evaluation.
func (v *Validator) IterErrors(instance any) iter.Seq[*ValidationError] {
	return func(yield func(*ValidationError) bool) {
		e := newEvaluator(v.g)
		e.sink = yield
		e.evalNode(v.root, instance, nil, nil, nil)
	}
}

// Evaluate runs one complete evaluation and keeps its trace for the output
// shapes.
func (v *Validator) Evaluate(instance any) *Evaluation {
	ev := &Evaluation{}
	e := newEvaluator(v.g)
	e.trace = true
	e.sink = func(err *ValidationError) bool {
		ev.errors = append(ev.errors, err)
		return true
	}
	holder := &traceUnit{}
	e.evalNode(v.root, instance, nil, nil, holder)
	ev.root = holder.children[0]
	return ev
}

// Diag carries non-fatal warnings produced during compilation.
type Diag struct{ ws []string }

func (d Diag) HasWarnings() bool  { return len(d.ws) > 0 }
func (d Diag) Warnings() []string { return append([]string(nil), d.ws...) }

func (d *Diag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
