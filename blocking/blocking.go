// Package blocking is the jsonskema API for callers that cannot suspend on
// I/O. Its builder only accepts a blocking Resolver, so a resolver that needs a
// context is rejected when the program is compiled.
package blocking

import (
	"iter"

	"github.com/reoring/jsonskema"
)

// Builder mirrors jsonskema.Builder without ContextResolver.
type Builder struct {
	b *jsonskema.Builder
}

// NewBuilder returns a builder with autodetected draft and no external references.
func NewBuilder() *Builder { return &Builder{b: jsonskema.NewBuilder()} }

// Draft forces the draft of the root document.
func (b *Builder) Draft(d jsonskema.Draft) *Builder {
	b.b.Draft(d)
	return b
}

// Resolver sets the resolver for external references.
func (b *Builder) Resolver(r jsonskema.Resolver) *Builder {
	b.b.Resolver(r)
	return b
}

// BaseURI sets the URI of the root document.
func (b *Builder) BaseURI(uri string) *Builder {
	b.b.BaseURI(uri)
	return b
}

// Format registers a format that overrides a built-in of the same name.
func (b *Builder) Format(name string, f jsonskema.Format) *Builder {
	b.b.Format(name, f)
	return b
}

// Keyword registers a keyword factory that overrides a built-in of the same name.
func (b *Builder) Keyword(name string, factory jsonskema.KeywordFactory) *Builder {
	b.b.Keyword(name, factory)
	return b
}

// FormatAssertion overrides whether built-in formats assert.
func (b *Builder) FormatAssertion(on bool) *Builder {
	b.b.FormatAssertion(on)
	return b
}

// Build compiles schema on the calling goroutine.
func (b *Builder) Build(schema any) (*jsonskema.Validator, error) {
	return b.b.BuildBlocking(schema)
}

// ValidatorFor compiles schema with default options.
func ValidatorFor(schema any) (*jsonskema.Validator, error) {
	return NewBuilder().Build(schema)
}

// IsValid compiles schema and checks instance against it.
func IsValid(schema, instance any) (bool, error) {
	v, err := ValidatorFor(schema)
	if err != nil {
		return false, err
	}
	return v.IsValid(instance), nil
}

// Validate compiles schema and returns the first validation error.
func Validate(schema, instance any) error {
	v, err := ValidatorFor(schema)
	if err != nil {
		return err
	}
	return v.Validate(instance)
}

// IterErrors compiles schema and returns the lazy error sequence of instance.
func IterErrors(schema, instance any) (iter.Seq[*jsonskema.ValidationError], error) {
	v, err := ValidatorFor(schema)
	if err != nil {
		return nil, err
	}
	return v.IterErrors(instance), nil
}

// Evaluate compiles schema and evaluates instance.
func Evaluate(schema, instance any) (*jsonskema.Evaluation, error) {
	v, err := ValidatorFor(schema)
	if err != nil {
		return nil, err
	}
	return v.Evaluate(instance), nil
}
