package jsonskema

import (
	"context"
	"iter"
)

// ValidatorFor compiles schema with default options.
func ValidatorFor(ctx context.Context, schema any) (*Validator, error) {
	return NewBuilder().Build(ctx, schema)
}

// IsValid compiles schema and checks instance against it.
func IsValid(ctx context.Context, schema, instance any) (bool, error) {
	v, err := ValidatorFor(ctx, schema)
	if err != nil {
		return false, err
	}
	return v.IsValid(instance), nil
}

// Validate compiles schema and returns the first validation error. A *BuildError
// is returned when the schema does not compile.
func Validate(ctx context.Context, schema, instance any) error {
	v, err := ValidatorFor(ctx, schema)
	if err != nil {
		return err
	}
	return v.Validate(instance)
}

// IterErrors compiles schema and returns the lazy error sequence of instance.
// The sequence keeps the compiled validator alive.
func IterErrors(ctx context.Context, schema, instance any) (iter.Seq[*ValidationError], error) {
	v, err := ValidatorFor(ctx, schema)
	if err != nil {
		return nil, err
	}
	return v.IterErrors(instance), nil
}

// Evaluate compiles schema and evaluates instance.
func Evaluate(ctx context.Context, schema, instance any) (*Evaluation, error) {
	v, err := ValidatorFor(ctx, schema)
	if err != nil {
		return nil, err
	}
	return v.Evaluate(instance), nil
}
