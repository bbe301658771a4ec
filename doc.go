// Package jsonskema validates JSON values against JSON Schema Draft 4, 6, 7,
// 2019-09 and 2020-12.
//
// A schema is compiled once into an immutable Validator, which can then be
// shared between goroutines:
//
//	v, err := jsonskema.NewBuilder().Build(ctx, schema)
//	if err != nil {
//		return err // *BuildError
//	}
//	if err := v.Validate(instance); err != nil {
//		// *ValidationError
//	}
//
// Instances and schemas use the value model of encoding/json decoding into
// any: map[string]any, []any, string, bool, nil and numbers as float64,
// int/int64 or json.Number. ParseJSON and ParseYAML produce it with numbers
// preserved exactly.
//
// Layout:
//   - The root package holds the compiler, the evaluator and the public API.
//   - format/ holds the built-in format checkers.
//   - blocking/ is the same API for callers without a context.
//   - i18n/ renders error messages (English and Japanese).
//   - cmd/jsonskema is the command line tool.
package jsonskema
