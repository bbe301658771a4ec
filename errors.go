package jsonskema

import (
	"errors"
	"fmt"
	"strings"
)

// Validation error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType           = "invalid_type"
	CodeFalseSchema           = "false_schema"
	CodeInvalidEnum           = "invalid_enum"
	CodeConst                 = "const"
	CodeMultipleOf            = "multiple_of"
	CodeTooSmall              = "too_small"
	CodeTooBig                = "too_big"
	CodeTooShort              = "too_short"
	CodeTooLong               = "too_long"
	CodePattern               = "pattern"
	CodeInvalidFormat         = "invalid_format"
	CodeTooFewItems           = "too_few_items"
	CodeTooManyItems          = "too_many_items"
	CodeUniqueItems           = "unique_items"
	CodeContains              = "contains"
	CodeTooFewProperties      = "too_few_properties"
	CodeTooManyProperties     = "too_many_properties"
	CodeRequired              = "required"
	CodeDependentRequired     = "dependent_required"
	CodeUnknownKey            = "unknown_key"
	CodePropertyNames         = "property_names"
	CodeAdditionalItems       = "additional_items"
	CodeUnevaluatedProperties = "unevaluated_properties"
	CodeUnevaluatedItems      = "unevaluated_items"
	CodeAnyOf                 = "any_of"
	CodeOneOf                 = "one_of"
	CodeNot                   = "not"
	// Caller-registered keyword rejected the instance.
	CodeKeyword = "keyword"
)

// ValidationError describes one failure of an instance against one keyword.
type ValidationError struct {
	// InstanceLocation is a JSON Pointer into the instance ("" is the root).
	InstanceLocation string
	// KeywordLocation is the evaluation path through the schema, references
	// included (for example: /properties/a/$ref/minimum).
	KeywordLocation string
	// AbsoluteKeywordLocation is the canonical URI of the failing keyword. Empty
	// when the schema has no base URI.
	AbsoluteKeywordLocation string
	Keyword                 string
	Code                    string // One of the codes listed above.
	Message                 string
	// Params carries structured parameters (e.g., {"min":1, "got":0}) for i18n
	// and observability.
	Params map[string]any
	// Causes holds the branch errors of anyOf/oneOf/not style keywords.
	Causes []*ValidationError
}

func (e *ValidationError) Error() string {
	loc := e.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s at %s: %s", e.Keyword, loc, e.Message)
}

// ValidationErrors is a collection of validation errors that implements error.
type ValidationErrors []*ValidationError

// Error summarizes the first few errors.
func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(errs)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		loc := errs[i].InstanceLocation
		if loc == "" {
			loc = "/"
		}
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", errs[i].Code, loc)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsValidationErrors extracts validation errors from an error using errors.As.
// A single *ValidationError is returned as a one-element collection.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	if err == nil {
		return nil, false
	}
	var errs ValidationErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	var one *ValidationError
	if errors.As(err, &one) {
		return ValidationErrors{one}, true
	}
	return nil, false
}

// Build error kinds. Use errors.Is against a *BuildError to classify it.
var (
	ErrInvalidSchema   = errors.New("invalid schema")
	ErrUnresolvableRef = errors.New("unresolvable reference")
	ErrResolve         = errors.New("resolver failed")
	ErrKeywordFactory  = errors.New("keyword factory failed")
	ErrAsyncResolver   = errors.New("blocking build with a context-only resolver")
)

// BuildError reports why a schema could not be compiled. No validator is
// returned alongside it.
type BuildError struct {
	Kind     error  // One of the Err* kinds above.
	Location string // Schema location (URI with JSON Pointer fragment, or a bare pointer).
	Keyword  string
	URL      string // Set for resolver failures and unresolvable references.
	Msg      string
	Err      error // Underlying cause, if any.
}

func (e *BuildError) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Kind.Error())
	if e.Location != "" {
		fmt.Fprintf(b, " at %s", e.Location)
	}
	if e.Keyword != "" {
		fmt.Fprintf(b, " (%s)", e.Keyword)
	}
	if e.URL != "" {
		fmt.Fprintf(b, " [%s]", e.URL)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *BuildError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
