package jsonskema

// Keyword is a caller-supplied keyword compiled once per occurrence in a schema.
// Implementations must be safe for concurrent use because validators are shared.
type Keyword interface {
	IsValid(instance any) bool
}

// KeywordResult is the outcome of an EvaluatingKeyword.
type KeywordResult struct {
	Valid bool
	// Message explains a failure; empty uses the default message.
	Message string
	// Annotation is reported in evaluation output when Valid.
	Annotation any
}

// EvaluatingKeyword is an optional richer form of Keyword. When implemented,
// Evaluate is used instead of IsValid.
type EvaluatingKeyword interface {
	Keyword
	Evaluate(instance any) KeywordResult
}

// KeywordFactory builds a Keyword from the raw value found under the keyword's
// name. An error fails the build with ErrKeywordFactory. Factories used with
// BuildBlocking must not block on I/O.
type KeywordFactory func(value any) (Keyword, error)

// KeywordFunc adapts a function to Keyword.
type KeywordFunc func(instance any) bool

func (f KeywordFunc) IsValid(instance any) bool { return f(instance) }

// Format validates string instances for one "format" name.
type Format interface {
	IsValid(value string) bool
}

// FormatFunc adapts a function to Format.
type FormatFunc func(value string) bool

func (f FormatFunc) IsValid(value string) bool { return f(value) }
