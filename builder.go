package jsonskema

import (
	"context"
	"maps"
)

// Builder configures and compiles validators.
//
//	v, err := jsonskema.NewBuilder().
//		Draft(jsonskema.Draft07).
//		Format("even", jsonskema.FormatFunc(isEven)).
//		Build(ctx, schema)
type Builder struct {
	draft           Draft
	resolver        Resolver
	ctxResolver     ContextResolver
	baseURI         string
	keywords        map[string]KeywordFactory
	formats         map[string]Format
	formatAssertion *bool
}

// NewBuilder returns a builder with autodetected draft and a resolver that
// rejects every external reference.
func NewBuilder() *Builder {
	return &Builder{keywords: map[string]KeywordFactory{}, formats: map[string]Format{}}
}

// Draft forces the draft of the root document. Embedded resources and external
// documents declaring "$schema" keep their own draft.
func (b *Builder) Draft(d Draft) *Builder {
	b.draft = d
	return b
}

// Resolver sets the blocking resolver for external references.
func (b *Builder) Resolver(r Resolver) *Builder {
	b.resolver = r
	return b
}

// ContextResolver sets a resolver that may suspend on I/O. Build prefers it
// over Resolver; BuildBlocking refuses to use it.
func (b *Builder) ContextResolver(r ContextResolver) *Builder {
	b.ctxResolver = r
	return b
}

// BaseURI sets the URI of the root document, used to resolve relative
// references and reported in absolute keyword locations.
func (b *Builder) BaseURI(uri string) *Builder {
	b.baseURI = uri
	return b
}

// Format registers a format. It takes precedence over a built-in format of
// the same name and always asserts.
func (b *Builder) Format(name string, f Format) *Builder {
	b.formats[name] = f
	return b
}

// Keyword registers a keyword factory. It takes precedence over a built-in
// keyword of the same name.
func (b *Builder) Keyword(name string, factory KeywordFactory) *Builder {
	b.keywords[name] = factory
	return b
}

// FormatAssertion overrides whether built-in formats assert (the default is
// on for Draft 4/6/7 and off for 2019-09 and 2020-12).
func (b *Builder) FormatAssertion(on bool) *Builder {
	b.formatAssertion = &on
	return b
}

func (b *Builder) options() compileOptions {
	return compileOptions{
		draft:           b.draft,
		baseURI:         b.baseURI,
		keywords:        maps.Clone(b.keywords),
		formats:         maps.Clone(b.formats),
		formatAssertion: b.formatAssertion,
	}
}

// Build compiles schema. External documents are fetched through the
// ContextResolver when one is set (concurrently, honouring ctx), otherwise
// through the Resolver on the calling goroutine.
func (b *Builder) Build(ctx context.Context, schema any) (*Validator, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var f fetcher
	switch {
	case b.ctxResolver != nil:
		f = newAsyncFetcher(ctx, b.ctxResolver)
	case b.resolver != nil:
		f = newSyncFetcher(ctx, b.resolver)
	default:
		f = newSyncFetcher(ctx, noResolver{})
	}
	return compile(schema, b.options(), f)
}

// BuildBlocking compiles schema without suspending. A builder configured only
// with a ContextResolver fails with ErrAsyncResolver.
func (b *Builder) BuildBlocking(schema any) (*Validator, error) {
	r := b.resolver
	if r == nil {
		if b.ctxResolver != nil {
			return nil, &BuildError{Kind: ErrAsyncResolver, Msg: "set a Resolver to build without a context"}
		}
		r = noResolver{}
	}
	return compile(schema, b.options(), newSyncFetcher(nil, r))
}
