package jsonskema

import (
	"context"
	"errors"
	"fmt"
)

// Resolver loads external schema documents synchronously. It receives the
// absolute URL of the referenced document without fragment.
type Resolver interface {
	Resolve(url string) (any, error)
}

// ContextResolver loads external schema documents and may suspend on I/O. It
// must honour ctx and be safe for concurrent use: the context-aware build
// fetches independent references in parallel.
type ContextResolver interface {
	ResolveContext(ctx context.Context, url string) (any, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(url string) (any, error)

func (f ResolverFunc) Resolve(url string) (any, error) { return f(url) }

// ContextResolverFunc adapts a function to ContextResolver.
type ContextResolverFunc func(ctx context.Context, url string) (any, error)

func (f ContextResolverFunc) ResolveContext(ctx context.Context, url string) (any, error) {
	return f(ctx, url)
}

// MapResolver serves documents from memory, keyed by URL.
type MapResolver map[string]any

func (m MapResolver) Resolve(url string) (any, error) {
	if doc, ok := m[url]; ok {
		return doc, nil
	}
	return nil, fmt.Errorf("no document for %q", url)
}

// ErrExternalRef is returned by the default resolver.
var ErrExternalRef = errors.New("external references are disabled")

type noResolver struct{}

func (noResolver) Resolve(string) (any, error) { return nil, ErrExternalRef }
