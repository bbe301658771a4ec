package jsonskema

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fetcher is how a compilation obtains external documents. The blocking and
// the context-aware build differ only here; the compiler core is shared.
// Results, failures included, are cached per URL so a resolver sees each URL at
// most once per compilation.
type fetcher interface {
	fetch(url string) (any, error)
	// prefetch is a hint listing URLs the compilation is likely to need.
	prefetch(urls []string)
}

type fetchResult struct {
	doc any
	err error
}

// syncFetcher calls a blocking Resolver on the compiling goroutine.
type syncFetcher struct {
	ctx   context.Context // optional; checked between calls
	r     Resolver
	cache map[string]fetchResult
}

func newSyncFetcher(ctx context.Context, r Resolver) *syncFetcher {
	return &syncFetcher{ctx: ctx, r: r, cache: map[string]fetchResult{}}
}

func (f *syncFetcher) fetch(url string) (any, error) {
	if res, ok := f.cache[url]; ok {
		return res.doc, res.err
	}
	if f.ctx != nil {
		if err := f.ctx.Err(); err != nil {
			return nil, err
		}
	}
	doc, err := f.r.Resolve(url)
	f.cache[url] = fetchResult{doc: doc, err: err}
	return doc, err
}

func (f *syncFetcher) prefetch([]string) {}

// prefetchLimit bounds concurrent resolver calls of one compilation.
const prefetchLimit = 8

// asyncFetcher resolves the references of each newly indexed document in
// parallel. Goroutines only write their own result slot; the cache is updated
// on the compiling goroutine after Wait.
type asyncFetcher struct {
	ctx   context.Context
	r     ContextResolver
	cache map[string]fetchResult
}

func newAsyncFetcher(ctx context.Context, r ContextResolver) *asyncFetcher {
	return &asyncFetcher{ctx: ctx, r: r, cache: map[string]fetchResult{}}
}

func (f *asyncFetcher) fetch(url string) (any, error) {
	if res, ok := f.cache[url]; ok {
		return res.doc, res.err
	}
	if err := f.ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := f.r.ResolveContext(f.ctx, url)
	f.cache[url] = fetchResult{doc: doc, err: err}
	return doc, err
}

func (f *asyncFetcher) prefetch(urls []string) {
	todo := make([]string, 0, len(urls))
	seen := make(map[string]bool, len(urls))
	for _, u := range urls {
		if _, cached := f.cache[u]; cached || seen[u] {
			continue
		}
		seen[u] = true
		todo = append(todo, u)
	}
	if len(todo) == 0 || f.ctx.Err() != nil {
		return
	}
	results := make([]fetchResult, len(todo))
	var g errgroup.Group
	g.SetLimit(prefetchLimit)
	for i, u := range todo {
		g.Go(func() error {
			doc, err := f.r.ResolveContext(f.ctx, u)
			results[i] = fetchResult{doc: doc, err: err}
			// Failures surface only if the compilation needs the document.
			return nil
		})
	}
	_ = g.Wait()
	for i, u := range todo {
		f.cache[u] = results[i]
	}
}
