package category

import (
	"context"
	"sync"
)

// FetchFunc loads the category catalog from the persistence layer.
type FetchFunc func(ctx context.Context) ([]Ref, error)

// Loader guards the session-scoped catalog load: the fetch runs at most once
// per form session, and duplicate triggers (including concurrent ones)
// collapse into the first request's result. There is no retry; a failed load
// stays failed for the rest of the session.
type Loader struct {
	fetch FetchFunc

	mu        sync.Mutex
	requested bool
	catalog   []Ref
	err       error
}

// NewLoader wraps fetch in a single-shot session loader.
func NewLoader(fetch FetchFunc) *Loader {
	return &Loader{fetch: fetch}
}

// Load returns the session catalog, fetching it on first use.
func (l *Loader) Load(ctx context.Context) ([]Ref, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.requested {
		return l.catalog, l.err
	}
	l.requested = true
	l.catalog, l.err = l.fetch(ctx)
	return l.catalog, l.err
}

// Requested reports whether the session load has already been triggered.
func (l *Loader) Requested() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.requested
}
