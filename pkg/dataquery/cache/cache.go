// Package cache wraps a dataquery.Facade with a memoizing layer, grounded
// on the teacher's session/sessionmgr.go pattern of guarding a shared
// lookup map with a mutex rather than re-querying on every call. Here the
// cached unit is one ListInstances result per rendered path:
// concurrent completions against the same list within the TTL window
// reuse the one result instead of each dialing the datastore back-end.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/danos/ncli/pkg/dataquery"
	"github.com/danos/ncli/pkg/path"
)

type entry struct {
	mu      sync.Mutex
	expires time.Time
	have    bool
	result  []path.KeyInstance
	err     error
}

// Facade memoizes inner.ListInstances results for ttl per distinct list
// path. A ttl of zero disables caching (every call reaches inner).
type Facade struct {
	inner dataquery.Facade
	ttl   time.Duration

	mu      sync.Mutex
	entries map[string]*entry
}

var _ dataquery.Facade = (*Facade)(nil)

func New(inner dataquery.Facade, ttl time.Duration) *Facade {
	return &Facade{inner: inner, ttl: ttl, entries: map[string]*entry{}}
}

func (f *Facade) ListInstances(ctx context.Context, p path.Path) ([]path.KeyInstance, error) {
	if f.ttl <= 0 {
		return f.inner.ListInstances(ctx, p)
	}

	key := path.Render(p, path.PrefixAlways, "")
	now := time.Now()

	f.mu.Lock()
	e, ok := f.entries[key]
	if !ok || (e.have && now.After(e.expires)) {
		e = &entry{}
		f.entries[key] = e
	}
	f.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.have && now.Before(e.expires) {
		return e.result, e.err
	}
	e.result, e.err = f.inner.ListInstances(ctx, p)
	e.have = true
	e.expires = now.Add(f.ttl)
	return e.result, e.err
}
