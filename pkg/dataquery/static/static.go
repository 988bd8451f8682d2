// Package static implements a hand-built, in-memory dataquery.Facade test
// double, grounded the same way pkg/schema/static stands in for a live
// schema back-end: so the grammar's own tests don't need a live datastore.
package static

import (
	"context"

	"github.com/danos/ncli/pkg/dataquery"
	"github.com/danos/ncli/pkg/path"
)

// Facade is an in-memory dataquery.Facade, keyed by a list's canonical
// schema path (rendered with PrefixAlways so module boundaries are never
// ambiguous across fixtures built with different TopModule values).
type Facade struct {
	instances map[string][]path.KeyInstance
}

var _ dataquery.Facade = (*Facade)(nil)

func New() *Facade {
	return &Facade{instances: map[string][]path.KeyInstance{}}
}

// Set registers the existing instances of the list at p, replacing any
// previously registered set.
func (f *Facade) Set(p path.Path, instances []path.KeyInstance) {
	f.instances[path.Render(p, path.PrefixAlways, "")] = instances
}

func (f *Facade) ListInstances(_ context.Context, p path.Path) ([]path.KeyInstance, error) {
	return f.instances[path.Render(p, path.PrefixAlways, "")], nil
}
