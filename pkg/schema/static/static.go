// Package static implements a hand-built, table-driven schema.Facade for
// unit tests, grounded on the teacher's session/sessiontest package,
// which exists purely so session's tests don't need a live configd.
package static

import (
	"sort"

	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema"
)

// ConfigState mirrors YANG's three-valued config statement: Unset defers
// to the nearest ancestor that does set it, true at the root by default.
type ConfigState int

const (
	ConfigUnset ConfigState = iota
	ConfigTrue
	ConfigFalse
)

// Node describes one static schema node. Lookups match a child by name
// alone under its parent; Module is reported but not consulted.
type Node struct {
	Module string
	Name   string
	Kind   path.SchemaKind

	ListKeys []string // KindList only, declared order
	LeafType path.LeafType
	Doc      schema.NodeDoc

	// Config mirrors YANG's config statement: Unset inherits the
	// parent's setting (true at the root, matching YANG's own default).
	Config ConfigState

	Children []*Node

	// Identities are not modeled per node: Schema.IdentityDefs holds one
	// global identity graph, mirroring YANG's module-global identity
	// namespace.
}

// Identity describes one derived identity in the global identity graph.
type Identity struct {
	ID   path.NodeID
	Base path.NodeID // zero value if this is a base identity itself
}

// Schema is a static, in-memory schema.Facade implementation.
type Schema struct {
	Root         *Node
	TopMod       string
	IdentityDefs []Identity
	Features     map[string]bool
}

var _ schema.Facade = (*Schema)(nil)

func New(topModule string) *Schema {
	return &Schema{
		Root:     &Node{Module: topModule, Kind: path.KindContainer},
		TopMod:   topModule,
		Features: map[string]bool{},
	}
}

func (s *Schema) TopModule() string { return s.TopMod }

func (s *Schema) FeatureEnabled(name string) bool { return s.Features[name] }

func (s *Schema) find(p path.Path) (*Node, error) {
	chain, err := s.findChain(p)
	if err != nil {
		return nil, err
	}
	return chain[len(chain)-1], nil
}

// findChain returns every node from the root down to p inclusive, so
// callers that need inherited state (IsConfig) can walk it back up.
func (s *Schema) findChain(p path.Path) ([]*Node, error) {
	cur := s.Root
	chain := []*Node{cur}
	for _, seg := range p.Segments {
		if seg.Kind == path.SegUp {
			continue // schema paths from the walker never carry Up segments
		}
		var next *Node
		for _, c := range cur.Children {
			if c.Name == seg.Name {
				next = c
				break
			}
		}
		if next == nil {
			return nil, &schema.UnknownNodeError{Path: p}
		}
		cur = next
		chain = append(chain, cur)
	}
	return chain, nil
}

func (s *Schema) Kind(p path.Path) (path.SchemaKind, error) {
	n, err := s.find(p)
	if err != nil {
		return 0, err
	}
	return n.Kind, nil
}

func (s *Schema) Children(p path.Path, recursive bool) ([]schema.ChildInfo, error) {
	n, err := s.find(p)
	if err != nil {
		return nil, err
	}
	var out []schema.ChildInfo
	var walk func(node *Node, rec bool)
	walk = func(node *Node, rec bool) {
		for _, c := range node.Children {
			out = append(out, schema.ChildInfo{
				Module:   c.Module,
				Name:     c.Name,
				Kind:     c.Kind,
				ListKeys: append([]string(nil), c.ListKeys...),
			})
			if rec {
				walk(c, rec)
			}
		}
	}
	walk(n, recursive)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Schema) ListKeys(p path.Path) ([]string, error) {
	n, err := s.find(p)
	if err != nil {
		return nil, err
	}
	return n.ListKeys, nil
}

func (s *Schema) IsListKey(p path.Path, name string) bool {
	keys, err := s.ListKeys(p)
	if err != nil {
		return false
	}
	for _, k := range keys {
		if k == name {
			return true
		}
	}
	return false
}

func (s *Schema) LeafType(p path.Path) (path.LeafType, error) {
	n, err := s.find(p)
	if err != nil {
		return path.LeafType{}, err
	}
	return n.LeafType, nil
}

func (s *Schema) ResolveLeafRef(p path.Path) (path.Path, error) {
	n, err := s.find(p)
	if err != nil {
		return path.Path{}, err
	}
	if n.LeafType.Kind != path.LTLeafRef {
		return path.Path{}, &schema.UnknownNodeError{Path: p}
	}
	// TargetXPath is not parsed here: the leaf-ref's own path p is
	// returned unchanged, not the path of its target.
	return p, nil
}

func (s *Schema) Describe(p path.Path) (schema.NodeDoc, error) {
	n, err := s.find(p)
	if err != nil {
		return schema.NodeDoc{}, err
	}
	return n.Doc, nil
}

// IsConfig reports the node at p's effective config state, inheriting
// from the nearest ancestor that sets it explicitly; a root with no
// explicit Config is config true, matching YANG's own default.
func (s *Schema) IsConfig(p path.Path) (bool, error) {
	chain, err := s.findChain(p)
	if err != nil {
		return false, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		switch chain[i].Config {
		case ConfigTrue:
			return true, nil
		case ConfigFalse:
			return false, nil
		}
	}
	return true, nil
}

func (s *Schema) IsIdentityDerived(base, candidate path.NodeID) bool {
	if base == candidate {
		return true
	}
	// Walk the derivation chain breadth-first from candidate up to base.
	visited := map[path.NodeID]bool{}
	queue := []path.NodeID{candidate}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, id := range s.IdentityDefs {
			if id.ID == cur && id.Base != (path.NodeID{}) {
				if id.Base == base {
					return true
				}
				queue = append(queue, id.Base)
			}
		}
	}
	return false
}

func (s *Schema) Identities(p path.Path, prefixWhenNeeded bool) ([]path.NodeID, error) {
	leafType, err := s.LeafType(p)
	if err != nil {
		return nil, err
	}
	base := leafType.Base
	out := []path.NodeID{base}
	for _, id := range s.IdentityDefs {
		if s.IsIdentityDerived(base, id.ID) && id.ID != base {
			out = append(out, id.ID)
		}
	}
	if prefixWhenNeeded {
		for i, id := range out {
			if id.Prefix == s.TopMod {
				out[i] = path.NodeID{Local: id.Local}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}
