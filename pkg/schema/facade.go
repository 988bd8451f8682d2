// Package schema declares the read-only facade the parser, completer, and
// leaf-value engine consult (§4.1). Concrete back-ends (schema/goyang,
// schema/static) implement Facade; the core never constructs or owns a
// schema, only borrows a reference for the duration of one parse, per
// Design Notes §9.
package schema

import (
	"errors"
	"fmt"

	"github.com/danos/ncli/pkg/path"
)

// ErrUnknownNode is returned whenever a caller supplies a schema path
// segment that does not resolve under the current location.
var ErrUnknownNode = errors.New("unknown-node")

// UnknownNodeError carries the offending path for diagnostics.
type UnknownNodeError struct {
	Path path.Path
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown-node: %s", path.Render(e.Path, path.PrefixAlways, ""))
}

func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }

// ChildInfo describes one candidate child node of a schema location, as
// returned by Facade.Children — enough for the path parser to build a
// completion entry (§4.5 step 1) without a second round trip.
type ChildInfo struct {
	Module string
	Name   string
	Kind   path.SchemaKind
	// ListKeys is populated when Kind == KindList, in declared order.
	ListKeys []string
}

// NodeDoc is the descriptive metadata returned by Describe, consumed by
// the `describe` command and by completion help text.
type NodeDoc struct {
	Description string
	Units       string
	Default     string
	Status      string
}

// Facade is the schema query surface consumed by pkg/pathparser,
// pkg/leafvalue, and pkg/complete. All operations are pure and read-only;
// implementations must be safe to call repeatedly within one parse and
// must treat their own state as an immutable snapshot for that duration
// (§5 Concurrency & Resource Model).
type Facade interface {
	// Kind reports the schema kind of the node named by p (a schema
	// path). Returns ErrUnknownNode if p does not resolve.
	Kind(p path.Path) (path.SchemaKind, error)

	// Children enumerates the children of the node at p (or the root, if
	// p is empty). When recursive is true, descendants below the
	// immediate children are also included (used by `ls --recursive`).
	// Results already honor enabled/disabled features (§4.1) and should
	// not be filtered again by the caller.
	Children(p path.Path, recursive bool) ([]ChildInfo, error)

	// ListKeys returns the declared key names, in order, for the list
	// node at p.
	ListKeys(p path.Path) ([]string, error)

	// IsListKey reports whether name is a declared key of the list at p.
	IsListKey(p path.Path, name string) bool

	// LeafType resolves the leaf type at p through any typedefs (but not
	// through leaf-refs — callers that need the terminal type call
	// LeafType.Terminal() on the result themselves, or ResolveLeafRef).
	LeafType(p path.Path) (path.LeafType, error)

	// ResolveLeafRef returns the canonical absolute schema path a
	// leaf-ref at p points to.
	ResolveLeafRef(p path.Path) (path.Path, error)

	// Describe returns documentation metadata for the node at p.
	Describe(p path.Path) (NodeDoc, error)

	// IsIdentityDerived reports whether candidate is (transitively)
	// derived from base, or equal to it.
	IsIdentityDerived(base, candidate path.NodeID) bool

	// Identities enumerates the identities assignable to the
	// identity-ref leaf at p (the base identity plus every derivative),
	// with the prefix dropped from identities of the schema's TopModule
	// when prefixWhenNeeded is true.
	Identities(p path.Path, prefixWhenNeeded bool) ([]path.NodeID, error)

	// FeatureEnabled reports whether the named YANG feature is active;
	// disabled features hide their guarded nodes from Children and
	// narrow Identities/enum membership (§4.1).
	FeatureEnabled(name string) bool

	// IsConfig reports whether the node at p is configuration data (YANG
	// `config true`, the default) as opposed to operational state
	// (`config false`). A node with no explicit config statement
	// inherits its nearest ancestor's setting. Consulted by the
	// `writable-ops` setting (§6) to decide whether an operational-state
	// leaf may be targeted by `set`/`create`/`delete`.
	IsConfig(p path.Path) (bool, error)

	// TopModule is the module name used to resolve an omitted prefix on
	// the first segment of an absolute path (§6).
	TopModule() string
}
