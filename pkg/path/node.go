// Package path implements the tagged-sum path and AST model: schema node
// identifiers, leaf types and values, path segments, paths, and the
// top-level command AST. Nothing here consults a schema or a datastore —
// that happens in pkg/pathparser and pkg/leafvalue.
package path

import "strings"

// NodeID names a schema node, optionally qualified by a module prefix.
// Two NodeIDs naming the same node under different prefix conventions
// compare equal once canonicalized against the same top-level module,
// via Canonical.
type NodeID struct {
	Prefix string
	Local  string
}

// Canonical resolves an omitted prefix against topModule, so IDs from two
// different rendering policies compare equal.
func (n NodeID) Canonical(topModule string) NodeID {
	if n.Prefix == "" {
		return NodeID{Prefix: topModule, Local: n.Local}
	}
	return n
}

func (n NodeID) Equal(other NodeID, topModule string) bool {
	return n.Canonical(topModule) == other.Canonical(topModule)
}

func (n NodeID) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// SchemaKind tags the variants of a schema node.
type SchemaKind int

const (
	KindContainer SchemaKind = iota
	KindPresenceContainer
	KindLeaf
	KindLeafList
	KindList
	KindRPC
	KindAction
	KindChoice
	KindCase
)

func (k SchemaKind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindPresenceContainer:
		return "presence-container"
	case KindLeaf:
		return "leaf"
	case KindLeafList:
		return "leaf-list"
	case KindList:
		return "list"
	case KindRPC:
		return "rpc"
	case KindAction:
		return "action"
	case KindChoice:
		return "choice"
	case KindCase:
		return "case"
	default:
		return "unknown"
	}
}

// Navigable reports whether a kind is ever a step in a data or schema
// path; choice/case are structural only and never appear as segments.
func (k SchemaKind) Navigable() bool {
	return k != KindChoice && k != KindCase
}

// IsIdentifier reports whether s is a valid `identifier` per the lexical
// grammar (§4.3): letter-or-underscore, then letters/digits/_/-/.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// ParseNodeID splits "module:name" into a NodeID; if there's no colon,
// Prefix is left empty (the current module rule applies at resolution
// time, not here).
func ParseNodeID(s string) NodeID {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return NodeID{Prefix: s[:i], Local: s[i+1:]}
	}
	return NodeID{Local: s}
}
