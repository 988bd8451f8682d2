// Package pathparser implements the stepwise-descent path grammar of
// §4.5: schema paths, data paths, and the command-specific variants that
// layer extra tail constraints on top of the same walk.
package pathparser

import "github.com/danos/ncli/pkg/path"

// Kind selects which of §4.5's path-kind grammars a Parse call runs.
type Kind int

const (
	// KindSchema: segments may only be schema nodes (list, not
	// list-element); optional leading '/' for absolute.
	KindSchema Kind = iota
	// KindData: list-element required when a list appears; trailing '/'
	// allowed only at end.
	KindData
	// KindDataBareListTail: like KindData, but a bare (key-less) list is
	// allowed as the final segment (get, ls).
	KindDataBareListTail
)

// TailRequirement constrains what schema kind the final segment of a
// successfully parsed path must denote; TailAny means no constraint.
type TailRequirement int

const (
	TailAny TailRequirement = iota
	TailContainerOrListElement       // cd
	TailPresenceListOrLeafListElement // create
	TailWritableLeaf                  // set
	TailListInstance                  // move source, a list-element path
	TailLeafListElement                // move source, a leaf-list-element path
	TailPresenceContainer
	TailRPCOrAction
)

// Options configures one Parse call.
type Options struct {
	Kind               Kind
	Tail               TailRequirement
	AllowTrailingSlash bool
	// AllowRPCActions includes rpc/action nodes in the candidate set at
	// every step (only meaningful for RPC/action path variants, which
	// otherwise never descend into one since rpc/action subtrees aren't
	// navigable containers).
	AllowRPCActions bool
	// AllowInput marks the input-allowing variant: `prepare` sets it,
	// `exec` leaves it false. Parse does not read it, so both variants
	// accept the same paths and `exec` does not reject an rpc/action
	// that has input nodes.
	AllowInput bool
}

// SchemaPathOptions is the plain schema-path grammar variant.
func SchemaPathOptions() Options { return Options{Kind: KindSchema} }

// DataPathOptions is the plain data-path grammar variant, with the given
// tail requirement.
func DataPathOptions(tail TailRequirement) Options {
	return Options{Kind: KindData, Tail: tail}
}

func describeTail(tail TailRequirement) string {
	switch tail {
	case TailContainerOrListElement:
		return "container or list element"
	case TailPresenceListOrLeafListElement:
		return "presence container, list element, or leaf-list element"
	case TailWritableLeaf:
		return "writable leaf"
	case TailListInstance:
		return "list element"
	case TailLeafListElement:
		return "leaf-list element"
	case TailPresenceContainer:
		return "presence container"
	case TailRPCOrAction:
		return "rpc or action"
	default:
		return "node"
	}
}

func kindSatisfiesTail(k path.SchemaKind, segKind path.SegmentKind, tail TailRequirement) bool {
	switch tail {
	case TailAny:
		return true
	case TailContainerOrListElement:
		return k == path.KindContainer || k == path.KindPresenceContainer ||
			(k == path.KindList && segKind == path.SegListElement)
	case TailPresenceListOrLeafListElement:
		return k == path.KindPresenceContainer ||
			(k == path.KindList && segKind == path.SegListElement) ||
			(k == path.KindLeafList && segKind == path.SegLeafListElement)
	case TailWritableLeaf:
		return k == path.KindLeaf
	case TailListInstance:
		return k == path.KindList && segKind == path.SegListElement
	case TailLeafListElement:
		return k == path.KindLeafList && segKind == path.SegLeafListElement
	case TailPresenceContainer:
		return k == path.KindPresenceContainer
	case TailRPCOrAction:
		return k == path.KindRPC || k == path.KindAction
	default:
		return false
	}
}
