// Package mgmterr formats the caret-with-message error record of §4.9
// with the leading-blank-line, indented layout the teacher's
// common/cli_format.go used for configd's mgmterror records (no bracketed
// path is emitted), reimplemented
// locally since github.com/danos/mgmterror is a monorepo-sibling module of
// the teacher rather than an independently fetchable dependency of this
// module (see DESIGN.md).
package mgmterr

import (
	"fmt"
	"strings"

	"github.com/danos/ncli/pkg/parsectx"
)

// Kind tags the error kinds enumerated in §7.
type Kind string

const (
	InvalidCommand     Kind = "invalid-command"
	UnknownNode        Kind = "unknown-node"
	WrongNodeKind      Kind = "wrong-node-kind"
	ListKeyMissing     Kind = "list-key-missing"
	ListKeyDuplicate   Kind = "list-key-duplicate"
	ListKeyUnknown     Kind = "list-key-unknown"
	LeafTypeMismatch   Kind = "leaf-type-mismatch"
	IdentityNotDerived Kind = "identity-not-derived"
	CopySameDatastore  Kind = "copy-same-datastore"
	TooManyArguments   Kind = "too-many-arguments"
)

// Classify maps an ErrorRecord's message onto one of §7's error kinds by
// its leading "<kind>: " tag, the convention every parser-side ctx.Fail
// call in this module follows; a message that is the bare kind (as New
// builds for an empty detail) classifies too. Unrecognized messages classify as
// InvalidCommand, the closest "something about this line was wrong"
// catch-all.
func Classify(rec *parsectx.ErrorRecord) Kind {
	if rec == nil {
		return ""
	}
	for _, k := range []Kind{
		InvalidCommand, UnknownNode, WrongNodeKind, ListKeyMissing,
		ListKeyDuplicate, ListKeyUnknown, LeafTypeMismatch,
		IdentityNotDerived, CopySameDatastore, TooManyArguments,
	} {
		if rec.Message == string(k) || strings.HasPrefix(rec.Message, string(k)+":") {
			return k
		}
	}
	return InvalidCommand
}

// Format renders an ErrorRecord the way the teacher's cli_format.go
// renders a configd mgmterror: a caret line pointing at the offset,
// followed by a blank line and the message, consistent indentation
// throughout so the CLI's error echo reads the same regardless of which
// of §7's kinds fired.
func Format(line string, rec *parsectx.ErrorRecord) string {
	if rec == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(line)
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat(" ", rec.Offset))
	b.WriteString("^\n\n  ")
	b.WriteString(strings.ReplaceAll(rec.Message, "\n", "\n  "))
	b.WriteString("\n")
	return b.String()
}

// New constructs an ErrorRecord with a kind-tagged message, the
// convention every ctx.Fail call elsewhere in this module follows so
// Classify can recover the kind later.
func New(kind Kind, offset int, detail string) *parsectx.ErrorRecord {
	msg := string(kind)
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", kind, detail)
	}
	return &parsectx.ErrorRecord{Message: msg, Offset: offset}
}
