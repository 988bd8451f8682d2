package command

import (
	"testing"

	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema/static"
)

// buildFixture mirrors pkg/pathparser's fixture, extended with the nodes
// spec.md §8 scenarios 2, 4, and 6 exercise: an int8 leaf, a string
// leaf-list declared in a different module, and an identity-ref leaf with
// cross-module derivatives.
func buildFixture() *static.Schema {
	s := static.New("example")
	leafInt8 := &static.Node{Module: "example", Name: "leafInt8", Kind: path.KindLeaf, LeafType: path.LeafType{Kind: path.LTInt8}}
	leaflist := &static.Node{Module: "mod", Name: "leaflist", Kind: path.KindLeafList, LeafType: path.LeafType{Kind: path.LTString}}
	foodBase := path.NodeID{Prefix: "mod", Local: "food"}
	foodIdentRef := &static.Node{
		Module: "mod", Name: "foodIdentRef", Kind: path.KindLeaf,
		LeafType: path.LeafType{Kind: path.LTIdentityRef, Base: foodBase},
	}
	contInList := &static.Node{Module: "example", Name: "contInList", Kind: path.KindPresenceContainer}
	list := &static.Node{
		Module: "example", Name: "list", Kind: path.KindList,
		ListKeys: []string{"number"},
		Children: []*static.Node{
			{Module: "example", Name: "number", Kind: path.KindLeaf, LeafType: path.LeafType{Kind: path.LTInt32}},
			contInList,
		},
	}
	s.Root.Children = []*static.Node{leafInt8, leaflist, foodIdentRef, list}
	s.IdentityDefs = []static.Identity{
		{ID: path.NodeID{Prefix: "mod", Local: "pizza"}, Base: foodBase},
		{ID: path.NodeID{Prefix: "mod", Local: "spaghetti"}, Base: foodBase},
		{ID: path.NodeID{Prefix: "pizza-module", Local: "hawaii"}, Base: path.NodeID{Prefix: "mod", Local: "pizza"}},
	}
	return s
}

func newCtx(s *static.Schema) *parsectx.Context {
	return parsectx.New(s, nil, path.NewAbsolute())
}

func TestDispatchCd(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, "cd example:list[number=1]")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	cd, isCd := cmd.(*path.CdCmd)
	if !isCd {
		t.Fatalf("Dispatch returned %T, want *path.CdCmd", cmd)
	}
	if len(cd.Path.Segments) != 1 || cd.Path.Segments[0].Kind != path.SegListElement {
		t.Errorf("CdCmd.Path = %+v, want a single list-element segment", cd.Path)
	}
}

// Scenario 2: `set example:leafInt8 -129` must fail with leaf-type-mismatch.
func TestDispatchSetLeafInt8OutOfRange(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "set example:leafInt8 -129")
	if ok {
		t.Fatalf("Dispatch succeeded unexpectedly for an out-of-range int8")
	}
	rec := ctx.Error()
	if rec == nil {
		t.Fatalf("expected an ErrorRecord")
	}
	wantPrefix := "leaf-type-mismatch:"
	if len(rec.Message) < len(wantPrefix) || rec.Message[:len(wantPrefix)] != wantPrefix {
		t.Errorf("message = %q, want prefix %q", rec.Message, wantPrefix)
	}
}

func TestDispatchSetLeafInt8InRange(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, "set example:leafInt8 100")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	set, isSet := cmd.(*path.SetCmd)
	if !isSet || set.Value.Int != 100 {
		t.Errorf("SetCmd = %+v, want Value.Int=100", cmd)
	}
}

// Scenario 4: `move mod:leaflist['def'] after 'abc'`.
func TestDispatchMoveLeafListElement(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, `move mod:leaflist['def'] after 'abc'`)
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	mv, isMove := cmd.(*path.MoveCmd)
	if !isMove {
		t.Fatalf("Dispatch returned %T, want *path.MoveCmd", cmd)
	}
	last, _ := mv.Source.Last()
	if last.Kind != path.SegLeafListElement || last.Value.Str != "def" {
		t.Errorf("Source = %+v, want leaf-list-element(def)", mv.Source)
	}
	if mv.Destination.Kind != path.MoveAfter || mv.Destination.Key == nil || mv.Destination.Key.Str != "abc" {
		t.Errorf("Destination = %+v, want after('abc')", mv.Destination)
	}
}

func TestDispatchMoveBeginEnd(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, "move example:list[number=1] begin")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	mv := cmd.(*path.MoveCmd)
	if mv.Destination.Kind != path.MoveBegin {
		t.Errorf("Destination.Kind = %v, want MoveBegin", mv.Destination.Kind)
	}
}

// §8 invariant 7: copying a datastore onto itself is always rejected.
func TestDispatchCopySameDatastoreRejected(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "copy running running")
	if ok {
		t.Fatalf("Dispatch succeeded unexpectedly for copy running running")
	}
	rec := ctx.Error()
	if rec == nil || len(rec.Message) < len("copy-same-datastore") || rec.Message[:len("copy-same-datastore")] != "copy-same-datastore" {
		t.Errorf("message = %v, want copy-same-datastore prefix", rec)
	}
}

func TestDispatchCopyDifferentDatastores(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, "copy running startup")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	cp := cmd.(*path.CopyCmd)
	if cp.Source != path.DSRunning || cp.Destination != path.DSStartup {
		t.Errorf("CopyCmd = %+v, want running -> startup", cp)
	}
}

// Scenario 6: completion on `set mod:foodIdentRef ` enumerates the base
// identity plus every transitive derivative across modules.
func TestCompletionIdentityRefDerivatives(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	ctx.SetCompleting(true)
	Dispatch(ctx, "set mod:foodIdentRef ")

	var values []string
	for _, e := range ctx.Suggestions() {
		values = append(values, e.Value)
	}
	want := map[string]bool{"mod:food": true, "mod:pizza": true, "mod:spaghetti": true, "pizza-module:hawaii": true}
	if len(values) != len(want) {
		t.Fatalf("suggestions = %v, want %d entries matching %v", values, len(want), want)
	}
	for _, v := range values {
		if !want[v] {
			t.Errorf("unexpected suggestion %q", v)
		}
	}
}

func TestDispatchIdentityRefRejectsUnrelated(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "set mod:foodIdentRef mod:not-a-food")
	if ok {
		t.Fatalf("Dispatch succeeded unexpectedly for an unrelated identity")
	}
	rec := ctx.Error()
	wantPrefix := "identity-not-derived:"
	if rec == nil || len(rec.Message) < len(wantPrefix) || rec.Message[:len(wantPrefix)] != wantPrefix {
		t.Errorf("message = %v, want prefix %q", rec, wantPrefix)
	}
}

func TestDispatchCreatePresenceContainer(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	cmd, ok := Dispatch(ctx, "create example:list[number=1]/contInList")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	if _, isCreate := cmd.(*path.CreateCmd); !isCreate {
		t.Errorf("Dispatch returned %T, want *path.CreateCmd", cmd)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "frobnicate example:a")
	if ok {
		t.Fatalf("Dispatch succeeded unexpectedly for an unknown command keyword")
	}
	rec := ctx.Error()
	if rec == nil || len(rec.Message) < len("invalid-command") || rec.Message[:len("invalid-command")] != "invalid-command" {
		t.Errorf("message = %v, want invalid-command prefix", rec)
	}
}

func TestDispatchQuitAndHelp(t *testing.T) {
	s := buildFixture()
	ctx := newCtx(s)
	if cmd, ok := Dispatch(ctx, "quit"); !ok {
		t.Fatalf("Dispatch(quit) failed: %v", ctx.Error())
	} else if _, isQuit := cmd.(*path.QuitCmd); !isQuit {
		t.Errorf("Dispatch(quit) = %T, want *path.QuitCmd", cmd)
	}

	ctx = newCtx(s)
	cmd, ok := Dispatch(ctx, "help set")
	if !ok {
		t.Fatalf("Dispatch(help set) failed: %v", ctx.Error())
	}
	help, isHelp := cmd.(*path.HelpCmd)
	if !isHelp || help.Command != "set" {
		t.Errorf("Dispatch(help set) = %+v, want HelpCmd{Command: \"set\"}", cmd)
	}
}

// buildOpStateFixture extends buildFixture with a config-false leaf, for §6
// writable-ops tests against delete.
func buildOpStateFixture() *static.Schema {
	s := buildFixture()
	s.Root.Children = append(s.Root.Children, &static.Node{
		Module: "example", Name: "reading", Kind: path.KindLeaf,
		LeafType: path.LeafType{Kind: path.LTInt32}, Config: static.ConfigFalse,
	})
	return s
}

// §6: delete bypasses pathparser's tail-requirement mechanism for its own
// kind check, so it needs its own writable-ops/IsConfig guard.
func TestDispatchDeleteRejectsOperationalStateWhenWritableOpsOff(t *testing.T) {
	s := buildOpStateFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "delete example:reading")
	if ok {
		t.Fatalf("Dispatch succeeded unexpectedly deleting an operational-state leaf")
	}
	rec := ctx.Error()
	wantPrefix := "wrong-node-kind:"
	if rec == nil || len(rec.Message) < len(wantPrefix) || rec.Message[:len(wantPrefix)] != wantPrefix {
		t.Errorf("message = %v, want prefix %q", rec, wantPrefix)
	}
}

func TestDispatchDeleteAcceptsOperationalStateWhenWritableOpsOn(t *testing.T) {
	s := buildOpStateFixture()
	ctx := newCtx(s)
	ctx.SetWritableOps(true)
	cmd, ok := Dispatch(ctx, "delete example:reading")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
	if _, isDelete := cmd.(*path.DeleteCmd); !isDelete {
		t.Errorf("Dispatch returned %T, want *path.DeleteCmd", cmd)
	}
}

func TestDispatchDeleteAcceptsConfigLeafRegardlessOfWritableOps(t *testing.T) {
	s := buildOpStateFixture()
	ctx := newCtx(s)
	_, ok := Dispatch(ctx, "delete example:leafInt8")
	if !ok {
		t.Fatalf("Dispatch failed: %v", ctx.Error())
	}
}
