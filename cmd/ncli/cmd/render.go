package cmd

import (
	"fmt"
	"strings"

	"github.com/danos/ncli/internal/config"
	"github.com/danos/ncli/pkg/path"
)

// describeCommand renders a parsed AST back to text for the REPL/`run`
// echo, the way the teacher's runfns.go printed the RPC it was about to
// issue before dispatching it to configd — execution itself stays out of
// scope (§1 Non-goals), so this is the command's full user-visible
// effect here.
type describeVisitor struct {
	topModule string
	out       string
}

func describeCommand(topModule string, c path.Command) string {
	v := &describeVisitor{topModule: topModule}
	c.Accept(v)
	return v.out
}

func renderPath(topModule string, p path.Path) string {
	return path.Render(p, prefixPolicy(), topModule)
}

// prefixPolicy maps the --prefixes setting onto path.PrefixPolicy.
func prefixPolicy() path.PrefixPolicy {
	if sess != nil && sess.cfg != nil && sess.cfg.Prefixes == config.PrefixAlways {
		return path.PrefixAlways
	}
	return path.PrefixWhenNeeded
}

func (v *describeVisitor) VisitSet(c *path.SetCmd) {
	v.out = fmt.Sprintf("set %s = %s", renderPath(v.topModule, c.Path), path.RenderLeafValue(c.Value))
}
func (v *describeVisitor) VisitCd(c *path.CdCmd) {
	v.out = fmt.Sprintf("cd %s", renderPath(v.topModule, c.Path))
}
func (v *describeVisitor) VisitCreate(c *path.CreateCmd) {
	v.out = fmt.Sprintf("create %s", renderPath(v.topModule, c.Path))
}
func (v *describeVisitor) VisitDelete(c *path.DeleteCmd) {
	v.out = fmt.Sprintf("delete %s", renderPath(v.topModule, c.Path))
}
func (v *describeVisitor) VisitLs(c *path.LsCmd) {
	switch {
	case c.Path != nil:
		v.out = fmt.Sprintf("ls %s", renderPath(v.topModule, *c.Path))
	case c.Module != "":
		v.out = fmt.Sprintf("ls %s:*", c.Module)
	default:
		v.out = "ls"
	}
	if c.Options.Recursive {
		v.out += " --recursive"
	}
}
func (v *describeVisitor) VisitGet(c *path.GetCmd) {
	var b strings.Builder
	b.WriteString("get")
	if c.Datastore != nil {
		fmt.Fprintf(&b, " %s", c.Datastore)
	}
	if c.Path != nil {
		fmt.Fprintf(&b, " %s", renderPath(v.topModule, *c.Path))
	} else if c.Module != "" {
		fmt.Fprintf(&b, " %s:*", c.Module)
	}
	v.out = b.String()
}
func (v *describeVisitor) VisitCopy(c *path.CopyCmd) {
	v.out = fmt.Sprintf("copy %s %s", c.Source, c.Destination)
}
func (v *describeVisitor) VisitMove(c *path.MoveCmd) {
	dest := ""
	switch c.Destination.Kind {
	case path.MoveBegin:
		dest = "begin"
	case path.MoveEnd:
		dest = "end"
	case path.MoveBefore:
		dest = "before " + path.RenderLeafValue(*c.Destination.Key)
	case path.MoveAfter:
		dest = "after " + path.RenderLeafValue(*c.Destination.Key)
	}
	v.out = fmt.Sprintf("move %s %s", renderPath(v.topModule, c.Source), dest)
}
func (v *describeVisitor) VisitDump(c *path.DumpCmd) {
	format := "xml"
	if c.Format == path.DumpJSON {
		format = "json"
	}
	v.out = fmt.Sprintf("dump %s", format)
}
func (v *describeVisitor) VisitDescribe(c *path.DescribeCmd) {
	v.out = fmt.Sprintf("describe %s", renderPath(v.topModule, c.Path))
}
func (v *describeVisitor) VisitPrepare(c *path.PrepareCmd) {
	v.out = fmt.Sprintf("prepare %s", renderPath(v.topModule, c.Path))
}
func (v *describeVisitor) VisitExec(c *path.ExecCmd) {
	if c.Path != nil {
		v.out = fmt.Sprintf("exec %s", renderPath(v.topModule, *c.Path))
		return
	}
	v.out = "exec"
}
func (v *describeVisitor) VisitCancel(*path.CancelCmd)   { v.out = "cancel" }
func (v *describeVisitor) VisitCommit(*path.CommitCmd)   { v.out = "commit" }
func (v *describeVisitor) VisitDiscard(*path.DiscardCmd) { v.out = "discard" }
func (v *describeVisitor) VisitSwitch(c *path.SwitchCmd) {
	v.out = fmt.Sprintf("switch %s", c.Datastore)
}
func (v *describeVisitor) VisitHelp(c *path.HelpCmd) {
	if c.Command == "" {
		v.out = "help"
		return
	}
	v.out = fmt.Sprintf("help %s", c.Command)
}
func (v *describeVisitor) VisitQuit(*path.QuitCmd) { v.out = "quit" }
