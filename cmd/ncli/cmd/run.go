package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danos/ncli/internal/mgmterr"
	"github.com/danos/ncli/pkg/command"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
)

// newRunCmd parses and applies one command line non-interactively, the
// scripting-friendly equivalent of the teacher's `cfgcli -action run`.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <command line>",
		Short: "Parse and apply one command line against the current cursor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			ast, err := dispatchLine(line)
			if err != nil {
				fmt.Println(mgmterr.Format(line, errRecord(err)))
				return errors.New("command failed")
			}
			fmt.Println(describeCommand(sess.schema.TopModule(), ast))
			return nil
		},
	}
}

// dispatchLine runs the command grammar once over line against sess,
// applying a successfully parsed `cd` to the cursor per §4.8 (only an
// accepted `cd` AST may move it; the parser itself never does).
func dispatchLine(line string) (path.Command, error) {
	ctx := parsectx.New(sess.schema, sess.dq, sess.cur.Current())
	ctx.SetWritableOps(sess.cfg.WritableOps)
	ast, ok := command.Dispatch(ctx, line)
	if !ok {
		return nil, dispatchError{ctx.Error()}
	}
	if cd, isCd := ast.(*path.CdCmd); isCd {
		sess.cur.Apply(cd.Path)
	}
	return ast, nil
}

// dispatchError wraps the single ErrorRecord a failed parse produces
// (§4.9), kept distinct from a plain error so errRecord can recover it
// without type-asserting on fmt.wrapError internals.
type dispatchError struct{ rec *parsectx.ErrorRecord }

func (e dispatchError) Error() string {
	if e.rec == nil {
		return "parse failed"
	}
	return e.rec.Message
}

func errRecord(err error) *parsectx.ErrorRecord {
	var de dispatchError
	if errors.As(err, &de) {
		return de.rec
	}
	return &parsectx.ErrorRecord{Message: err.Error()}
}
