package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danos/ncli/pkg/command"
	"github.com/danos/ncli/pkg/complete"
	"github.com/danos/ncli/pkg/parsectx"
)

// newCompleteCmd prints one candidate per line, the shape a shell
// completion script expects — the equivalent of the teacher's
// `cfgcli -action complete`.
func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <partial command line>",
		Short: "List completions for a partial command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := strings.Join(args, " ")
			ctx := parsectx.New(sess.schema, sess.dq, sess.cur.Current())
			ctx.SetWritableOps(sess.cfg.WritableOps)
			res := complete.Run(ctx, line, func(ctx *parsectx.Context, line string) bool {
				_, ok := command.Dispatch(ctx, line)
				return ok
			})
			for _, e := range res.Entries {
				fmt.Println(e.Value + res.Append)
			}
			return nil
		},
	}
}
