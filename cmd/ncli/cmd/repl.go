package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/danos/ncli/internal/mgmterr"
	"github.com/danos/ncli/pkg/navigator"
	"github.com/danos/ncli/pkg/path"
)

// runRepl is the root command's default action: read a line, parse and
// apply it, print the result, repeat — the interactive mode the
// teacher's shellinit.go wraps around successive `cfgcli -action run`
// invocations from the user's actual shell, folded here into a single
// process since the line-editor itself is an external collaborator
// (§1) this core only ever receives a finished line from.
func runRepl(cmd *cobra.Command, args []string) error {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(navigator.Prompt(sess.cur, prefixPolicy(), sess.schema.TopModule()))
		if !in.Scan() {
			if err := in.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		}
		line := in.Text()
		if line == "" {
			continue
		}
		ast, err := dispatchLine(line)
		if err != nil {
			fmt.Println(mgmterr.Format(line, errRecord(err)))
			continue
		}
		if _, isQuit := ast.(*path.QuitCmd); isQuit {
			return nil
		}
		fmt.Println(describeCommand(sess.schema.TopModule(), ast))
	}
}
