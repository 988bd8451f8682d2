// Package cmd wires cobra/viper around the path/command core (§1's
// "external collaborators" boundary), grounded on
// openconfig-ygot/gnmidiff/cmd's root.go + per-subcommand file layout.
// Where the teacher's cmd/cfgcli/main.go dispatched on a single
// `-action run|complete|expand` flag, this package expresses the run and
// complete modes as cobra subcommands (`ncli run`, `ncli complete`; there
// is no expand mode), plus an interactive REPL as the root command's own
// RunE.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danos/ncli/internal/config"
	"github.com/danos/ncli/internal/logging"
	"github.com/danos/ncli/pkg/dataquery"
	"github.com/danos/ncli/pkg/navigator"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema"
)

// session bundles the facades and cursor one ncli invocation needs,
// built once in PersistentPreRunE and shared by every subcommand.
type session struct {
	cfg    *config.Config
	schema schema.Facade
	dq     dataquery.Facade
	cur    *navigator.Cursor
}

// noopDataQuery answers every ListInstances call with no instances,
// standing in for the datastore back-end §1 explicitly places out of
// scope ("the datastore back-ends ... are external collaborators").
type noopDataQuery struct{}

func (noopDataQuery) ListInstances(context.Context, path.Path) ([]path.KeyInstance, error) {
	return nil, nil
}

var v = viper.New()
var sess *session

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "ncli",
		Short: "ncli is a schema-aware interactive command parser and completer",
		RunE:  runRepl,
	}

	config.Register(rootCmd, v)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		topModule := cfg.TopModule
		if topModule == "" {
			topModule = "example"
		}
		sc, err := loadSchema(cfg.SchemaDir, topModule)
		if err != nil {
			logging.Errorf(logging.AreaSchema, "%v", err)
			return err
		}
		var facade schema.Facade
		if sc != nil {
			facade = sc
		} else {
			facade = emptySchema(topModule)
		}
		sess = &session{
			cfg:    cfg,
			schema: facade,
			dq:     noopDataQuery{},
			cur:    navigator.New(),
		}
		return nil
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCompleteCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
