// Package config loads the §6 settings (writable-ops, prefixes,
// datastore backend, schema directory) with github.com/spf13/viper,
// registered as github.com/spf13/cobra flags in cmd/ncli, the way
// openconfig-ygot's gnmidiff/cmd wires its own flags through both
// libraries at once.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PrefixPolicy mirrors path.PrefixPolicy's two values without importing
// pkg/path, keeping this package import-cycle-free of the core.
type PrefixPolicy string

const (
	PrefixAlways     PrefixPolicy = "always"
	PrefixWhenNeeded PrefixPolicy = "when-needed"
)

// Config is the resolved set of §6 settings for one ncli invocation.
type Config struct {
	// WritableOps is the §6 `writable-ops ∈ {yes, no}` toggle: whether
	// operational-state leaves (YANG `config false`) may be targeted by
	// `set`/`create`/`delete` in addition to configuration leaves, which
	// are always writable.
	WritableOps bool
	// Prefixes controls whether rendered paths carry a module prefix on
	// every segment or only when the module changes from the parent.
	Prefixes PrefixPolicy
	// DatastoreBackend records the --datastore-backend setting. cmd/ncli
	// does not read it: every invocation uses an empty in-process
	// dataquery.Facade that reports no list instances.
	DatastoreBackend string
	// SchemaDir points goyang at the YANG module directory backing the
	// schema.Facade adapter.
	SchemaDir string
	// TopModule names the root YANG module to walk paths from. Required
	// whenever SchemaDir is set; ignored for the bare no-schema REPL.
	TopModule string
}

// Register attaches the §6 flags to cmd and binds them into v, the way
// gnmidiff's cmd package binds viper to a cobra.Command's flag set.
func Register(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.Bool("writable-ops", false, "allow set/create/delete to target operational-state leaves, not just configuration")
	flags.String("prefixes", string(PrefixWhenNeeded), "module-prefix rendering policy: always|when-needed")
	flags.String("datastore-backend", "running", "dataquery.Facade backend name (recorded; not used by cmd/ncli)")
	flags.String("schema-dir", "", "directory of YANG modules backing the schema facade")
	flags.String("top-module", "", "root YANG module to walk paths from (required with --schema-dir)")

	v.BindPFlag("writable-ops", flags.Lookup("writable-ops"))
	v.BindPFlag("prefixes", flags.Lookup("prefixes"))
	v.BindPFlag("datastore-backend", flags.Lookup("datastore-backend"))
	v.BindPFlag("schema-dir", flags.Lookup("schema-dir"))
	v.BindPFlag("top-module", flags.Lookup("top-module"))

	v.SetEnvPrefix("ncli")
	v.AutomaticEnv()
}

// Load resolves a Config from v after cobra has parsed flags, validating
// the prefixes policy against the two values §3 defines.
func Load(v *viper.Viper) (*Config, error) {
	policy := PrefixPolicy(strings.ToLower(v.GetString("prefixes")))
	if policy != PrefixAlways && policy != PrefixWhenNeeded {
		return nil, fmt.Errorf("prefixes: %q not recognised, use <always|when-needed>", policy)
	}
	schemaDir := v.GetString("schema-dir")
	topModule := v.GetString("top-module")
	if schemaDir != "" && topModule == "" {
		return nil, fmt.Errorf("--top-module is required when --schema-dir is set")
	}
	return &Config{
		WritableOps:      v.GetBool("writable-ops"),
		Prefixes:         policy,
		DatastoreBackend: v.GetString("datastore-backend"),
		SchemaDir:        schemaDir,
		TopModule:        topModule,
	}, nil
}
