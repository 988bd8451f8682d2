package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/openconfig/goyang/pkg/yang"

	goyangfacade "github.com/danos/ncli/pkg/schema/goyang"
	"github.com/danos/ncli/pkg/schema/static"
)

// loadSchema builds the schema.Facade cmd/ncli hands to the core: a
// goyang-backed one for every *.yang module found under schemaDir, the
// way util/build_yang.go's ms.Read loop over a directory listing does in
// openconfig-goyang. When no directory was configured it returns nil, nil
// and the caller falls back to emptySchema (a bare REPL with nothing to
// complete against). The returned facade's identity graph is left empty:
// SetIdentities is not called.
func loadSchema(schemaDir, topModule string) (*goyangfacade.Schema, error) {
	if schemaDir == "" {
		return nil, nil
	}
	yang.AddPath(schemaDir)
	entries, err := os.ReadDir(schemaDir)
	if err != nil {
		return nil, fmt.Errorf("reading schema dir %s: %w", schemaDir, err)
	}

	ms := yang.NewModules()
	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".yang" {
			continue
		}
		if err := ms.Read(filepath.Join(schemaDir, ent.Name())); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ent.Name(), err)
		}
	}
	if errs := ms.Process(); len(errs) > 0 {
		return nil, fmt.Errorf("processing yang modules: %v", errs)
	}

	mod, ok := ms.Modules[topModule]
	if !ok {
		return nil, fmt.Errorf("top module %q not found under %s", topModule, schemaDir)
	}
	return goyangfacade.New(yang.ToEntry(mod), topModule), nil
}

// emptySchema returns a bare static.Schema, used when no --schema-dir is
// configured — enough to let the REPL start and the `help` command work,
// with no nodes to complete.
func emptySchema(topModule string) *static.Schema {
	return static.New(topModule)
}
