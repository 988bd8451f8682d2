// Command ncli is the outer executable driving the path/command core
// against a schema and datastore (§1: "external collaborators" this
// core only consumes through the schema/dataquery facades). Grounded on
// the teacher's cmd/cfgcli/main.go, with the `-action run|complete|expand`
// flag replaced by cobra subcommands per SPEC_FULL.md's ambient-stack
// section.
package main

import "github.com/danos/ncli/cmd/ncli/cmd"

func main() {
	cmd.Execute()
}
