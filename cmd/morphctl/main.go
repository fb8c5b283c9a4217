// Command morphctl is the CLI wrapper around the morphwizard core (spec
// §6, "an implementer may wrap the core in a CLI").
package main

import "morphwizard/cmd/morphctl/cmd"

func main() {
	cmd.Execute()
}
