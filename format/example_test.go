package format_test

import (
	"fmt"
	"os"
	"time"

	"morphwizard/format"
	"morphwizard/morphology"
	"morphwizard/vector"
)

// ExampleSWC writes a single soma as a minimal SWC stream: one header block
// followed by one body record (a root has no parent field to rewrite).
func ExampleSWC() {
	instructions := []morphology.Instruction{
		{SomaDiameter: 10, CarrierPoints: []vector.Vec3{{0, 0, 0}}},
	}
	nodes, _, err := morphology.Generate(instructions)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	generatedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	err = format.SWC(os.Stdout, instructions, nodes, []string{"cell_body"}, "morphctl", "1.0.0", "run-001", generatedAt)
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// # morphctl 1.0.0 (run run-001)
	// # Mon, 15 Jan 2024 10:30:00 +0000
	// # <customTypes>
	// #   <type id="256" kind="soma" name="cell_body"/>
	// # </customTypes>
	// 1 1 0 0 0 5 0
}
