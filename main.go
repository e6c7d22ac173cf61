// SPDX-License-Identifier: MPL-2.0

// skillpack is a CLI for validating, inspecting, and scaffolding skill packs.
package main

import (
	cmd "skillpack-cli/cmd/skillpack"
)

func main() {
	cmd.Execute()
}
