// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for skillpack.
//
// This package implements the Cobra command hierarchy for the skillpack CLI:
// the root command plus subcommands for validating, listing, and rendering
// skills, scaffolding new packs, and inspecting configuration.
package cmd
