// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillpack-cli/internal/checker"
	"skillpack-cli/internal/issue"
	"skillpack-cli/internal/report"
	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

// validateCmd runs the full validation pipeline: load the manifest, resolve
// every declared unit, check the filesystem, and emit the report.
var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a skill pack against its manifest",
	Long: `Validate a skill pack against its manifest.

Loads skillpack.json from the given directory (default: the current
directory), resolves every declared unit to its skill directory, and
checks that each directory and its SKILL.md entry document exist.
Reference documents under references/ are counted and reported.

All problems are reported in a single pass: a missing skill does not stop
the remaining skills from being checked. The exit status is zero only when
every check passes and no unit name is declared twice.

Examples:
  skillpack validate              Validate the pack in the current directory
  skillpack validate ./my-pack    Validate a pack elsewhere`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	manifestPath := filepath.Join(dir, manifest.DefaultFileName)

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	logger.Debug("loading manifest", "path", manifestPath)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		// Manifest-level errors are fatal: print a short diagnostic
		// instead of a report.
		fmt.Fprintln(stderr, ErrorStyle.Render("✗ ")+formatErrorForDisplay(manifestLoadError(err, manifestPath), verbose))
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}

	logger.Debug("manifest loaded", "pack", m.Name, "version", m.Version, "units", len(m.Units))

	skills := skill.ResolveAll(m)
	rep := checker.Run(m, skills, checker.OSProbe())
	logger.Debug("checks complete", "issues", rep.FailureCount())

	emitter := &report.Emitter{Out: stdout, BaseDir: m.Dir}
	emitter.Emit(m, rep)

	if !rep.OK() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return &ExitError{Code: 1}
	}
	return nil
}

// manifestLoadError wraps a manifest loading failure with suggestions.
func manifestLoadError(err error, manifestPath string) error {
	ctx := issue.NewErrorContext().
		WithOperation("load manifest").
		WithResource(manifestPath).
		Wrap(err)

	switch {
	case errors.Is(err, manifest.ErrNotFound):
		ctx.WithSuggestion("Run 'skillpack init' to scaffold a new pack").
			WithSuggestion("Check that you are in the pack's root directory")
	case errors.Is(err, manifest.ErrMalformed):
		ctx.WithSuggestion("Check that the file is valid JSON").
			WithSuggestion(`Ensure "name", "version", and a non-empty "units" list are present`)
	}

	return ctx.BuildError()
}
