// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillpack-cli/internal/checker"
	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

// listCmd prints a compact per-skill status table.
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List declared skills with their status",
	Long: `List every skill declared in the pack manifest.

Each line shows the skill's name, whether its directory and entry document
are present, and how many reference documents it carries. This is the same
information 'skillpack validate' checks, in a compact form; the exit status
is always zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	manifestPath := filepath.Join(dir, manifest.DefaultFileName)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return manifestLoadError(err, manifestPath)
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintln(stdout, TitleStyle.Render(m.Name)+" "+SubtitleStyle.Render(m.Version))

	skills := skill.ResolveAll(m)
	rep := checker.Run(m, skills, checker.OSProbe())

	for _, r := range rep.Results {
		icon := SuccessStyle.Render("✓")
		if !r.OK() {
			icon = ErrorStyle.Render("✗")
		}
		rel, relErr := filepath.Rel(m.Dir, r.Dir)
		if relErr != nil {
			rel = r.Dir
		}
		fmt.Fprintf(stdout, "%s %s  %s  %s\n",
			icon,
			NameStyle.Render(r.Name),
			SubtitleStyle.Render(fmt.Sprintf("%d ref(s)", r.ReferenceCount)),
			PathStyle.Render(rel),
		)
	}

	return nil
}
