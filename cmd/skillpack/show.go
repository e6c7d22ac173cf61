// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"skillpack-cli/internal/issue"
	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

var showWidth int

// showCmd renders a skill's entry document to the terminal.
var showCmd = &cobra.Command{
	Use:   "show <skill>",
	Short: "Render a skill's entry document",
	Long: `Render a skill's SKILL.md entry document to the terminal.

The skill is looked up by its unit name in the pack manifest of the current
directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&showWidth, "width", 100, "word-wrap width for rendered output")
}

func runShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	manifestPath := filepath.Join(".", manifest.DefaultFileName)

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return manifestLoadError(err, manifestPath)
	}

	var ref *manifest.UnitRef
	for i := range m.Units {
		if m.Units[i].Name == name {
			ref = &m.Units[i]
			break
		}
	}
	if ref == nil {
		return issue.NewErrorContext().
			WithOperation("show skill").
			WithResource(name).
			WithSuggestion("Run 'skillpack list' to see declared skills").
			Wrap(fmt.Errorf("skill %q is not declared in the manifest", name)).
			BuildError()
	}

	s := skill.Resolve(*ref, m.Dir)
	data, err := os.ReadFile(s.EntryPath)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("read entry document").
			WithResource(s.EntryPath).
			WithSuggestion("Run 'skillpack validate' to check the pack's integrity").
			Wrap(err).
			BuildError()
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(showWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
