// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

var (
	initForce bool
	initName  string

	// initCmd scaffolds a new skill pack.
	initCmd = &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new skill pack",
		Long: `Scaffold a new skill pack in the given directory (default: the
current directory).

Creates a skillpack.json manifest declaring one starter skill, plus the
skill directory itself with a SKILL.md entry document and an empty
references/ directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing manifest")
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "pack name (default: the directory's base name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return fmt.Errorf("failed to create pack directory: %w", err)
	}

	name := initName
	if name == "" {
		name = filepath.Base(absDir)
	}

	manifestPath := filepath.Join(absDir, manifest.DefaultFileName)
	if _, err := os.Stat(manifestPath); err == nil && !initForce {
		return fmt.Errorf("manifest '%s' already exists. Use --force to overwrite", manifestPath)
	}

	const starterSkill = "getting-started"

	if err := os.WriteFile(manifestPath, []byte(starterManifest(name, starterSkill)), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	skillDir := filepath.Join(absDir, "skills", starterSkill)
	refsDir := filepath.Join(skillDir, skill.ReferencesDirName)
	if err := os.MkdirAll(refsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	entryPath := filepath.Join(skillDir, skill.EntryDocumentName)
	if err := os.WriteFile(entryPath, []byte(starterEntryDocument(starterSkill)), 0o644); err != nil {
		return fmt.Errorf("failed to write entry document: %w", err)
	}

	gitkeepPath := filepath.Join(refsDir, ".gitkeep")
	if err := os.WriteFile(gitkeepPath, []byte(""), 0o644); err != nil {
		return fmt.Errorf("failed to create .gitkeep: %w", err)
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), manifestPath)
	fmt.Fprintf(stdout, "%s Created %s\n", SuccessStyle.Render("✓"), entryPath)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(stdout, "  1. Edit the starter SKILL.md to describe your skill")
	fmt.Fprintln(stdout, "  2. Add more skill directories and declare them in skillpack.json")
	fmt.Fprintln(stdout, "  3. Run 'skillpack validate' to check the pack")

	return nil
}

// starterManifest returns the scaffolded skillpack.json content.
func starterManifest(packName, skillName string) string {
	return fmt.Sprintf(`{
  "name": %q,
  "version": "0.1.0",
  "description": "A new skill pack",
  "units": [
    {
      "name": %q,
      "path": "skills/%s"
    }
  ]
}
`, packName, skillName, skillName)
}

// starterEntryDocument returns the scaffolded SKILL.md content.
func starterEntryDocument(skillName string) string {
	return fmt.Sprintf(`---
name: %s
description: Describe what this skill teaches in one line
---

# %s

Explain the skill here. Put supplementary material in the references/
directory as markdown files; they are counted during validation but their
content is up to you.
`, skillName, skillName)
}
