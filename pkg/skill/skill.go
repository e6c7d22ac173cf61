// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	"skillpack-cli/pkg/manifest"
)

const (
	// EntryDocumentName is the required entry document in every skill directory.
	EntryDocumentName = "SKILL.md"
	// ReferencesDirName is the optional subdirectory of supplementary documents.
	ReferencesDirName = "references"
	// DocExtension is the extension reference documents must carry to be counted.
	DocExtension = ".md"
)

// Skill is a resolved unit: the manifest declaration turned into concrete
// filesystem paths. Construction never touches the entry document; only the
// references/ directory is listed, and a missing references/ directory is
// indistinguishable from an empty one.
type Skill struct {
	// Name is the unit name as declared in the manifest.
	Name string
	// Dir is the skill directory, resolved against the manifest directory.
	Dir string
	// EntryPath is Dir joined with EntryDocumentName.
	EntryPath string
	// References holds the paths of reference documents found under
	// Dir/references/, sorted by filename so output is deterministic
	// regardless of directory read order.
	References []string
}

// Resolve maps a single unit declaration to a Skill rooted at baseDir.
func Resolve(ref manifest.UnitRef, baseDir string) Skill {
	dir := filepath.Join(baseDir, filepath.FromSlash(ref.Path))
	return Skill{
		Name:       ref.Name,
		Dir:        dir,
		EntryPath:  filepath.Join(dir, EntryDocumentName),
		References: listReferences(dir),
	}
}

// ResolveAll resolves every unit of the manifest against its own directory,
// preserving declaration order.
func ResolveAll(m *manifest.Manifest) []Skill {
	skills := make([]Skill, 0, len(m.Units))
	for _, ref := range m.Units {
		skills = append(skills, Resolve(ref, m.Dir))
	}
	return skills
}

// listReferences returns the sorted markdown files directly under
// dir/references/. Any error listing the directory (most commonly: it does
// not exist) yields nil.
func listReferences(dir string) []string {
	refsDir := filepath.Join(dir, ReferencesDirName)
	entries, err := os.ReadDir(refsDir)
	if err != nil {
		return nil
	}

	var refs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), DocExtension) {
			continue
		}
		refs = append(refs, filepath.Join(refsDir, entry.Name()))
	}
	slices.Sort(refs)
	return refs
}
