// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

// fakeProbe is an in-memory Probe for exercising the checker without a
// real filesystem.
type fakeProbe struct {
	dirs  map[string]bool
	files map[string]string
}

func (p *fakeProbe) IsDir(path string) bool { return p.dirs[path] }

func (p *fakeProbe) IsFile(path string) bool {
	_, ok := p.files[path]
	return ok
}

func (p *fakeProbe) ReadFile(path string) ([]byte, error) {
	content, ok := p.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

func mkSkill(base, name string) skill.Skill {
	dir := filepath.Join(base, "skills", name)
	return skill.Skill{
		Name:      name,
		Dir:       dir,
		EntryPath: filepath.Join(dir, skill.EntryDocumentName),
	}
}

func mkManifest(names ...string) *manifest.Manifest {
	m := &manifest.Manifest{Name: "demo", Version: "1.0", Dir: "/pack"}
	for _, n := range names {
		m.Units = append(m.Units, manifest.UnitRef{Name: n, Path: "skills/" + n})
	}
	return m
}

func TestRunAllPass(t *testing.T) {
	m := mkManifest("alpha", "beta")
	alpha := mkSkill(m.Dir, "alpha")
	beta := mkSkill(m.Dir, "beta")
	alpha.References = []string{"a.md", "b.md"}

	probe := &fakeProbe{
		dirs: map[string]bool{alpha.Dir: true, beta.Dir: true},
		files: map[string]string{
			alpha.EntryPath: "# Alpha\n",
			beta.EntryPath:  "# Beta\n",
		},
	}

	rep := Run(m, []skill.Skill{alpha, beta}, probe)

	if !rep.OK() {
		t.Errorf("Report.OK() = false, want true")
	}
	if rep.FailureCount() != 0 {
		t.Errorf("FailureCount() = %d, want 0", rep.FailureCount())
	}
	if len(rep.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(rep.Results))
	}
	if rep.Results[0].ReferenceCount != 2 {
		t.Errorf("Results[0].ReferenceCount = %d, want 2", rep.Results[0].ReferenceCount)
	}
	if rep.Results[1].ReferenceCount != 0 {
		t.Errorf("Results[1].ReferenceCount = %d, want 0", rep.Results[1].ReferenceCount)
	}
}

func TestRunEntryDocumentMissing(t *testing.T) {
	// Manifest declares alpha and beta; beta's directory exists but its
	// entry document does not. Alpha must still pass, beta must fail on
	// the entry check specifically, and the aggregate must fail.
	m := mkManifest("alpha", "beta")
	alpha := mkSkill(m.Dir, "alpha")
	beta := mkSkill(m.Dir, "beta")

	probe := &fakeProbe{
		dirs:  map[string]bool{alpha.Dir: true, beta.Dir: true},
		files: map[string]string{alpha.EntryPath: "# Alpha\n"},
	}

	rep := Run(m, []skill.Skill{alpha, beta}, probe)

	if rep.OK() {
		t.Error("Report.OK() = true, want false")
	}
	if rep.FailureCount() != 1 {
		t.Errorf("FailureCount() = %d, want 1", rep.FailureCount())
	}

	if !rep.Results[0].OK() {
		t.Errorf("alpha should pass, got %+v", rep.Results[0])
	}
	b := rep.Results[1]
	if b.OK() {
		t.Error("beta should fail")
	}
	if !b.DirExists {
		t.Error("beta.DirExists = false, want true")
	}
	if b.EntryExists {
		t.Error("beta.EntryExists = true, want false")
	}
}

func TestRunDirectoryMissing(t *testing.T) {
	m := mkManifest("alpha", "beta", "gamma")
	skills := []skill.Skill{mkSkill(m.Dir, "alpha"), mkSkill(m.Dir, "beta"), mkSkill(m.Dir, "gamma")}

	probe := &fakeProbe{
		dirs: map[string]bool{skills[0].Dir: true, skills[2].Dir: true},
		files: map[string]string{
			skills[0].EntryPath: "# Alpha\n",
			skills[2].EntryPath: "# Gamma\n",
		},
	}

	rep := Run(m, skills, probe)

	if rep.OK() {
		t.Error("Report.OK() = true, want false")
	}
	// Every unit is checked even though one fails.
	if len(rep.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(rep.Results))
	}
	if rep.Results[1].DirExists {
		t.Error("beta.DirExists = true, want false")
	}
	if !rep.Results[0].OK() || !rep.Results[2].OK() {
		t.Error("alpha and gamma should still pass")
	}
}

func TestRunDuplicateNames(t *testing.T) {
	m := mkManifest("alpha", "beta", "alpha", "beta", "alpha")
	var skills []skill.Skill
	probe := &fakeProbe{dirs: map[string]bool{}, files: map[string]string{}}
	for _, ref := range m.Units {
		s := mkSkill(m.Dir, ref.Name)
		skills = append(skills, s)
		probe.dirs[s.Dir] = true
		probe.files[s.EntryPath] = "# Doc\n"
	}

	rep := Run(m, skills, probe)

	// Every individual check passes, but duplicates fail the aggregate.
	for i, r := range rep.Results {
		if !r.OK() {
			t.Errorf("Results[%d] should pass, got %+v", i, r)
		}
	}
	if rep.OK() {
		t.Error("Report.OK() = true, want false")
	}
	if len(rep.Duplicates) != 2 {
		t.Fatalf("Duplicates = %v, want [alpha beta]", rep.Duplicates)
	}
	if rep.Duplicates[0] != "alpha" || rep.Duplicates[1] != "beta" {
		t.Errorf("Duplicates = %v, want [alpha beta]", rep.Duplicates)
	}
	if rep.FailureCount() != 2 {
		t.Errorf("FailureCount() = %d, want 2", rep.FailureCount())
	}
}

func TestRunFrontmatter(t *testing.T) {
	tests := []struct {
		name      string
		entryDoc  string
		wantOK    bool
		wantIssue string
	}{
		{
			name:     "no frontmatter passes",
			entryDoc: "# Alpha\n",
			wantOK:   true,
		},
		{
			name:     "matching name passes",
			entryDoc: "---\nname: alpha\n---\n# Alpha\n",
			wantOK:   true,
		},
		{
			name:     "frontmatter without name passes",
			entryDoc: "---\ndescription: something\n---\n",
			wantOK:   true,
		},
		{
			name:      "mismatched name fails",
			entryDoc:  "---\nname: bravo\n---\n",
			wantOK:    false,
			wantIssue: "does not match",
		},
		{
			name:      "unclosed frontmatter fails",
			entryDoc:  "---\nname: alpha\n",
			wantOK:    false,
			wantIssue: "not closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mkManifest("alpha")
			s := mkSkill(m.Dir, "alpha")
			probe := &fakeProbe{
				dirs:  map[string]bool{s.Dir: true},
				files: map[string]string{s.EntryPath: tt.entryDoc},
			}

			rep := Run(m, []skill.Skill{s}, probe)
			r := rep.Results[0]

			if r.OK() != tt.wantOK {
				t.Errorf("Result.OK() = %v, want %v (issue: %q)", r.OK(), tt.wantOK, r.FrontmatterIssue)
			}
			if tt.wantIssue != "" && !strings.Contains(r.FrontmatterIssue, tt.wantIssue) {
				t.Errorf("FrontmatterIssue = %q, want substring %q", r.FrontmatterIssue, tt.wantIssue)
			}
		})
	}
}

func TestOSProbe(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "SKILL.md")
	if err := os.WriteFile(file, []byte("# Doc\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	probe := OSProbe()

	if !probe.IsDir(dir) {
		t.Error("IsDir(existing dir) = false")
	}
	if probe.IsDir(file) {
		t.Error("IsDir(file) = true")
	}
	if !probe.IsFile(file) {
		t.Error("IsFile(existing file) = false")
	}
	if probe.IsFile(dir) {
		t.Error("IsFile(dir) = true")
	}
	if probe.IsFile(filepath.Join(dir, "missing.md")) {
		t.Error("IsFile(missing) = true")
	}

	data, err := probe.ReadFile(file)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "# Doc\n" {
		t.Errorf("ReadFile() = %q", data)
	}
}
