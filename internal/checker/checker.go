// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"fmt"
	"os"

	"skillpack-cli/pkg/manifest"
	"skillpack-cli/pkg/skill"
)

type (
	// Probe answers the filesystem questions a check needs. The zero-cost
	// real implementation is OSProbe; tests substitute an in-memory one.
	Probe interface {
		// IsDir reports whether path exists and is a directory.
		IsDir(path string) bool
		// IsFile reports whether path exists and is a regular file.
		IsFile(path string) bool
		// ReadFile returns the contents of a regular file.
		ReadFile(path string) ([]byte, error)
	}

	// Result is the outcome of checking one skill.
	Result struct {
		// Name is the unit name as declared in the manifest.
		Name string
		// Dir is the resolved skill directory that was probed.
		Dir string
		// EntryPath is the resolved entry document path that was probed.
		EntryPath string
		// DirExists reports whether Dir exists as a directory.
		DirExists bool
		// EntryExists reports whether EntryPath exists as a file.
		EntryExists bool
		// ReferenceCount is the number of reference documents found
		// during resolution. Informational; never fails a check.
		ReferenceCount int
		// FrontmatterIssue describes a problem with the entry document's
		// frontmatter (unparseable block, or a name contradicting the
		// manifest declaration). Empty when there is no issue.
		FrontmatterIssue string
	}

	// Report aggregates one Result per skill, in declaration order, plus
	// manifest-wide findings.
	Report struct {
		// Results holds per-skill outcomes in declaration order.
		Results []Result
		// Duplicates lists unit names declared more than once, each name
		// appearing once, ordered by first duplicate occurrence.
		Duplicates []string
	}

	osProbe struct{}
)

// OSProbe returns the Probe backed by the real filesystem.
func OSProbe() Probe { return osProbe{} }

func (osProbe) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (osProbe) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (osProbe) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OK reports whether this skill passed all of its checks.
func (r Result) OK() bool {
	return r.DirExists && r.EntryExists && r.FrontmatterIssue == ""
}

// OK reports the aggregate outcome: every skill passed and no unit name was
// declared twice.
func (rep *Report) OK() bool {
	if len(rep.Duplicates) > 0 {
		return false
	}
	for _, r := range rep.Results {
		if !r.OK() {
			return false
		}
	}
	return true
}

// FailureCount returns the number of distinct problems in the report:
// failing skills plus duplicated names.
func (rep *Report) FailureCount() int {
	n := len(rep.Duplicates)
	for _, r := range rep.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Run checks every resolved skill and the manifest's name uniqueness.
// skills must be the resolution of m.Units, in the same order.
func Run(m *manifest.Manifest, skills []skill.Skill, probe Probe) *Report {
	rep := &Report{
		Results:    make([]Result, 0, len(skills)),
		Duplicates: duplicateNames(m.Units),
	}

	for _, s := range skills {
		rep.Results = append(rep.Results, checkOne(s, probe))
	}

	return rep
}

// checkOne probes a single skill. The two existence checks are independent:
// a missing directory does not suppress the entry document probe, it simply
// makes both fail, and the report distinguishes the two cases.
func checkOne(s skill.Skill, probe Probe) Result {
	r := Result{
		Name:           s.Name,
		Dir:            s.Dir,
		EntryPath:      s.EntryPath,
		DirExists:      probe.IsDir(s.Dir),
		EntryExists:    probe.IsFile(s.EntryPath),
		ReferenceCount: len(s.References),
	}

	if r.EntryExists {
		r.FrontmatterIssue = checkFrontmatter(s, probe)
	}

	return r
}

// checkFrontmatter reads the entry document and compares an explicit
// frontmatter name against the declared unit name. Documents without
// frontmatter, or with frontmatter that omits the name, pass.
func checkFrontmatter(s skill.Skill, probe Probe) string {
	data, err := probe.ReadFile(s.EntryPath)
	if err != nil {
		return fmt.Sprintf("entry document unreadable: %v", err)
	}

	fm, err := skill.ParseFrontmatter(data)
	if err != nil {
		return err.Error()
	}
	if fm == nil || fm.Name == "" || fm.Name == s.Name {
		return ""
	}
	return fmt.Sprintf("frontmatter name %q does not match unit name %q", fm.Name, s.Name)
}

// duplicateNames returns each unit name declared more than once, ordered by
// the position of its first repeat.
func duplicateNames(units []manifest.UnitRef) []string {
	seen := make(map[string]int, len(units))
	var dups []string
	for _, ref := range units {
		seen[ref.Name]++
		if seen[ref.Name] == 2 {
			dups = append(dups, ref.Name)
		}
	}
	return dups
}
