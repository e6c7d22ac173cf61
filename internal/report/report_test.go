// SPDX-License-Identifier: MPL-2.0

package report

import (
	"bytes"
	"strings"
	"testing"

	"skillpack-cli/internal/checker"
	"skillpack-cli/pkg/manifest"
)

func demoManifest() *manifest.Manifest {
	return &manifest.Manifest{Name: "demo", Version: "1.0", Dir: "/pack"}
}

func passResult(name string, refs int) checker.Result {
	return checker.Result{
		Name:           name,
		Dir:            "/pack/skills/" + name,
		EntryPath:      "/pack/skills/" + name + "/SKILL.md",
		DirExists:      true,
		EntryExists:    true,
		ReferenceCount: refs,
	}
}

func emit(m *manifest.Manifest, rep *checker.Report) string {
	var buf bytes.Buffer
	e := &Emitter{Out: &buf, BaseDir: m.Dir}
	e.Emit(m, rep)
	return buf.String()
}

func TestEmitAllPass(t *testing.T) {
	rep := &checker.Report{
		Results: []checker.Result{passResult("alpha", 2), passResult("beta", 0)},
	}

	out := emit(demoManifest(), rep)

	for _, want := range []string{
		"alpha",
		"beta",
		"2 reference document(s)",
		"0 reference document(s)",
		"Pack is valid: 2 unit(s) checked",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Validation failed") {
		t.Errorf("output should not contain a failure summary:\n%s", out)
	}
}

func TestEmitDistinguishesFailures(t *testing.T) {
	dirMissing := passResult("nodir", 0)
	dirMissing.DirExists = false
	dirMissing.EntryExists = false

	entryMissing := passResult("noentry", 0)
	entryMissing.EntryExists = false

	fmIssue := passResult("badfm", 0)
	fmIssue.FrontmatterIssue = `frontmatter name "other" does not match unit name "badfm"`

	rep := &checker.Report{Results: []checker.Result{dirMissing, entryMissing, fmIssue}}

	out := emit(demoManifest(), rep)

	if !strings.Contains(out, "directory missing") {
		t.Errorf("output missing directory-missing reason:\n%s", out)
	}
	if !strings.Contains(out, "entry document missing") {
		t.Errorf("output missing entry-document-missing reason:\n%s", out)
	}
	if !strings.Contains(out, "does not match unit name") {
		t.Errorf("output missing frontmatter reason:\n%s", out)
	}
	if !strings.Contains(out, "Validation failed with 3 issue(s)") {
		t.Errorf("output missing failure summary:\n%s", out)
	}
	// Paths are shown relative to the pack root.
	if !strings.Contains(out, "skills/noentry/SKILL.md") {
		t.Errorf("output should show the relative entry path:\n%s", out)
	}
	if strings.Contains(out, "/pack/skills/noentry") {
		t.Errorf("output should not show absolute paths:\n%s", out)
	}
}

func TestEmitOneLinePerUnitInOrder(t *testing.T) {
	rep := &checker.Report{
		Results: []checker.Result{passResult("zeta", 0), passResult("alpha", 1), passResult("mid", 0)},
	}

	out := emit(demoManifest(), rep)

	zeta := strings.Index(out, "zeta")
	alpha := strings.Index(out, "alpha")
	mid := strings.Index(out, "mid")
	if zeta < 0 || alpha < 0 || mid < 0 {
		t.Fatalf("output missing unit names:\n%s", out)
	}
	if !(zeta < alpha && alpha < mid) {
		t.Errorf("units reported out of declaration order:\n%s", out)
	}
}

func TestEmitDuplicates(t *testing.T) {
	rep := &checker.Report{
		Results:    []checker.Result{passResult("alpha", 0)},
		Duplicates: []string{"alpha"},
	}

	out := emit(demoManifest(), rep)

	if !strings.Contains(out, "duplicate unit name") {
		t.Errorf("output missing duplicate finding:\n%s", out)
	}
	if !strings.Contains(out, "Validation failed with 1 issue(s)") {
		t.Errorf("duplicates alone must fail the aggregate:\n%s", out)
	}
}

func TestEmitIsDeterministic(t *testing.T) {
	bad := passResult("beta", 0)
	bad.EntryExists = false
	rep := &checker.Report{
		Results:    []checker.Result{passResult("alpha", 3), bad},
		Duplicates: []string{"alpha"},
	}
	m := demoManifest()

	first := emit(m, rep)
	second := emit(m, rep)

	if first != second {
		t.Errorf("repeated emission differs:\n--- first\n%s\n--- second\n%s", first, second)
	}
}
