// SPDX-License-Identifier: MPL-2.0

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skillpack-cli/internal/checker"
	"skillpack-cli/pkg/manifest"
)

// Style definitions for report output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	successIcon = successStyle.Render("✓")
	errorIcon   = errorStyle.Render("✗")
	infoIcon    = subtitleStyle.Render("•")
)

// Emitter renders a checker.Report to a writer.
type Emitter struct {
	// Out receives the rendered report.
	Out io.Writer
	// BaseDir, when non-empty, shortens paths in messages to be relative
	// to the pack root instead of absolute.
	BaseDir string
}

// New returns an Emitter writing to out.
func New(out io.Writer) *Emitter {
	return &Emitter{Out: out}
}

// Emit writes the full report: header, one block per skill in declaration
// order, duplicate-name findings, and the summary line.
func (e *Emitter) Emit(m *manifest.Manifest, rep *checker.Report) {
	fmt.Fprintln(e.Out, titleStyle.Render("Skill Pack Validation"))
	fmt.Fprintf(e.Out, "%s Pack: %s %s\n", infoIcon,
		nameStyle.Render(m.Name), subtitleStyle.Render(m.Version))
	fmt.Fprintln(e.Out)

	for _, r := range rep.Results {
		e.emitResult(r)
	}

	for _, name := range rep.Duplicates {
		fmt.Fprintf(e.Out, "%s duplicate unit name: %s\n", errorIcon, nameStyle.Render(name))
	}

	fmt.Fprintln(e.Out)
	if rep.OK() {
		fmt.Fprintf(e.Out, "%s Pack is valid: %d unit(s) checked\n", successIcon, len(rep.Results))
		return
	}
	fmt.Fprintf(e.Out, "%s Validation failed with %d issue(s)\n", errorIcon, rep.FailureCount())
}

// emitResult writes the block for one skill: a pass line with the reference
// document count, or a fail line naming the exact check that failed so the
// user can act without re-running with extra verbosity.
func (e *Emitter) emitResult(r checker.Result) {
	if r.OK() {
		fmt.Fprintf(e.Out, "%s %s\n", successIcon, nameStyle.Render(r.Name))
		fmt.Fprintf(e.Out, "  %s %d reference document(s)\n", infoIcon, r.ReferenceCount)
		return
	}
	fmt.Fprintf(e.Out, "%s %s: %s\n", errorIcon, nameStyle.Render(r.Name), e.failureReason(r))
}

// failureReason names the first failed check. A missing directory implies a
// missing entry document, so it takes precedence; frontmatter issues only
// arise once both existence checks pass.
func (e *Emitter) failureReason(r checker.Result) string {
	switch {
	case !r.DirExists:
		return fmt.Sprintf("directory missing (%s)", pathStyle.Render(e.rel(r.Dir)))
	case !r.EntryExists:
		return fmt.Sprintf("entry document missing (%s)", pathStyle.Render(e.rel(r.EntryPath)))
	default:
		return r.FrontmatterIssue
	}
}

// rel shortens an absolute path against BaseDir for display.
func (e *Emitter) rel(path string) string {
	if e.BaseDir == "" {
		return path
	}
	rel, err := filepath.Rel(e.BaseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
