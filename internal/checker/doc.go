// SPDX-License-Identifier: MPL-2.0

// Package checker performs the integrity checks of a validation run.
//
// Given a loaded manifest and its resolved skills, it probes the filesystem
// for each skill's directory and entry document, verifies unit name
// uniqueness across the whole manifest, and inspects entry document
// frontmatter where present. Checks are independent per skill and read-only;
// one skill's failure never stops another skill from being checked.
//
// Filesystem access goes through the Probe interface so the checking logic
// is testable without touching a real filesystem.
package checker
