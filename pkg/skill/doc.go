// SPDX-License-Identifier: MPL-2.0

// Package skill resolves manifest units into concrete skill directories.
//
// A skill is one unit of a pack: a directory holding a SKILL.md entry
// document and, optionally, a references/ directory of supplementary
// markdown. Resolution is pure path arithmetic plus a directory listing;
// it never fails. Whether the resolved paths actually exist is the
// integrity checker's concern.
package skill
