// SPDX-License-Identifier: MPL-2.0

// Package manifest loads and validates skill pack manifests.
//
// A manifest is a JSON document (skillpack.json) declaring the pack's name,
// version, and an ordered list of units. Each unit names a skill directory,
// relative to the manifest's own directory, that is expected to contain a
// SKILL.md entry document.
//
// Loading is strict: a missing file yields ErrNotFound, and any parse or
// schema failure (including missing or empty required fields) yields
// ErrMalformed. Both are fatal to a validation run; per-unit problems are
// detected later and never surface here.
package manifest
