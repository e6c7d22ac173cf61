// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing structured documents
// against embedded CUE schemas.
//
// Both the pack manifest (JSON, which is a subset of CUE) and the user
// configuration file (CUE) go through the same flow: compile the embedded
// schema, compile the user document, unify the two, validate, and decode
// into a Go struct. Errors are reformatted with JSON-path prefixes so users
// see "units[1].name: ..." instead of raw CUE diagnostics.
package cueutil
