// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error types with actionable context.
//
// Fatal errors surfaced at the CLI boundary (missing manifest, malformed
// manifest) carry an operation, the resource involved, and concrete
// suggestions so the diagnostic tells the user what to do next instead of
// just what went wrong.
package issue
