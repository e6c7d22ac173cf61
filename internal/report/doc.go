// SPDX-License-Identifier: MPL-2.0

// Package report renders validation results as a human-readable text report.
//
// The emitter writes one block per skill in manifest declaration order,
// followed by any manifest-wide findings and a single summary line. Output
// is deterministic: rendering the same report twice produces byte-identical
// text, which keeps repeated validation runs diffable.
package report
