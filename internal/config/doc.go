// SPDX-License-Identifier: MPL-2.0

// Package config loads the user-level skillpack configuration.
//
// Configuration lives in a CUE file at the platform config directory
// (e.g. ~/.config/skillpack/config.cue on Linux) and is validated against
// an embedded schema before being merged over built-in defaults via Viper.
// A missing config file is not an error; defaults apply.
//
// Validation runs never depend on configuration for correctness: config
// only tunes presentation (verbosity, color scheme).
package config
