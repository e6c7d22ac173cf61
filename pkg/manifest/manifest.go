// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"skillpack-cli/pkg/cueutil"
)

// DefaultFileName is the conventional manifest filename at the pack root.
const DefaultFileName = "skillpack.json"

//go:embed manifest_schema.cue
var manifestSchema string

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("manifest not found")
	// ErrMalformed is the sentinel error wrapped by MalformedError.
	ErrMalformed = errors.New("manifest malformed")
)

type (
	// UnitRef is one unit declaration in the manifest. Path is relative to
	// the manifest's directory and always uses forward slashes on disk.
	UnitRef struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}

	// Manifest is the root descriptor of a skill pack. Units preserve
	// declaration order; the order carries no ranking but is kept stable
	// all the way through to the report.
	Manifest struct {
		Name        string    `json:"name"`
		Version     string    `json:"version"`
		Description string    `json:"description,omitempty"`
		Units       []UnitRef `json:"units"`

		// Dir is the absolute directory containing the manifest file.
		// Unit paths resolve relative to it. Set by Load, not part of
		// the document itself.
		Dir string `json:"-"`
	}

	// NotFoundError is returned when the manifest file does not exist.
	// It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Path string
	}

	// MalformedError is returned when the manifest cannot be parsed or
	// fails schema validation. It wraps ErrMalformed for errors.Is() and
	// exposes the underlying parse error via Unwrap.
	MalformedError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// Unwrap returns ErrNotFound so callers can match with errors.Is().
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed manifest: %s", e.Cause.Error())
	}
	return fmt.Sprintf("malformed manifest: %s", e.Path)
}

// Is reports whether target is ErrMalformed.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// Unwrap returns the underlying parse error, if any.
func (e *MalformedError) Unwrap() error {
	return e.Cause
}

// Load reads and validates the manifest at path.
// The returned Manifest has Dir set to the manifest's absolute directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolve manifest directory: %w", err)
	}
	m.Dir = absDir

	return m, nil
}

// Parse validates raw manifest bytes against the embedded schema and decodes
// them. The filename appears in error messages only.
//
// The schema enforces the structural invariants: name and version must be
// non-empty strings, and units must be a non-empty list of {name, path}
// objects with non-empty values. Unit name uniqueness is checked downstream
// by the integrity checker, not here, so a duplicate does not mask the
// per-unit results.
func Parse(data []byte, filename string) (*Manifest, error) {
	m, err := cueutil.ParseAndDecodeString[Manifest](manifestSchema, data, "#Manifest",
		cueutil.WithFilename(filename))
	if err != nil {
		return nil, &MalformedError{Path: filename, Cause: err}
	}
	return m, nil
}
