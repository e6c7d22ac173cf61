// SPDX-License-Identifier: MPL-2.0

package skill

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontmatterDelim separates YAML frontmatter from the document body.
var frontmatterDelim = []byte("---")

// Frontmatter is the optional YAML header of a SKILL.md entry document.
// Skill authoring conventions put the skill's name and a one-line
// description there; both are optional as far as validation goes.
type Frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ParseFrontmatter extracts the YAML frontmatter from an entry document.
// A document without a leading "---" line has no frontmatter; that is not
// an error and yields nil. A frontmatter block that is opened but never
// closed, or that is not valid YAML, is an error.
func ParseFrontmatter(data []byte) (*Frontmatter, error) {
	rest, ok := stripOpeningDelim(data)
	if !ok {
		return nil, nil
	}

	end := closingDelimOffset(rest)
	if end < 0 {
		return nil, fmt.Errorf("frontmatter block is not closed (missing trailing %q line)", string(frontmatterDelim))
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return &fm, nil
}

// stripOpeningDelim removes the opening "---" line if present and returns
// the remainder of the document.
func stripOpeningDelim(data []byte) ([]byte, bool) {
	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // tolerate a UTF-8 BOM
	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, false
	}
	rest := trimmed[len(frontmatterDelim):]
	// The delimiter must be the whole first line.
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, false
	}
	return rest[1:], true
}

// closingDelimOffset returns the byte offset of the line that closes the
// frontmatter block, or -1 if no such line exists.
func closingDelimOffset(rest []byte) int {
	for i := 0; i < len(rest); {
		j := bytes.IndexByte(rest[i:], '\n')
		var line []byte
		if j < 0 {
			line = rest[i:]
			j = len(rest) - i
		} else {
			line = rest[i : i+j]
		}
		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), frontmatterDelim) {
			return i
		}
		i += j + 1
	}
	return -1
}
