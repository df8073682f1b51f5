// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package contacts loads the optional number-to-name table used to fill the
// contact_name attribute.
//
// The text format has one contact per line: a phone number, whitespace, then
// the display name. Blank lines and lines starting with "#" are ignored.
// Files ending in .yaml or .yml hold a mapping of number to name instead.
package contacts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/verizon2sms/internal/phone"
)

// Table maps normalized phone numbers to display names. It is not modified
// after loading.
type Table struct {
	names map[string]string
}

// NewTable returns a Table over names, whose keys must already be
// normalized.
func NewTable(names map[string]string) *Table {
	t := &Table{names: make(map[string]string, len(names))}
	for k, v := range names {
		t.names[k] = v
	}
	return t
}

// Len returns the number of contacts.
func (t *Table) Len() int {
	return len(t.names)
}

// Resolve returns the name stored for a normalized address.
func (t *Table) Resolve(address string) (string, bool) {
	name, ok := t.names[address]
	return name, ok
}

// LineError reports a contacts line without both a number and a name.
type LineError struct {
	Line int
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("missing name or number on line %d: %q", e.Line, e.Text)
}

var skipLine = regexp.MustCompile(`^\s*(?:#|$)`)

// maxLineSize bounds a single contacts line.
const maxLineSize = 1 << 20

// Load parses the text contacts format from r, normalizing each number with
// n for region. A malformed line aborts loading.
func Load(r io.Reader, n phone.Normalizer, region string) (*Table, error) {
	names := make(map[string]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := sc.Text()
		if skipLine.MatchString(line) {
			continue
		}

		number, name, ok := splitLine(line)
		if !ok {
			return nil, &LineError{Line: lineNum, Text: line}
		}
		norm, err := n.Normalize(number, region)
		if err != nil {
			return nil, fmt.Errorf("contacts line %d: %w", lineNum, err)
		}
		names[norm] = name
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}
	return &Table{names: names}, nil
}

// splitLine separates the leading number from the rest of the line.
func splitLine(line string) (number, name string, ok bool) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	return line[:i], strings.TrimSpace(line[i:]), true
}

// LoadYAML parses a YAML mapping of phone number to name.
func LoadYAML(r io.Reader, n phone.Normalizer, region string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading contacts: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing contacts YAML: %w", err)
	}

	names := make(map[string]string, len(raw))
	for number, name := range raw {
		name = strings.TrimSpace(name)
		if strings.TrimSpace(number) == "" || name == "" {
			return nil, fmt.Errorf("contacts YAML entry %q: missing name or number", number)
		}
		norm, err := n.Normalize(number, region)
		if err != nil {
			return nil, fmt.Errorf("contacts YAML entry %q: %w", number, err)
		}
		names[norm] = name
	}
	return &Table{names: names}, nil
}

// LoadFile opens path and loads it with Load or LoadYAML depending on its
// extension.
func LoadFile(path string, n phone.Normalizer, region string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening contacts file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f, n, region)
	default:
		return Load(f, n, region)
	}
}
