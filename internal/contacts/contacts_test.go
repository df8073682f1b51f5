// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package contacts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/verizon2sms/internal/phone"
)

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"# family",
		"",
		"   ",
		"202-555-0143   Alice Smith  ",
		"\t+442079460958\tBob",
		"  # indented comment",
		"202.555.0199 Carol van der Berg",
	}, "\n")

	table, err := Load(strings.NewReader(input), phone.LibNormalizer{}, "US")
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())

	tests := []struct {
		address string
		want    string
	}{
		{"+12025550143", "Alice Smith"},
		{"+442079460958", "Bob"},
		{"+12025550199", "Carol van der Berg"},
	}
	for _, tt := range tests {
		name, ok := table.Resolve(tt.address)
		assert.True(t, ok, tt.address)
		assert.Equal(t, tt.want, name)
	}

	_, ok := table.Resolve("+15551234567")
	assert.False(t, ok)
}

func TestLoadNumberIsFirstField(t *testing.T) {
	table, err := Load(strings.NewReader("(202) 555-0143 Alice\n"), phone.DigitsNormalizer{}, "US")
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	name, ok := table.Resolve("+202")
	require.True(t, ok)
	assert.Equal(t, "555-0143 Alice", name)

	_, ok = table.Resolve("+12025550143")
	assert.False(t, ok)
}

func TestLoadLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	table, err := Load(strings.NewReader("2025550143 "+long+"\n"), phone.DigitsNormalizer{}, "US")
	require.NoError(t, err)

	name, ok := table.Resolve("+12025550143")
	require.True(t, ok)
	assert.Len(t, name, len(long))
}

func TestLoadLaterLineWins(t *testing.T) {
	input := "2025550143 Alice\n202-555-0143 Alicia\n"
	table, err := Load(strings.NewReader(input), phone.DigitsNormalizer{}, "US")
	require.NoError(t, err)

	name, ok := table.Resolve("+12025550143")
	require.True(t, ok)
	assert.Equal(t, "Alicia", name)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"number without name", "2025550143 Alice\n2025550199\n", 2},
		{"number with trailing space only", "# c\n2025550199   \n", 2},
		{"first line", "lonely\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), phone.DigitsNormalizer{}, "US")
			var lerr *LineError
			require.True(t, errors.As(err, &lerr), "got %v", err)
			assert.Equal(t, tt.wantLine, lerr.Line)
			assert.Contains(t, err.Error(), "missing name or number")
		})
	}
}

func TestLoadPhoneParseError(t *testing.T) {
	_, err := Load(strings.NewReader("2025550143 Alice\n"), phone.LibNormalizer{}, "")
	require.Error(t, err)

	var perr *phone.ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "contacts line 1")
}

func TestLoadYAML(t *testing.T) {
	input := `
"(202) 555-0143": Alice Smith
"+44 20 7946 0958": Bob
`
	table, err := LoadYAML(strings.NewReader(input), phone.LibNormalizer{}, "US")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	name, ok := table.Resolve("+442079460958")
	require.True(t, ok)
	assert.Equal(t, "Bob", name)
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"not a mapping", "- a\n- b\n", "parsing contacts YAML"},
		{"empty name", `"2025550143": ""`, "missing name or number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.input), phone.DigitsNormalizer{}, "US")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "contacts.txt")
	require.NoError(t, os.WriteFile(txt, []byte("5551234567 Dana\n"), 0o644))
	yml := filepath.Join(dir, "contacts.YML")
	require.NoError(t, os.WriteFile(yml, []byte("\"5551234567\": Erin\n"), 0o644))

	for path, want := range map[string]string{txt: "Dana", yml: "Erin"} {
		table, err := LoadFile(path, phone.DigitsNormalizer{}, "US")
		require.NoError(t, err, path)
		name, ok := table.Resolve("+15551234567")
		require.True(t, ok, path)
		assert.Equal(t, want, name)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.txt"), phone.DigitsNormalizer{}, "US")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening contacts file")
}

func TestNewTableCopies(t *testing.T) {
	src := map[string]string{"+15551234567": "Dana"}
	table := NewTable(src)
	src["+15551234567"] = "changed"

	name, _ := table.Resolve("+15551234567")
	assert.Equal(t, "Dana", name)
}
