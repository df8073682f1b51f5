//go:build mage

// Package main contains Mage build targets for verizon2sms developer tooling.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	_ "github.com/mattn/go-sqlite3"
)

const (
	binDir  = "bin"
	binName = "verizon2sms"
	cmdPkg  = "./cmd/verizon2sms"

	fixtureDir  = "testdata"
	fixtureFile = "Verizon.db"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	return sh.RunV("go", "build", "-ldflags", "-X main.version="+buildVersion(), "-o", out, cmdPkg)
}

// Test runs the unit tests of every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Try builds the binary and converts the fixture database to testdata/sms.xml.
func Try() error {
	mg.SerialDeps(Build, Fixture)
	return sh.RunV(filepath.Join(binDir, binName),
		"-r", "US", "-s", "(202) 555-0100",
		"-o", filepath.Join(fixtureDir, "sms.xml"),
		filepath.Join(fixtureDir, fixtureFile))
}

// buildVersion returns the git description of HEAD, or "dev".
func buildVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}

// Fixture writes a small Verizon Messages database to testdata/ for trying
// the CLI by hand.
func Fixture() error {
	if err := os.MkdirAll(fixtureDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", fixtureDir, err)
	}
	path := filepath.Join(fixtureDir, fixtureFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old fixture: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE Message (
		Id INTEGER PRIMARY KEY AUTOINCREMENT,
		CreatedOn INTEGER NOT NULL,
		Sender TEXT,
		ToAddress TEXT,
		SourceType INTEGER,
		Body TEXT,
		IsRead INTEGER,
		IsLocked INTEGER
	)`); err != nil {
		return fmt.Errorf("creating Message table: %w", err)
	}

	now := time.Now()
	rows := []struct {
		ago        time.Duration
		sender, to string
		sourceType int
		body       string
	}{
		{3 * time.Hour, "(202) 555-0143", "(202) 555-0100", 2, "Lunch tomorrow?"},
		{2 * time.Hour, "(202) 555-0100", "(202) 555-0143", 3, "Sure, noon works."},
		{time.Hour, "22395", "(202) 555-0100", 2, "Your verification code is 123456"},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO Message (CreatedOn, Sender, ToAddress, SourceType, Body, IsRead, IsLocked)
			VALUES (?, ?, ?, ?, ?, 1, 0)`,
			toTicks(now.Add(-r.ago)), r.sender, r.to, r.sourceType, r.body)
		if err != nil {
			return fmt.Errorf("inserting fixture row: %w", err)
		}
	}
	fmt.Printf("Wrote %s (%d messages)\n", path, len(rows))
	return nil
}

// toTicks encodes t the way the Message.CreatedOn column stores it.
func toTicks(t time.Time) int64 {
	return (t.UnixMilli() + 62167219200000) * 10000
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go
// files, skipping underscore-prefixed directories the go tool ignores.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && len(info.Name()) > 0 && (info.Name()[0] == '_' || info.Name()[0] == '.') {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		isTest := len(path) > 8 && path[len(path)-8:] == "_test.go"
		if testOnly != isTest {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range splitLines(data) {
			if len(line) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// splitLines splits data by newline, returning each line as a trimmed string.
func splitLines(data []byte) []string {
	var lines []string
	start := 0
	for i, b := range data {
		if b == '\n' {
			lines = append(lines, trimSpace(data[start:i]))
			start = i + 1
		}
	}
	if start < len(data) {
		lines = append(lines, trimSpace(data[start:]))
	}
	return lines
}

// trimSpace returns a string with leading and trailing whitespace removed.
func trimSpace(b []byte) string {
	start, end := 0, len(b)
	for start < end && (b[start] == ' ' || b[start] == '\t' || b[start] == '\r') {
		start++
	}
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t' || b[end-1] == '\r') {
		end--
	}
	return string(b[start:end])
}
