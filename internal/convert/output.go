// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
)

// Output is the destination of a run. The file is only created by the first
// Write, so a run that fails before writing leaves no file behind.
type Output struct {
	path string
	std  io.Writer
	f    *os.File
}

// NewOutput returns an Output for path. "-" and "" write to stdout.
func NewOutput(path string, stdout io.Writer) *Output {
	return &Output{path: path, std: stdout}
}

// Write implements io.Writer.
func (o *Output) Write(p []byte) (int, error) {
	if o.path == "" || o.path == "-" {
		return o.std.Write(p)
	}
	if o.f == nil {
		f, err := os.Create(o.path)
		if err != nil {
			return 0, fmt.Errorf("creating output file: %w", err)
		}
		o.f = f
	}
	return o.f.Write(p)
}

// Close flushes and closes the output file, if one was created.
func (o *Output) Close() error {
	if o.f == nil {
		return nil
	}
	if err := o.f.Sync(); err != nil {
		o.f.Close()
		return fmt.Errorf("syncing output file: %w", err)
	}
	return o.f.Close()
}
